package Utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const SessionPrefix = "session:"

// Session is the server-side record of a logged-in account: one record per
// issued token, removed on logout. Logout therefore revokes the token even
// though the JWT itself stays syntactically valid until expiry.
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

var sessionClient *redis.Client

// InitSessionStore connects the Redis client used for session records.
// When no Redis address is configured the service falls back to stateless
// JWT-only sessions and logout is a client-side token drop.
func InitSessionStore() {
	if AppConfig.RedisAddr == "" {
		GetLogger().Info("no REDIS_ADDR configured, sessions are stateless")
		return
	}
	sessionClient = redis.NewClient(&redis.Options{
		Addr:     AppConfig.RedisAddr,
		Password: AppConfig.RedisPassword,
		DB:       AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := sessionClient.Ping(ctx).Result(); err != nil {
		GetLogger().Fatal("Failed to connect to Redis (Sessions)", zap.Error(err))
	}
}

// SaveSession stores a session record under the token id with a TTL matching
// the token lifespan.
func SaveSession(tokenID string, session Session) error {
	if sessionClient == nil {
		return nil
	}
	session.CreatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ttl := time.Duration(AppConfig.TokenHourLife) * time.Hour
	if err := sessionClient.Set(context.Background(), SessionPrefix+tokenID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SessionActive reports whether the token id still has a live session.
// With no session store every syntactically valid token is accepted.
func SessionActive(tokenID string) bool {
	if sessionClient == nil {
		return true
	}
	n, err := sessionClient.Exists(context.Background(), SessionPrefix+tokenID).Result()
	if err != nil {
		GetLogger().Warn("session lookup failed", zap.Error(err))
		return false
	}
	return n > 0
}

// DeleteSession removes the session record, revoking the token.
func DeleteSession(tokenID string) error {
	if sessionClient == nil {
		return nil
	}
	return sessionClient.Del(context.Background(), SessionPrefix+tokenID).Err()
}
