package Token

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed access token for the user. The token id is
// also the session key, so it is returned alongside the token string.
func GenerateToken(userID string) (token string, tokenID string, err error) {
	lifespan := time.Duration(Utils.AppConfig.TokenHourLife) * time.Hour
	tokenID = uuid.New().String()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifespan)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(Utils.AppConfig.JWTSecret))
	return token, tokenID, err
}

// TokenValid checks the request's bearer token signature and expiry.
func TokenValid(c *gin.Context) error {
	_, err := ExtractClaims(c)
	return err
}

// ExtractTokenID returns the user id carried by the request's bearer token.
func ExtractTokenID(c *gin.Context) (string, error) {
	claims, err := ExtractClaims(c)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// ExtractClaims parses and verifies the bearer token on the request.
func ExtractClaims(c *gin.Context) (*Claims, error) {
	raw := ExtractJWT(c)
	if raw == "" {
		return nil, ErrInvalidToken
	}
	return ParseToken(raw)
}

// ExtractJWT pulls the raw token from the Authorization header or, as a
// fallback for EventSource clients that cannot set headers, the "token"
// query parameter.
func ExtractJWT(c *gin.Context) string {
	bearer := c.Request.Header.Get("Authorization")
	if len(strings.Split(bearer, " ")) == 2 {
		return strings.Split(bearer, " ")[1]
	}
	return c.Query("token")
}

// ParseToken verifies a raw token string and returns its claims.
func ParseToken(raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(Utils.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
