package Storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

// MemoryStore holds collections as marshaled JSON in a map. Used by tests
// and throwaway demo runs; going through JSON keeps its round-trip behavior
// identical to the durable backends.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Read(ctx context.Context, collection string, dest any) error {
	s.mu.RLock()
	data, ok := s.data[collection]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		Utils.GetLogger().Error("malformed collection, treating as empty",
			zap.String("collection", collection), zap.Error(err))
		return nil
	}
	return nil
}

func (s *MemoryStore) Write(ctx context.Context, collection string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	s.mu.Lock()
	s.data[collection] = data
	s.mu.Unlock()
	return nil
}

// Seed injects raw collection bytes, valid or not. Test hook.
func (s *MemoryStore) Seed(collection string, raw []byte) {
	s.mu.Lock()
	s.data[collection] = raw
	s.mu.Unlock()
}
