package Storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

// FileStore keeps each collection in <dir>/<collection>.json. It is the
// default backend. The mutex only prevents torn files; read-modify-write
// sequences across calls still race last-writer-wins.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Read(ctx context.Context, collection string, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		Utils.GetLogger().Error("malformed collection, treating as empty",
			zap.String("collection", collection), zap.Error(err))
		return nil
	}
	return nil
}

func (s *FileStore) Write(ctx context.Context, collection string, src any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}
