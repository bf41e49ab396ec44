package Storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

// collectionRow maps one collection to its serialized form: the key-value
// layout kept as-is, just inside a real database.
type collectionRow struct {
	Name string `gorm:"primaryKey"`
	Data []byte `gorm:"type:jsonb"`
}

func (collectionRow) TableName() string { return "collections" }

// PostgresStore keeps every collection as a jsonb row, one per key. Swapping
// it in changes durability only, not semantics.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Read(ctx context.Context, collection string, dest any) error {
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(row.Data, dest); err != nil {
		Utils.GetLogger().Error("malformed collection, treating as empty",
			zap.String("collection", collection), zap.Error(err))
		return nil
	}
	return nil
}

func (s *PostgresStore) Write(ctx context.Context, collection string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	row := collectionRow{Name: collection, Data: data}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}
