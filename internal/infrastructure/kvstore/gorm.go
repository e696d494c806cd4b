package kvstore

import (
	"context"
	"errors"

	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	domainRepo "github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a KVStore backed by the cart_snapshots table
func NewGormStore(db *gorm.DB) domainRepo.KVStore {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var snapshot entity.CartSnapshot
	err := s.db.WithContext(ctx).First(&snapshot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return snapshot.Value, true, nil
}

func (s *gormStore) Set(ctx context.Context, key, value string) error {
	snapshot := entity.CartSnapshot{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snapshot).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&entity.CartSnapshot{}, "key = ?", key).Error
}
