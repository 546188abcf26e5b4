package repository

import (
	"context"
	"errors"

	"github.com/kutbudev/agri-api/pkg/models"
	"gorm.io/gorm"
)

func (s *gormStore) ListTags(ctx context.Context) ([]models.Tag, error) {
	var out []models.Tag
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// tagLookup adapts a transaction to the resolver's storage surface so that
// tags minted during resolution commit or roll back with the caller.
type tagLookup struct {
	tx *gorm.DB
}

func (l *tagLookup) ByNameFold(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := l.tx.WithContext(ctx).First(&tag, "lower(name) = lower(?)", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (l *tagLookup) Create(ctx context.Context, tag *models.Tag) error {
	return l.tx.WithContext(ctx).Create(tag).Error
}
