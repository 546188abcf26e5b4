package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kutbudev/agri-api/internal/tags"
	"github.com/kutbudev/agri-api/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *gormStore) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *gormStore) ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	q := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags")

	if filter.OnlyPublished {
		q = q.Where("is_published = ?", true)
	}
	if filter.AuthorID != nil {
		q = q.Where("author_id = ?", *filter.AuthorID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + escapeLike(strings.ToLower(search)) + "%"
		q = q.Where(
			"lower(title) LIKE ? OR lower(content) LIKE ? OR lower(summary) LIKE ?",
			like, like, like,
		)
	}

	var posts []models.Post
	if err := q.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally; a search for "100%" must not match every "100".
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (s *gormStore) CreatePost(ctx context.Context, post *models.Post, tagNames []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolved, err := tags.Resolve(ctx, &tagLookup{tx: tx}, tagNames)
		if err != nil {
			return err
		}

		res := tx.Omit(clause.Associations).Create(post)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrPersistence
		}

		if err := tx.Model(post).Association("Tags").Replace(resolved); err != nil {
			return err
		}
		post.Tags = resolved
		return nil
	})
}

func (s *gormStore) UpdatePost(ctx context.Context, post *models.Post, tagNames []string, replaceTags bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replaceTags {
			resolved, err := tags.Resolve(ctx, &tagLookup{tx: tx}, tagNames)
			if err != nil {
				return err
			}
			if err := tx.Model(post).Association("Tags").Replace(resolved); err != nil {
				return err
			}
			post.Tags = resolved
		}

		res := tx.Omit(clause.Associations).Save(post)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrPersistence
		}
		return nil
	})
}

func (s *gormStore) DeletePost(ctx context.Context, post *models.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Drop the association rows; tag rows themselves stay.
		if err := tx.Model(post).Association("Tags").Clear(); err != nil {
			return err
		}

		res := tx.Delete(post)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrPersistence
		}
		return nil
	})
}
