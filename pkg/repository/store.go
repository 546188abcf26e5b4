package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kutbudev/agri-api/pkg/models"
	"gorm.io/gorm"
)

// PostFilter narrows a post listing. A nil AuthorID and empty Search apply
// no filtering for that dimension.
type PostFilter struct {
	OnlyPublished bool
	AuthorID      *uuid.UUID
	Search        string
}

// Store is the persistence surface the handlers work against. The gorm
// implementation is the only one used in production; tests substitute an
// in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)

	// PostByID loads a post with its author and tags preloaded.
	PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error)
	// CreatePost persists the post and resolves tagNames to its tag set
	// atomically; tags minted during resolution are durable only if the
	// whole save succeeds.
	CreatePost(ctx context.Context, post *models.Post, tagNames []string) error
	// UpdatePost saves the mutated post. When replaceTags is true the
	// existing associations are dropped and tagNames re-resolved.
	UpdatePost(ctx context.Context, post *models.Post, tagNames []string, replaceTags bool) error
	// DeletePost removes the post and its tag associations. Orphaned tag
	// rows are left in place.
	DeletePost(ctx context.Context, post *models.Post) error

	ListTags(ctx context.Context) ([]models.Tag, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a database connection in the Store interface.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}
