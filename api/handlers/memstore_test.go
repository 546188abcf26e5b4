package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kutbudev/agri-api/internal/tags"
	"github.com/kutbudev/agri-api/pkg/models"
	"github.com/kutbudev/agri-api/pkg/repository"
)

// memStore is an in-memory Store for handler tests. Tag resolution goes
// through the real resolver so the fake does not duplicate its semantics.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
	posts map[uuid.UUID]models.Post
	tags  map[string]models.Tag // keyed by lower(name)
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]models.User),
		posts: make(map[uuid.UUID]models.Post),
		tags:  make(map[string]models.Tag),
	}
}

func (m *memStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = *user
	return nil
}

func (m *memStore) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := m.UserByEmail(ctx, email)
	return err == nil, nil
}

func (m *memStore) UsernameTaken(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) PostByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	out := post
	out.Tags = append([]models.Tag(nil), post.Tags...)
	if author, ok := m.users[post.AuthorID]; ok {
		out.Author = &author
	}
	return &out, nil
}

func (m *memStore) ListPosts(_ context.Context, filter repository.PostFilter) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Post
	for _, post := range m.posts {
		if filter.OnlyPublished && !post.IsPublished {
			continue
		}
		if filter.AuthorID != nil && post.AuthorID != *filter.AuthorID {
			continue
		}
		if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
			if !strings.Contains(strings.ToLower(post.Title), search) &&
				!strings.Contains(strings.ToLower(post.Content), search) &&
				!strings.Contains(strings.ToLower(post.Summary), search) {
				continue
			}
		}

		p := post
		p.Tags = append([]models.Tag(nil), post.Tags...)
		if author, ok := m.users[post.AuthorID]; ok {
			p.Author = &author
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memStore) CreatePost(ctx context.Context, post *models.Post, tagNames []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	resolved, err := tags.Resolve(ctx, (*memLookup)(m), tagNames)
	if err != nil {
		return err
	}
	post.Tags = resolved
	m.posts[post.ID] = *post
	return nil
}

func (m *memStore) UpdatePost(ctx context.Context, post *models.Post, tagNames []string, replaceTags bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[post.ID]; !ok {
		return models.ErrPersistence
	}

	if replaceTags {
		resolved, err := tags.Resolve(ctx, (*memLookup)(m), tagNames)
		if err != nil {
			return err
		}
		post.Tags = resolved
	}
	m.posts[post.ID] = *post
	return nil
}

func (m *memStore) DeletePost(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[post.ID]; !ok {
		return models.ErrPersistence
	}
	delete(m.posts, post.ID)
	return nil
}

func (m *memStore) ListTags(_ context.Context) ([]models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Tag, 0, len(m.tags))
	for _, tag := range m.tags {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// memLookup exposes the tag map to the resolver. Callers hold the store
// lock already.
type memLookup memStore

func (m *memLookup) ByNameFold(_ context.Context, name string) (*models.Tag, error) {
	tag, ok := m.tags[strings.ToLower(name)]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &tag, nil
}

func (m *memLookup) Create(_ context.Context, tag *models.Tag) error {
	m.tags[strings.ToLower(tag.Name)] = *tag
	return nil
}
