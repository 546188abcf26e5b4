package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kutbudev/agri-api/pkg/models"
)

func createPost(t *testing.T, router *gin.Engine, bearer string, body gin.H) models.PostDTO {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/posts", bearer, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[models.PostDTO](t, w)
}

func TestCreatePost(t *testing.T) {
	_, router := newTestServer(t)
	account := register(t, router, "a@x.com", "a", "secret123")

	post := createPost(t, router, account.Token, gin.H{
		"title":   "  Composting basics  ",
		"content": "Start with greens and browns.",
		"summary": "A compost primer",
		"tags":    []string{"Soil", "soil", " "},
	})

	assert.Equal(t, "Composting basics", post.Title)
	assert.True(t, post.IsPublished)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Equal(t, account.ID, post.Author.ID)
	assert.Equal(t, "a", post.Author.DisplayName)
	// Case and whitespace variants collapse to one tag.
	assert.Equal(t, []string{"Soil"}, post.Tags)

	// The new post shows up in the public listing.
	w := doJSON(t, router, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decode[[]models.PostDTO](t, w)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestCreatePost_Unauthenticated(t *testing.T) {
	_, router := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/posts", "", gin.H{
		"title": "T", "content": "C", "summary": "S",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePost_Invalid(t *testing.T) {
	_, router := newTestServer(t)
	account := register(t, router, "a@x.com", "a", "secret123")

	w := doJSON(t, router, http.MethodPost, "/posts", account.Token, gin.H{
		"title": "", "content": "", "summary": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
}

func TestEditPost_OnlyAuthor(t *testing.T) {
	_, router := newTestServer(t)
	alice := register(t, router, "a@x.com", "a", "secret123")
	bob := register(t, router, "b@x.com", "b", "secret123")

	post := createPost(t, router, alice.Token, gin.H{
		"title": "T", "content": "C", "summary": "S",
	})

	// A different authenticated account is rejected.
	w := doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), bob.Token, gin.H{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// An unauthenticated caller is rejected too.
	w = doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), "", gin.H{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEditPost_PartialUpdate(t *testing.T) {
	_, router := newTestServer(t)
	account := register(t, router, "a@x.com", "a", "secret123")

	post := createPost(t, router, account.Token, gin.H{
		"title": "T", "content": "C", "summary": "S", "tags": []string{"Soil"},
	})

	time.Sleep(10 * time.Millisecond)

	// Supplying only the publish flag leaves everything else untouched.
	w := doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), account.Token, gin.H{
		"isPublished": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.PostDTO](t, w)

	assert.Equal(t, "T", updated.Title)
	assert.Equal(t, "C", updated.Content)
	assert.Equal(t, "S", updated.Summary)
	assert.Equal(t, []string{"Soil"}, updated.Tags)
	assert.False(t, updated.IsPublished)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)
}

func TestEditPost_BlankMeansUnchanged(t *testing.T) {
	_, router := newTestServer(t)
	account := register(t, router, "a@x.com", "a", "secret123")

	post := createPost(t, router, account.Token, gin.H{
		"title": "T", "content": "C", "summary": "S",
	})

	w := doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), account.Token, gin.H{
		"title": "   ", "content": "", "summary": "New summary",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.PostDTO](t, w)

	assert.Equal(t, "T", updated.Title)
	assert.Equal(t, "C", updated.Content)
	assert.Equal(t, "New summary", updated.Summary)
}

func TestEditPost_TagReplacement(t *testing.T) {
	_, router := newTestServer(t)
	account := register(t, router, "a@x.com", "a", "secret123")

	post := createPost(t, router, account.Token, gin.H{
		"title": "T", "content": "C", "summary": "S", "tags": []string{"Soil", "Water"},
	})

	// Omitting tags leaves the set unchanged.
	w := doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), account.Token, gin.H{
		"title": "T2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Soil", "Water"}, decode[models.PostDTO](t, w).Tags)

	// A supplied list fully replaces the set.
	w = doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), account.Token, gin.H{
		"tags": []string{"Compost"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Compost"}, decode[models.PostDTO](t, w).Tags)

	// An explicit empty list clears all tags.
	w = doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), account.Token, gin.H{
		"tags": []string{},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.PostDTO](t, w).Tags)
}

func TestEditPost_NotFound(t *testing.T) {
	_, router := newTestServer(t)
	account := register(t, router, "a@x.com", "a", "secret123")

	w := doJSON(t, router, http.MethodPut, "/posts/1f0d7f4e-9d3c-4a08-93a2-000000000000", account.Token, gin.H{
		"title": "T",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	_, router := newTestServer(t)
	alice := register(t, router, "a@x.com", "a", "secret123")
	bob := register(t, router, "b@x.com", "b", "secret123")

	post := createPost(t, router, alice.Token, gin.H{
		"title": "T", "content": "C", "summary": "S", "tags": []string{"Soil"},
	})

	w := doJSON(t, router, http.MethodDelete, "/posts/"+post.ID.String(), bob.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/posts/"+post.ID.String(), alice.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/posts/"+post.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Tag rows survive the owning post.
	w = doJSON(t, router, http.MethodGet, "/tags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Tag](t, w), 1)
}

func TestGetPost_UnpublishedReadableByID(t *testing.T) {
	_, router := newTestServer(t)
	account := register(t, router, "a@x.com", "a", "secret123")

	draft := createPost(t, router, account.Token, gin.H{
		"title": "Draft", "content": "C", "summary": "S", "isPublished": false,
	})

	// Excluded from the default listing.
	w := doJSON(t, router, http.MethodGet, "/posts?onlyPublished=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.PostDTO](t, w))

	// Still directly readable by identifier.
	w = doJSON(t, router, http.MethodGet, "/posts/"+draft.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.PostDTO](t, w).IsPublished)
}

func TestListPosts_Filters(t *testing.T) {
	_, router := newTestServer(t)
	alice := register(t, router, "a@x.com", "a", "secret123")
	bob := register(t, router, "b@x.com", "b", "secret123")

	createPost(t, router, alice.Token, gin.H{
		"title": "Growing tomatoes", "content": "C", "summary": "S",
	})
	time.Sleep(5 * time.Millisecond)
	createPost(t, router, bob.Token, gin.H{
		"title": "Pruning roses", "content": "Tomatoes need pruning too", "summary": "S",
	})
	createPost(t, router, bob.Token, gin.H{
		"title": "Hidden draft", "content": "C", "summary": "S", "isPublished": false,
	})

	// Default listing: only published, newest first.
	w := doJSON(t, router, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decode[[]models.PostDTO](t, w)
	require.Len(t, posts, 2)
	assert.Equal(t, "Pruning roses", posts[0].Title)
	assert.Equal(t, "Growing tomatoes", posts[1].Title)

	// Author filter.
	w = doJSON(t, router, http.MethodGet, "/posts?authorId="+alice.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts = decode[[]models.PostDTO](t, w)
	require.Len(t, posts, 1)
	assert.Equal(t, "Growing tomatoes", posts[0].Title)

	// Search matches title or content, case-insensitively.
	w = doJSON(t, router, http.MethodGet, "/posts?search=TOMATO", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.PostDTO](t, w), 2)

	// onlyPublished=false includes the draft.
	w = doJSON(t, router, http.MethodGet, "/posts?onlyPublished=false", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.PostDTO](t, w), 3)
}

func TestListTags_SortedByName(t *testing.T) {
	_, router := newTestServer(t)
	account := register(t, router, "a@x.com", "a", "secret123")

	createPost(t, router, account.Token, gin.H{
		"title": "T", "content": "C", "summary": "S",
		"tags": []string{"Water", "Compost", "Soil"},
	})

	w := doJSON(t, router, http.MethodGet, "/tags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	tags := decode[[]models.Tag](t, w)
	require.Len(t, tags, 3)
	assert.Equal(t, "Compost", tags[0].Name)
	assert.Equal(t, "Soil", tags[1].Name)
	assert.Equal(t, "Water", tags[2].Name)
}
