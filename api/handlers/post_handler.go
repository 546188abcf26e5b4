package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kutbudev/agri-api/pkg/models"
	"github.com/kutbudev/agri-api/pkg/repository"
)

// CreatePostInput DTO for creating a new post
type CreatePostInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	IsPublished *bool    `json:"isPublished"`
	Tags        []string `json:"tags"`
}

// CreatePost creates a new post owned by the authenticated caller.
func (h *Handler) CreatePost(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		abortUnauthorized(c)
		return
	}
	authorID, err := claims.UserID()
	if err != nil {
		abortUnauthorized(c)
		return
	}

	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := models.ValidateNewPost(input.Title, input.Content, input.Summary); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	author, err := h.store.UserByID(c.Request.Context(), authorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Content:     strings.TrimSpace(input.Content),
		Summary:     strings.TrimSpace(input.Summary),
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
		AuthorID:    author.ID,
		Author:      author,
	}

	if err := h.store.CreatePost(c.Request.Context(), &post, input.Tags); err != nil {
		h.log.Error().Err(err).Msg("failed to create post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusOK, post.Shape())
}

// EditPostInput DTO for updating a post. Nil fields are left unchanged;
// blank text fields also mean "no change". A non-nil tag list fully
// replaces the tag set, an empty list clearing it.
type EditPostInput struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Summary     *string   `json:"summary"`
	IsPublished *bool     `json:"isPublished"`
	Tags        *[]string `json:"tags"`
}

// UpdatePost applies a partial edit to a post owned by the caller.
func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var input EditPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := models.ValidatePostPatch(input.Title, input.Summary); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	post, ok := h.ownedPost(c, id)
	if !ok {
		return
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		post.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) != "" {
		post.Content = strings.TrimSpace(*input.Content)
	}
	if input.Summary != nil && strings.TrimSpace(*input.Summary) != "" {
		post.Summary = strings.TrimSpace(*input.Summary)
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	var tagNames []string
	if input.Tags != nil {
		tagNames = *input.Tags
	}

	post.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdatePost(c.Request.Context(), post, tagNames, input.Tags != nil); err != nil {
		h.log.Error().Err(err).Str("post_id", id.String()).Msg("failed to update post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post.Shape())
}

// DeletePost removes a post owned by the caller, cascading its tag
// associations. Orphaned tag rows are left in place.
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	post, ok := h.ownedPost(c, id)
	if !ok {
		return
	}

	if err := h.store.DeletePost(c.Request.Context(), post); err != nil {
		h.log.Error().Err(err).Str("post_id", id.String()).Msg("failed to delete post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// GetPost retrieves a single post by its ID. No credential is required;
// unpublished posts are readable by identifier.
func (h *Handler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	post, err := h.store.PostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve post"})
		return
	}

	c.JSON(http.StatusOK, post.Shape())
}

// ListPosts retrieves posts filtered by publish state, author, and a
// case-insensitive search term, newest first.
func (h *Handler) ListPosts(c *gin.Context) {
	filter := repository.PostFilter{OnlyPublished: true}

	if raw := c.Query("onlyPublished"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid onlyPublished value"})
			return
		}
		filter.OnlyPublished = v
	}

	if raw := c.Query("authorId"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
			return
		}
		filter.AuthorID = &authorID
	}

	filter.Search = c.Query("search")

	posts, err := h.store.ListPosts(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve posts"})
		return
	}

	c.JSON(http.StatusOK, models.ShapePosts(posts))
}

// ownedPost loads a post and checks that the caller is its author.
// Responds with 404 or 401 and returns false when the check fails.
func (h *Handler) ownedPost(c *gin.Context, id uuid.UUID) (*models.Post, bool) {
	post, err := h.store.PostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve post"})
		return nil, false
	}

	claims := currentClaims(c)
	if claims == nil {
		abortUnauthorized(c)
		return nil, false
	}
	callerID, err := claims.UserID()
	if err != nil || callerID != post.AuthorID {
		abortUnauthorized(c)
		return nil, false
	}

	return post, true
}
