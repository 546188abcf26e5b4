// Package api is the client for the Agri HTTP API used by the CLI.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/kutbudev/agri-api/internal/config"
	"github.com/kutbudev/agri-api/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

// Client talks to the Agri API. A client is bound to one session: the
// bearer credential it was created with is attached to every request.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewClient creates a client from the local session. The base URL comes
// from AGRI_API_URL, then the config file, then the default.
func NewClient() *Client {
	baseURL := os.Getenv("AGRI_API_URL")
	if baseURL == "" {
		if cfg, err := config.LoadConfig(); err == nil && cfg.APIBaseURL != "" {
			baseURL = cfg.APIBaseURL
		}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	token, _ := config.LoadToken()

	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response body
func (c *Client) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Attach the session's bearer credential if we have one
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, apiError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// apiError shapes an error response into something readable. The server
// sends either {"error": "..."} or {"errors": {field: reason}}.
func apiError(status int, body []byte) error {
	var payload struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return fmt.Errorf("API error (status %d): %s", status, payload.Error)
		}
		if len(payload.Errors) > 0 {
			return fmt.Errorf("API error (status %d): %s", status, models.FieldErrors(payload.Errors).Error())
		}
	}
	return fmt.Errorf("API error (status %d): %s", status, string(body))
}

// RegisterRequest is the payload for Register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// Register creates a new account and returns it with its credential.
func (c *Client) Register(req RegisterRequest) (*models.Account, error) {
	body, err := c.makeRequest(http.MethodPost, "/accounts/register", req)
	if err != nil {
		return nil, err
	}

	var account models.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &account, nil
}

// Login authenticates and returns the account with its credential.
func (c *Client) Login(email, password string) (*models.Account, error) {
	payload := map[string]string{"email": email, "password": password}
	body, err := c.makeRequest(http.MethodPost, "/accounts/login", payload)
	if err != nil {
		return nil, err
	}

	var account models.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &account, nil
}

// CurrentUser returns the account for the session's credential.
func (c *Client) CurrentUser() (*models.Account, error) {
	body, err := c.makeRequest(http.MethodGet, "/accounts/current", nil)
	if err != nil {
		return nil, err
	}

	var account models.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &account, nil
}

// ListOptions narrows a post listing.
type ListOptions struct {
	IncludeUnpublished bool
	AuthorID           string
	Search             string
}

// ListPosts fetches posts matching the options, newest first.
func (c *Client) ListPosts(opts ListOptions) ([]models.PostDTO, error) {
	q := url.Values{}
	if opts.IncludeUnpublished {
		q.Set("onlyPublished", "false")
	}
	if opts.AuthorID != "" {
		q.Set("authorId", opts.AuthorID)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}

	endpoint := "/posts"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	body, err := c.makeRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var posts []models.PostDTO
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return posts, nil
}

// GetPost fetches a single post by ID.
func (c *Client) GetPost(id string) (*models.PostDTO, error) {
	body, err := c.makeRequest(http.MethodGet, "/posts/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var post models.PostDTO
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &post, nil
}

// CreatePostRequest is the payload for CreatePost.
type CreatePostRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	IsPublished *bool    `json:"isPublished,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// CreatePost creates a new post owned by the session's user.
func (c *Client) CreatePost(req CreatePostRequest) (*models.PostDTO, error) {
	body, err := c.makeRequest(http.MethodPost, "/posts", req)
	if err != nil {
		return nil, err
	}

	var post models.PostDTO
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &post, nil
}

// UpdatePostRequest is the payload for UpdatePost. Nil fields are left
// unchanged; a non-nil empty tag list clears the post's tags.
type UpdatePostRequest struct {
	Title       *string   `json:"title,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	IsPublished *bool     `json:"isPublished,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// UpdatePost applies a partial edit to one of the session user's posts.
func (c *Client) UpdatePost(id string, req UpdatePostRequest) (*models.PostDTO, error) {
	body, err := c.makeRequest(http.MethodPut, "/posts/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var post models.PostDTO
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &post, nil
}

// DeletePost removes one of the session user's posts.
func (c *Client) DeletePost(id string) error {
	_, err := c.makeRequest(http.MethodDelete, "/posts/"+url.PathEscape(id), nil)
	return err
}

// ListTags fetches all tags sorted by name.
func (c *Client) ListTags() ([]models.Tag, error) {
	body, err := c.makeRequest(http.MethodGet, "/tags", nil)
	if err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return tags, nil
}
