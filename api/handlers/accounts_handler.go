package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kutbudev/agri-api/pkg/models"
)

// RegisterInput DTO for creating a new account
type RegisterInput struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
}

// Register creates a new account and returns it with a fresh credential.
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if errs := models.ValidateRegistration(input.Email, input.Username, input.Password); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if taken, err := h.store.EmailTaken(c.Request.Context(), input.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is already registered"})
		return
	}

	if taken, err := h.store.UsernameTaken(c.Request.Context(), input.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is already taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = input.Username
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Username:     input.Username,
		DisplayName:  displayName,
		Bio:          input.Bio,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to create user"})
		return
	}

	h.respondAccount(c, &user)
}

// LoginInput DTO for logging in
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns the account with a fresh credential.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), strings.TrimSpace(input.Email))
	if err != nil {
		abortUnauthorized(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		abortUnauthorized(c)
		return
	}

	h.respondAccount(c, user)
}

// CurrentUser returns the account matching the credential's email claim,
// with a reissued credential.
func (h *Handler) CurrentUser(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil || claims.Email == "" {
		abortUnauthorized(c)
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		abortUnauthorized(c)
		return
	}

	h.respondAccount(c, user)
}

func (h *Handler) respondAccount(c *gin.Context, user *models.User) {
	tok, err := h.tokens.Issue(user)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue credential"})
		return
	}
	c.JSON(http.StatusOK, user.ToAccount(tok))
}
