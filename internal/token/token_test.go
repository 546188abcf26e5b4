package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kutbudev/agri-api/internal/token"
	"github.com/kutbudev/agri-api/pkg/models"
)

func testUser() *models.User {
	return &models.User{
		ID:          uuid.New(),
		Email:       "grower@example.com",
		Username:    "grower",
		DisplayName: "The Grower",
	}
}

func TestIssueAndParse(t *testing.T) {
	svc := token.NewService("test-secret")
	user := testUser()

	tok, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Parse(tok)
	require.NoError(t, err)

	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.DisplayName, claims.DisplayName)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := token.NewService("secret-a").Issue(testUser())
	require.NoError(t, err)

	_, err = token.NewService("secret-b").Parse(tok)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestParse_Garbage(t *testing.T) {
	svc := token.NewService("test-secret")

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestIssue_ValidityWindow(t *testing.T) {
	svc := token.NewService("test-secret")

	tok, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Parse(tok)
	require.NoError(t, err)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, token.Validity, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Minute)
}
