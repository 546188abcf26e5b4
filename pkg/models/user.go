package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex:idx_users_email"`
	Username     string    `json:"username" gorm:"not null;uniqueIndex:idx_users_username"`
	DisplayName  string    `json:"displayName"`
	Bio          string    `json:"bio"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"not null"`

	Posts []*Post `json:"-" gorm:"foreignKey:AuthorID"`
}

// AuthorName returns the name shown next to a user's content:
// the display name when set, otherwise the username.
func (u *User) AuthorName() string {
	if u == nil {
		return ""
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Account is the shaped representation returned by the accounts endpoints.
// Token carries the bearer credential for subsequent requests.
type Account struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Token       string    `json:"token"`
}

// ToAccount shapes the user for the API boundary with the given token.
func (u *User) ToAccount(token string) Account {
	return Account{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Token:       token,
	}
}
