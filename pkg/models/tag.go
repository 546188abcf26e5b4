package models

import "github.com/google/uuid"

// Tag represents a topic label attachable to many posts.
// Names are unique under case-insensitive comparison; the casing of the
// first insertion is what gets stored.
type Tag struct {
	ID   uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Name string    `json:"name" gorm:"not null;index:idx_tags_name"`

	// Many-to-Many Relations
	Posts []*Post `json:"-" gorm:"many2many:post_tags"`
}
