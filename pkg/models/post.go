package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TitleMaxLen is the maximum length of a post title.
	TitleMaxLen = 160
	// SummaryMaxLen is the maximum length of a post summary.
	SummaryMaxLen = 280
)

// Post represents a single authored tutorial with its tag set.
// AuthorID is fixed at creation; only the author may mutate or delete the post.
type Post struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"not null;size:160"`
	Content     string    `json:"content" gorm:"not null;type:text"`
	Summary     string    `json:"summary" gorm:"not null;size:280"`
	IsPublished bool      `json:"isPublished" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"not null"`
	AuthorID    uuid.UUID `json:"authorId" gorm:"not null;type:uuid;index:idx_posts_author"`

	Author *User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	// Many-to-Many Relations
	Tags []Tag `json:"-" gorm:"many2many:post_tags"`
}

// PostAuthor is the author summary embedded in a shaped post.
type PostAuthor struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
}

// PostDTO is the shaped representation of a post returned across the API.
type PostDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Summary     string     `json:"summary"`
	IsPublished bool       `json:"isPublished"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Author      PostAuthor `json:"author"`
	Tags        []string   `json:"tags"`
}

// Shape builds the public representation of the post, flattening the tag
// set to names and falling back from display name to username for the author.
func (p *Post) Shape() PostDTO {
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Name)
	}

	return PostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Summary:     p.Summary,
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Author: PostAuthor{
			ID:          p.AuthorID,
			DisplayName: p.Author.AuthorName(),
		},
		Tags: tags,
	}
}

// ShapePosts shapes a slice of posts, preserving order.
func ShapePosts(posts []Post) []PostDTO {
	dtos := make([]PostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, posts[i].Shape())
	}
	return dtos
}
