package models

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID        int            `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"not null" json:"content"`
	AuthorID  int            `json:"author_id"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"author"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	Category  string         `gorm:"default:General" json:"category"`
	Likes     int            `gorm:"default:0;check:likes >= 0" json:"likes"`
	CreatedAt time.Time      `json:"created_at"`
}

type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	AuthorID int      `json:"author_id" binding:"required"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

type UpdatePostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}
