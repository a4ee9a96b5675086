package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength caps comment text after trimming.
const MaxCommentLength = 1000

var (
	ErrCommentEmpty   = errors.New("comment text is required")
	ErrCommentTooLong = errors.New("comment cannot exceed 1000 characters")
)

type Comment struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Text        string    `gorm:"not null" json:"text"`
	CommenterID int       `json:"commenter_id"`
	Commenter   User      `gorm:"foreignKey:CommenterID" json:"commenter"`
	PostID      int       `json:"post_id"`
	Likes       int       `gorm:"default:0;check:likes >= 0" json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Text        string `json:"text" binding:"required"`
	CommenterID int    `json:"commenter_id" binding:"required"`
	PostID      int    `json:"post_id" binding:"required"`
}

// Validate trims the comment text in place and rejects empty or oversized
// comments before they reach the database.
func (c *Comment) Validate() error {
	c.Text = strings.TrimSpace(c.Text)
	if c.Text == "" {
		return ErrCommentEmpty
	}
	if utf8.RuneCountInString(c.Text) > MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}
