package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Comment *CommentHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(db),
		Post:    NewPostHandler(db),
		Comment: NewCommentHandler(db),
	}
}

// parsePagination reads ?page and ?limit with defaults. Page is 1-based and
// floored at 1; limit is passed through uncapped.
func parsePagination(c *gin.Context, defaultLimit int) (page, limit, skip int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}

// sortOrder maps the ?sort keywords onto ORDER BY clauses.
// Unknown values fall back to newest-first, like the default.
func sortOrder(sort string) string {
	switch sort {
	case "oldest":
		return "created_at asc"
	case "popular":
		return "likes desc"
	default: // "newest"
		return "created_at desc"
	}
}

// pageCount is ceil(total/limit) for the listing metadata.
func pageCount(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}
