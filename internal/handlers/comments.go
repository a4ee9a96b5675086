package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dipeshrajjoshi/Blog-Platform/internal/models"
)

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// GetComments lists comments for a post with the same pagination and sorting
// semantics as the post listing (default limit 20).
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID := c.Param("id")

	query := h.db.Model(&models.Comment{}).Where("post_id = ?", postID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	page, limit, skip := parsePagination(c, 20)

	var comments []models.Comment
	err := query.
		Preload("Commenter").
		Order(sortOrder(c.Query("sort"))).
		Offset(skip).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(comments),
		"total":    total,
		"page":     page,
		"pages":    pageCount(total, limit),
		"comments": comments,
	})
}

// CreateComment attaches a comment to an existing post. Nothing is persisted
// when the target post does not exist.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := h.db.First(&post, "id = ?", input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	comment := models.Comment{
		Text:        input.Text,
		CommenterID: input.CommenterID,
		PostID:      post.ID,
	}

	if err := comment.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.db.Preload("Commenter").First(&comment, comment.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// DeleteComment deletes a single comment. Comments have no children, so there
// is no cascade.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")

	var comment models.Comment
	if err := h.db.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if err := h.db.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// LikeComment increments the likes counter by one, same unattributed atomic
// semantics as post likes.
func (h *CommentHandler) LikeComment(c *gin.Context) {
	commentID := c.Param("id")

	res := h.db.Model(&models.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var comment models.Comment
	if err := h.db.Preload("Commenter").First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment liked successfully",
		"likes":   comment.Likes,
		"comment": comment,
	})
}
