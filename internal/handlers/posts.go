package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Dipeshrajjoshi/Blog-Platform/internal/models"
)

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

// GetPosts lists posts with optional tag/category/author filters, pagination
// and sorting (?sort=newest|oldest|popular).
func (h *PostHandler) GetPosts(c *gin.Context) {
	query := h.db.Model(&models.Post{})

	if tag := c.Query("tag"); tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if author := c.Query("author"); author != "" {
		query = query.Where("author_id = ?", author)
	}
	// New session so the same filtered query serves both Count and Find.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	page, limit, skip := parsePagination(c, 10)

	var posts []models.Post
	err := query.
		Preload("Author").
		Order(sortOrder(c.Query("sort"))).
		Offset(skip).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// If no posts, return empty array not null
	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(posts),
		"total": total,
		"page":  page,
		"pages": pageCount(total, limit),
		"posts": posts,
	})
}

// GetPost returns a single post by ID
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")
	var post models.Post

	if err := h.db.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := input.Category
	if category == "" {
		category = "General"
	}

	post := models.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: input.AuthorID,
		Tags:     pq.StringArray(input.Tags),
		Category: category,
	}
	if post.Tags == nil {
		post.Tags = pq.StringArray{}
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Reload with author information
	h.db.Preload("Author").First(&post, post.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

// UpdatePost replaces title/content/tags/category. Author and likes are not
// mutable through this path.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")

	var input models.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := h.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.Tags != nil {
		post.Tags = pq.StringArray(input.Tags)
	}
	if input.Category != "" {
		post.Category = input.Category
	}

	if err := h.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.db.Preload("Author").First(&post, post.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// DeletePost removes a post and every comment attached to it. The two deletes
// are separate statements; a crash in between leaves orphaned comments.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := h.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.db.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post and its comments deleted successfully"})
}

// LikePost increments the likes counter by one. The increment happens in the
// database so concurrent likes never lose updates. Likes are not attributed
// to a user and there is no de-duplication.
func (h *PostHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")

	res := h.db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var post models.Post
	if err := h.db.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post liked successfully",
		"likes":   post.Likes,
		"post":    post,
	})
}
