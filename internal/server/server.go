package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Dipeshrajjoshi/Blog-Platform/internal/database"
	"github.com/Dipeshrajjoshi/Blog-Platform/internal/handlers"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// New wires a server around an already-open database service.
func New(db database.Service) *Server {
	return &Server{
		db:      db,
		handler: handlers.NewHandler(db.GetDB()),
	}
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database from environment
	db := database.New()

	newServer := New(db)

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Root endpoint listing the available routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Blog Platform API is running!",
			"endpoints": gin.H{
				"users": gin.H{
					"register": "POST /api/users/register",
					"login":    "POST /api/users/login",
				},
				"posts": gin.H{
					"create": "POST /api/posts",
					"getAll": "GET /api/posts (supports ?page, ?limit, ?sort, ?tag, ?category, ?author)",
					"getOne": "GET /api/posts/:id",
					"update": "PUT /api/posts/:id",
					"delete": "DELETE /api/posts/:id",
					"like":   "POST /api/posts/:id/like",
				},
				"comments": gin.H{
					"create":     "POST /api/comments",
					"getForPost": "GET /api/posts/:id/comments (supports ?page, ?limit, ?sort)",
					"delete":     "DELETE /api/comments/:id",
					"like":       "POST /api/comments/:id/like",
				},
			},
		})
	})

	// API routes. No authentication middleware: the platform issues no
	// tokens and callers identify themselves with plain identifiers.
	api := r.Group("/api")
	{
		// User routes
		api.POST("/users/register", s.handler.Auth.Register)
		api.POST("/users/login", s.handler.Auth.Login)

		// Post routes
		api.POST("/posts", s.handler.Post.CreatePost)
		api.GET("/posts", s.handler.Post.GetPosts)
		api.GET("/posts/:id", s.handler.Post.GetPost)
		api.PUT("/posts/:id", s.handler.Post.UpdatePost)
		api.DELETE("/posts/:id", s.handler.Post.DeletePost)
		api.POST("/posts/:id/like", s.handler.Post.LikePost)

		// Comment routes
		api.POST("/comments", s.handler.Comment.CreateComment)
		api.GET("/posts/:id/comments", s.handler.Comment.GetComments)
		api.DELETE("/comments/:id", s.handler.Comment.DeleteComment)
		api.POST("/comments/:id/like", s.handler.Comment.LikeComment)
	}

	return r
}
