// Command seed wipes the database and fills it with sample users, posts and
// comments, with varied like counts for trying out the sorting modes.
package main

import (
	"log"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Dipeshrajjoshi/Blog-Platform/internal/database"
	"github.com/Dipeshrajjoshi/Blog-Platform/internal/models"
)

func main() {
	db := database.New().GetDB()

	log.Println("Clearing old data...")
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Comment{}).Error; err != nil {
		log.Fatalf("failed to clear comments: %v", err)
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Post{}).Error; err != nil {
		log.Fatalf("failed to clear posts: %v", err)
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error; err != nil {
		log.Fatalf("failed to clear users: %v", err)
	}

	log.Println("Creating users...")
	users := []models.User{
		{Username: "john_doe", Email: "john@example.com", Password: hash("password123")},
		{Username: "jane_smith", Email: "jane@example.com", Password: hash("password456")},
		{Username: "bob_jones", Email: "bob@example.com", Password: hash("password789")},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("failed to create users: %v", err)
	}
	log.Printf("Created %d users", len(users))

	log.Println("Creating blog posts...")
	posts := []models.Post{
		{
			Title:    "Getting Started with PostgreSQL",
			Content:  "PostgreSQL is a powerful open source relational database. It is perfect for modern applications.",
			AuthorID: users[0].ID,
			Tags:     pq.StringArray{"postgresql", "database", "tutorial"},
			Category: "Tutorial",
			Likes:    15,
		},
		{
			Title:    "Top 10 Go Tips",
			Content:  "Here are my favorite Go tips that will make you a better developer and help you write cleaner code.",
			AuthorID: users[0].ID,
			Tags:     pq.StringArray{"go", "tips", "programming"},
			Category: "Programming",
			Likes:    42,
		},
		{
			Title:    "Why I Love Backend Development",
			Content:  "Backend development has changed the way I think about software. Here is why I love it.",
			AuthorID: users[1].ID,
			Tags:     pq.StringArray{"backend", "go", "career"},
			Category: "Technology",
			Likes:    8,
		},
		{
			Title:    "Building REST APIs",
			Content:  "REST APIs are the backbone of modern web development. Let me show you how to build one from scratch.",
			AuthorID: users[1].ID,
			Tags:     pq.StringArray{"api", "rest", "backend"},
			Category: "Tutorial",
			Likes:    23,
		},
		{
			Title:    "My Coding Journey",
			Content:  "I started coding 5 years ago and here is everything I have learned along the way.",
			AuthorID: users[2].ID,
			Tags:     pq.StringArray{"personal", "coding", "story"},
			Category: "Personal",
			Likes:    5,
		},
	}
	if err := db.Create(&posts).Error; err != nil {
		log.Fatalf("failed to create posts: %v", err)
	}
	log.Printf("Created %d blog posts", len(posts))

	log.Println("Creating comments...")
	comments := []models.Comment{
		{Text: "Great article! Very helpful for beginners.", CommenterID: users[1].ID, PostID: posts[0].ID, Likes: 3},
		{Text: "Thanks for sharing these tips!", CommenterID: users[2].ID, PostID: posts[1].ID, Likes: 7},
		{Text: "I agree, backend work is amazing!", CommenterID: users[0].ID, PostID: posts[2].ID, Likes: 2},
		{Text: "Could you explain more about authentication?", CommenterID: users[2].ID, PostID: posts[3].ID, Likes: 5},
		{Text: "Inspiring story! Keep it up.", CommenterID: users[0].ID, PostID: posts[4].ID, Likes: 1},
	}
	if err := db.Create(&comments).Error; err != nil {
		log.Fatalf("failed to create comments: %v", err)
	}
	log.Printf("Created %d comments", len(comments))

	log.Println("✅ Database seeded successfully")
}

func hash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	return string(hashed)
}
