package server

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dipeshrajjoshi/Blog-Platform/internal/models"
)

func TestCreatePost(t *testing.T) {
	clearTables(t)
	author := createUser(t, "alice", "alice@example.com")

	t.Run("applies defaults", func(t *testing.T) {
		w := doJSON(t, http.MethodPost, "/api/posts", map[string]any{
			"title":     "Hello",
			"content":   "First post",
			"author_id": author.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decode(t, w)
		assert.Equal(t, "Post created successfully", body["message"])

		post := body["post"].(map[string]any)
		assert.Equal(t, "General", post["category"])
		assert.EqualValues(t, 0, post["likes"])
		assert.Empty(t, post["tags"])
		// Author expanded to the public view.
		assert.Equal(t, "alice", post["author"].(map[string]any)["username"])
	})

	t.Run("keeps provided tags and category", func(t *testing.T) {
		w := doJSON(t, http.MethodPost, "/api/posts", map[string]any{
			"title":     "Tagged",
			"content":   "Body",
			"author_id": author.ID,
			"tags":      []string{"go", "testing"},
			"category":  "Programming",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		post := decode(t, w)["post"].(map[string]any)
		assert.Equal(t, "Programming", post["category"])
		assert.Equal(t, []any{"go", "testing"}, post["tags"])
	})

	t.Run("missing title rejected", func(t *testing.T) {
		w := doJSON(t, http.MethodPost, "/api/posts", map[string]any{
			"content":   "no title",
			"author_id": author.ID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetPost(t *testing.T) {
	clearTables(t)
	author := createUser(t, "alice", "alice@example.com")
	post := createPost(t, models.Post{Title: "One", Content: "Body", AuthorID: author.ID})

	w := doJSON(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "One", body["title"])
	assert.Equal(t, "alice", body["author"].(map[string]any)["username"])

	w = doJSON(t, http.MethodGet, "/api/posts/999999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decode(t, w)["error"])
}

func TestUpdatePost(t *testing.T) {
	clearTables(t)
	author := createUser(t, "alice", "alice@example.com")
	post := createPost(t, models.Post{
		Title:    "Before",
		Content:  "Old body",
		AuthorID: author.ID,
		Tags:     pq.StringArray{"old"},
		Likes:    7,
	})

	w := doJSON(t, http.MethodPut, fmt.Sprintf("/api/posts/%d", post.ID), map[string]any{
		"title":    "After",
		"tags":     []string{"new", "fresh"},
		"category": "Updates",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode(t, w)["post"].(map[string]any)
	assert.Equal(t, "After", updated["title"])
	assert.Equal(t, "Old body", updated["content"]) // omitted field untouched
	assert.Equal(t, []any{"new", "fresh"}, updated["tags"])
	assert.Equal(t, "Updates", updated["category"])
	// Author and likes are immutable through update.
	assert.EqualValues(t, author.ID, updated["author_id"])
	assert.EqualValues(t, 7, updated["likes"])

	w = doJSON(t, http.MethodPut, "/api/posts/999999", map[string]any{"title": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostCascadesComments(t *testing.T) {
	clearTables(t)
	author := createUser(t, "alice", "alice@example.com")
	post := createPost(t, models.Post{Title: "Doomed", Content: "Body", AuthorID: author.ID})
	other := createPost(t, models.Post{Title: "Survivor", Content: "Body", AuthorID: author.ID})

	db := testDB.GetDB()
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Comment{
			Text: fmt.Sprintf("comment %d", i), CommenterID: author.ID, PostID: post.ID,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Comment{
		Text: "unrelated", CommenterID: author.ID, PostID: other.ID,
	}).Error)

	w := doJSON(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post and its comments deleted successfully", decode(t, w)["message"])

	w = doJSON(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", post.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 0, body["total"])
	assert.Empty(t, body["comments"])

	// Comments on other posts are untouched.
	var remaining int64
	db.Table("comments").Where("post_id = ?", other.ID).Count(&remaining)
	assert.EqualValues(t, 1, remaining)

	w = doJSON(t, http.MethodDelete, "/api/posts/999999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikePost(t *testing.T) {
	clearTables(t)
	author := createUser(t, "alice", "alice@example.com")
	post := createPost(t, models.Post{Title: "Likeable", Content: "Body", AuthorID: author.ID})

	t.Run("increments and returns the new count", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			w := doJSON(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), nil)
			require.Equal(t, http.StatusOK, w.Code)
			body := decode(t, w)
			assert.EqualValues(t, i, body["likes"])
			assert.Equal(t, "Post liked successfully", body["message"])
		}
	})

	t.Run("missing post", func(t *testing.T) {
		w := doJSON(t, http.MethodPost, "/api/posts/999999/like", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestConcurrentLikesAreNotLost(t *testing.T) {
	clearTables(t)
	author := createUser(t, "alice", "alice@example.com")
	post := createPost(t, models.Post{Title: "Hot", Content: "Body", AuthorID: author.ID})

	const likers = 25
	var wg sync.WaitGroup
	wg.Add(likers)
	for i := 0; i < likers; i++ {
		go func() {
			defer wg.Done()
			w := doJSON(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), nil)
			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()

	var got models.Post
	require.NoError(t, testDB.GetDB().First(&got, post.ID).Error)
	assert.Equal(t, likers, got.Likes)
}

// seedListingPosts creates five posts with staggered creation times and
// distinct like counts so every sort mode has a deterministic order.
func seedListingPosts(t *testing.T) (models.User, models.User) {
	t.Helper()
	alice := createUser(t, "alice", "alice@example.com")
	bob := createUser(t, "bob", "bob@example.com")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{Title: "p1", Content: "c", AuthorID: alice.ID, Tags: pq.StringArray{"go"}, Category: "Tutorial", Likes: 15, CreatedAt: base},
		{Title: "p2", Content: "c", AuthorID: alice.ID, Tags: pq.StringArray{"go", "tips"}, Category: "Programming", Likes: 42, CreatedAt: base.Add(1 * time.Hour)},
		{Title: "p3", Content: "c", AuthorID: bob.ID, Tags: pq.StringArray{"career"}, Category: "Personal", Likes: 8, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "p4", Content: "c", AuthorID: bob.ID, Tags: pq.StringArray{"api"}, Category: "Tutorial", Likes: 23, CreatedAt: base.Add(3 * time.Hour)},
		{Title: "p5", Content: "c", AuthorID: bob.ID, Tags: pq.StringArray{}, Category: "Personal", Likes: 5, CreatedAt: base.Add(4 * time.Hour)},
	}
	for i := range posts {
		createPost(t, posts[i])
	}
	return alice, bob
}

func listTitles(t *testing.T, path string) ([]string, map[string]any) {
	t.Helper()
	w := doJSON(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	raw := body["posts"].([]any)
	titles := make([]string, 0, len(raw))
	for _, p := range raw {
		titles = append(titles, p.(map[string]any)["title"].(string))
	}
	return titles, body
}

func TestListPostsSorting(t *testing.T) {
	clearTables(t)
	seedListingPosts(t)

	t.Run("newest is the default", func(t *testing.T) {
		titles, _ := listTitles(t, "/api/posts")
		assert.Equal(t, []string{"p5", "p4", "p3", "p2", "p1"}, titles)
	})

	t.Run("oldest ascends by creation", func(t *testing.T) {
		titles, _ := listTitles(t, "/api/posts?sort=oldest")
		assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, titles)
	})

	t.Run("popular descends by likes", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/api/posts?sort=popular", nil)
		require.Equal(t, http.StatusOK, w.Code)
		raw := decode(t, w)["posts"].([]any)
		prev := int(^uint(0) >> 1)
		for _, p := range raw {
			likes := int(p.(map[string]any)["likes"].(float64))
			assert.LessOrEqual(t, likes, prev)
			prev = likes
		}
		assert.Len(t, raw, 5)
	})
}

func TestListPostsPagination(t *testing.T) {
	clearTables(t)
	seedListingPosts(t)

	titles, body := listTitles(t, "/api/posts?sort=oldest&page=2&limit=2")
	assert.Equal(t, []string{"p3", "p4"}, titles)
	assert.EqualValues(t, 2, body["count"])
	assert.EqualValues(t, 5, body["total"])
	assert.EqualValues(t, 2, body["page"])
	assert.EqualValues(t, 3, body["pages"]) // ceil(5/2)

	// Last page holds the remainder.
	titles, body = listTitles(t, "/api/posts?sort=oldest&page=3&limit=2")
	assert.Equal(t, []string{"p5"}, titles)
	assert.EqualValues(t, 1, body["count"])

	// Beyond the last page: empty slice, same metadata.
	titles, body = listTitles(t, "/api/posts?sort=oldest&page=9&limit=2")
	assert.Empty(t, titles)
	assert.EqualValues(t, 5, body["total"])
}

func TestListPostsFilters(t *testing.T) {
	clearTables(t)
	_, bob := seedListingPosts(t)

	t.Run("by tag", func(t *testing.T) {
		titles, body := listTitles(t, "/api/posts?tag=go&sort=oldest")
		assert.Equal(t, []string{"p1", "p2"}, titles)
		assert.EqualValues(t, 2, body["total"])
	})

	t.Run("by category", func(t *testing.T) {
		titles, _ := listTitles(t, "/api/posts?category=Tutorial&sort=oldest")
		assert.Equal(t, []string{"p1", "p4"}, titles)
	})

	t.Run("by author", func(t *testing.T) {
		titles, _ := listTitles(t, fmt.Sprintf("/api/posts?author=%d&sort=oldest", bob.ID))
		assert.Equal(t, []string{"p3", "p4", "p5"}, titles)
	})

	t.Run("combined", func(t *testing.T) {
		titles, _ := listTitles(t, fmt.Sprintf("/api/posts?author=%d&category=Personal&sort=oldest", bob.ID))
		assert.Equal(t, []string{"p3", "p5"}, titles)
	})

	t.Run("no matches returns empty array", func(t *testing.T) {
		titles, body := listTitles(t, "/api/posts?tag=nosuchtag")
		assert.Empty(t, titles)
		assert.EqualValues(t, 0, body["total"])
		assert.EqualValues(t, 0, body["pages"])
	})
}
