package posts

import (
	"net/http"
	"strconv"
	"time"

	"bandsite-api/database"
	"bandsite-api/internal/apperrors"
	"bandsite-api/internal/domain/posts"
	"bandsite-api/internal/infra/cache"
	"bandsite-api/internal/infra/imagestore"

	"github.com/gin-gonic/gin"
)

const listCacheKey = "posts:all"

var (
	images   imagestore.Store
	cacheTTL time.Duration
)

// Init wires the image store and cache TTL used by the handlers.
func Init(store imagestore.Store, ttl time.Duration) {
	images = store
	cacheTTL = ttl
}

func GetAllPosts(c *gin.Context) {
	var out []posts.Post
	err := cache.Aside(c.Request.Context(), listCacheKey, &out, cacheTTL, func() error {
		var err error
		out, err = List(database.DB)
		return err
	})
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{"message": apperrors.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out, "message": "Posts retrieved successfully"})
}

func GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid post ID",
			"errors":  []string{"Post ID must be a valid number"},
		})
		return
	}

	post, err := GetByID(database.DB, uint(id))
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{"message": apperrors.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post, "message": "Post retrieved successfully"})
}

func CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed JSON", "errors": []string{err.Error()}})
		return
	}

	req = SanitizeCreate(req)
	if v := ValidateCreate(req); !v.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": v.Messages()})
		return
	}

	post, err := Create(c.Request.Context(), database.DB, images, req)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{
			"message": apperrors.MessageOf(err),
			"errors":  []string{apperrors.MessageOf(err)},
		})
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusCreated, gin.H{"data": post, "message": "Post created successfully"})
}

func UpdatePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid post ID",
			"errors":  []string{"Post ID must be a valid number"},
		})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed JSON", "errors": []string{err.Error()}})
		return
	}
	req.ID = c.Param("id")

	req = SanitizeUpdate(req)
	if v := ValidateUpdate(req); !v.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": v.Messages()})
		return
	}

	post, err := Update(c.Request.Context(), database.DB, images, uint(id), req)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{
			"message": apperrors.MessageOf(err),
			"errors":  []string{apperrors.MessageOf(err)},
		})
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusOK, gin.H{"data": post, "message": "Post updated successfully"})
}

func DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid post ID",
			"errors":  []string{"Post ID must be a valid number"},
		})
		return
	}

	if err := Delete(c.Request.Context(), database.DB, images, uint(id)); err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{
			"message": apperrors.MessageOf(err),
			"errors":  []string{apperrors.MessageOf(err)},
		})
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
