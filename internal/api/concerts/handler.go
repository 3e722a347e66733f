package concerts

import (
	"net/http"
	"strconv"
	"time"

	"bandsite-api/database"
	"bandsite-api/internal/apperrors"
	"bandsite-api/internal/domain/concerts"
	"bandsite-api/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

const listCacheKey = "concerts:all"

var cacheTTL time.Duration

func Init(ttl time.Duration) {
	cacheTTL = ttl
}

func GetAllConcerts(c *gin.Context) {
	var out []concerts.Concert
	err := cache.Aside(c.Request.Context(), listCacheKey, &out, cacheTTL, func() error {
		var err error
		out, err = List(database.DB)
		return err
	})
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{"message": apperrors.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out, "message": "Concerts retrieved successfully"})
}

func GetConcert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid concert ID",
			"errors":  []string{"Concert ID must be a valid number"},
		})
		return
	}

	concert, err := GetByID(database.DB, uint(id))
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{"message": apperrors.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": concert, "message": "Concert retrieved successfully"})
}

func CreateConcert(c *gin.Context) {
	var req CreateConcertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed JSON", "errors": []string{err.Error()}})
		return
	}

	req = SanitizeCreate(req)
	if v := ValidateCreate(req); !v.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": v.Messages()})
		return
	}

	concert, err := Create(database.DB, req)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{
			"message": apperrors.MessageOf(err),
			"errors":  []string{apperrors.MessageOf(err)},
		})
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusCreated, gin.H{"data": concert, "message": "Concert created successfully"})
}

func UpdateConcert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid concert ID",
			"errors":  []string{"Concert ID must be a valid number"},
		})
		return
	}

	var req UpdateConcertRequest
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

	concert, err := Update(database.DB, uint(id), req)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{
			"message": apperrors.MessageOf(err),
			"errors":  []string{apperrors.MessageOf(err)},
		})
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusOK, gin.H{"data": concert, "message": "Concert updated successfully"})
}

func DeleteConcert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid concert ID",
			"errors":  []string{"Concert ID must be a valid number"},
		})
		return
	}

	if err := Delete(database.DB, uint(id)); err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{
			"message": apperrors.MessageOf(err),
			"errors":  []string{apperrors.MessageOf(err)},
		})
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Concert deleted successfully"})
}
