package carousel

import (
	"net/http"
	"strconv"
	"time"

	"bandsite-api/config"
	"bandsite-api/database"
	"bandsite-api/internal/apperrors"
	"bandsite-api/internal/domain/carousel"
	"bandsite-api/internal/infra/cache"
	"bandsite-api/internal/infra/imagestore"

	"github.com/gin-gonic/gin"
)

const listCacheKey = "carousel:all"

var (
	images   imagestore.Store
	cacheTTL time.Duration
)

func Init(store imagestore.Store, ttl time.Duration) {
	images = store
	cacheTTL = ttl
}

func policy() Policy {
	return Policy{
		MinPictures: config.C.Carousel.MinPictures,
		MaxPictures: config.C.Carousel.MaxPictures,
	}
}

func invalidID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Invalid picture ID",
		"errors":  []string{"Picture ID must be a valid number"},
	})
}

func serviceError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusOf(err), gin.H{
		"message": apperrors.MessageOf(err),
		"errors":  []string{apperrors.MessageOf(err)},
	})
}

func GetAllPictures(c *gin.Context) {
	var out []carousel.Picture
	err := cache.Aside(c.Request.Context(), listCacheKey, &out, cacheTTL, func() error {
		var err error
		out, err = List(database.DB)
		return err
	})
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{"message": apperrors.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out, "message": "Pictures retrieved successfully"})
}

func GetPicture(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		invalidID(c)
		return
	}

	picture, err := GetByID(database.DB, uint(id))
	if err != nil {
		c.JSON(apperrors.StatusOf(err), gin.H{"message": apperrors.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": picture, "message": "Picture retrieved successfully"})
}

func AddPicture(c *gin.Context) {
	var req CreateCarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed JSON", "errors": []string{err.Error()}})
		return
	}

	req = SanitizeCreate(req)
	if v := ValidateCreate(req); !v.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": v.Messages()})
		return
	}

	picture, err := Add(c.Request.Context(), database.DB, images, policy(), req)
	if err != nil {
		serviceError(c, err)
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusCreated, gin.H{"data": picture, "message": "Picture added successfully"})
}

func ChangeImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		invalidID(c)
		return
	}

	var req UpdateCarouselRequest
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

	picture, err := UpdateImage(c.Request.Context(), database.DB, images, uint(id), req)
	if err != nil {
		serviceError(c, err)
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusOK, gin.H{"data": picture, "message": "Picture updated successfully"})
}

func SwitchPositions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		invalidID(c)
		return
	}

	var req SwitchPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed JSON", "errors": []string{err.Error()}})
		return
	}

	if v := ValidateSwitchPosition(req); !v.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": v.Messages()})
		return
	}

	if err := Switch(database.DB, uint(id), req); err != nil {
		serviceError(c, err)
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Picture positions switched successfully"})
}

func DeletePicture(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		invalidID(c)
		return
	}

	if err := Remove(c.Request.Context(), database.DB, images, policy(), uint(id)); err != nil {
		serviceError(c, err)
		return
	}

	cache.Invalidate(c.Request.Context(), listCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Picture deleted successfully"})
}
