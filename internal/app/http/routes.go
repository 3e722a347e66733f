package routes

import (
	authapi "bandsite-api/internal/api/auth"
	carouselapi "bandsite-api/internal/api/carousel"
	concertsapi "bandsite-api/internal/api/concerts"
	postsapi "bandsite-api/internal/api/posts"
	"bandsite-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.StructuredLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public reads
	r.GET("/posts", postsapi.GetAllPosts)
	r.GET("/posts/:id", postsapi.GetPost)
	r.GET("/concerts", concertsapi.GetAllConcerts)
	r.GET("/concerts/:id", concertsapi.GetConcert)
	r.GET("/carousel", carouselapi.GetAllPictures)
	r.GET("/carousel/:id", carouselapi.GetPicture)

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/auth/login", authapi.Login)

	// Authenticated writes
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeInputMiddleware())

	auth.POST("/posts", postsapi.CreatePost)
	auth.PUT("/posts/:id", postsapi.UpdatePost)
	auth.DELETE("/posts/:id", postsapi.DeletePost)

	auth.POST("/concerts", concertsapi.CreateConcert)
	auth.PUT("/concerts/:id", concertsapi.UpdateConcert)
	auth.DELETE("/concerts/:id", concertsapi.DeleteConcert)

	auth.POST("/carousel", carouselapi.AddPicture)
	auth.PUT("/carousel/position/:id", carouselapi.SwitchPositions)
	auth.PUT("/carousel/:id", carouselapi.ChangeImage)
	auth.DELETE("/carousel/:id", carouselapi.DeletePicture)
}
