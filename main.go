package main

import (
	"context"
	"log"
	"time"

	"bandsite-api/config"
	"bandsite-api/database"
	carouselapi "bandsite-api/internal/api/carousel"
	concertsapi "bandsite-api/internal/api/concerts"
	postsapi "bandsite-api/internal/api/posts"
	routes "bandsite-api/internal/app/http"
	"bandsite-api/internal/app/http/middleware"
	"bandsite-api/internal/infra/cache"
	"bandsite-api/internal/infra/imagestore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func buildImageStore(cfg *config.Config) (imagestore.Store, *imagestore.Local) {
	if cfg.Storage.Driver == "s3" {
		store, err := imagestore.NewS3(
			cfg.Storage.S3Endpoint,
			cfg.Storage.S3AccessKey,
			cfg.Storage.S3SecretKey,
			cfg.Storage.S3Bucket,
			cfg.Storage.S3UseSSL,
			cfg.Storage.MaxSize,
		)
		if err != nil {
			log.Fatal("❌ Failed to init S3 image store:", err)
		}
		return store, nil
	}

	local, err := imagestore.NewLocal(cfg.Storage.PublicDir, cfg.Storage.MaxSize)
	if err != nil {
		log.Fatal("❌ Failed to init local image store:", err)
	}
	return local, local
}

func main() {
	cfg := config.LoadEnv()
	gin.SetMode(cfg.GinMode)

	database.InitDB()
	cache.InitRedis(cfg.Redis.Addr)

	store, local := buildImageStore(cfg)
	ttl := time.Duration(cfg.Redis.CacheTTL) * time.Second
	postsapi.Init(store, ttl)
	concertsapi.Init(ttl)
	carouselapi.Init(store, ttl)

	if cfg.OIDCIssuer != "" {
		if err := middleware.InitOIDC(context.Background(), cfg.OIDCIssuer, cfg.OIDCClientID); err != nil {
			log.Fatal("❌ Failed to init OIDC verifier:", err)
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded images are served straight from disk on the local driver.
	if local != nil {
		r.Static("/images", local.Dir())
	}

	routes.RegisterRoutes(r)

	r.Run(":" + cfg.Port)
}
