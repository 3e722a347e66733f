package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	DBURL string `env:"DB_URL,required"`

	JWTSecret         string `env:"JWT_SECRET,required"`
	AdminEmail        string `env:"ADMIN_EMAIL,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// Optional second verifier for externally issued ID tokens.
	OIDCIssuer   string `env:"AUTH_OIDC_ISSUER"`
	OIDCClientID string `env:"AUTH_OIDC_CLIENT_ID"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	Storage  StorageConfig  `envPrefix:"STORAGE_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Carousel CarouselConfig `envPrefix:"CAROUSEL_"`
}

type StorageConfig struct {
	// Driver selects the image store backend: "local" or "s3".
	Driver    string `env:"DRIVER" envDefault:"local"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`
	MaxSize   int64  `env:"MAX_SIZE" envDefault:"10485760"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET" envDefault:"bandsite"`
	S3UseSSL    bool   `env:"S3_USE_SSL" envDefault:"true"`
}

type RedisConfig struct {
	// Addr empty means the read cache is disabled.
	Addr     string `env:"ADDR"`
	CacheTTL int    `env:"CACHE_TTL_SECONDS" envDefault:"60"`
}

// CarouselConfig carries the carousel policy bounds. The defaults come from
// the product rules: never fewer than 3 homepage pictures, never more than
// 100.
type CarouselConfig struct {
	MinPictures int `env:"MIN_PICTURES" envDefault:"3"`
	MaxPictures int `env:"MAX_PICTURES" envDefault:"100"`
}

var C *Config

// LoadEnv reads .env (when present) and parses the environment into C.
// Missing required variables are fatal at boot.
func LoadEnv() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	C = cfg
	return cfg
}
