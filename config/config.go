package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config collects every environment-driven setting. Built once in main and
// passed down explicitly; no package holds ambient state.
type Config struct {
	Port           string
	DatabaseURL    string
	DatabaseName   string
	VisionProvider string // "mock" (default) or "rekognition"
	AWSRegion      string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),
		VisionProvider: os.Getenv("VISION_PROVIDER"),
		AWSRegion:      os.Getenv("AWS_REGION"),
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.VisionProvider == "" {
		cfg.VisionProvider = "mock"
	}
	return cfg
}

// ConnectDB opens the optional Postgres connection. A missing DATABASE_URL
// is not an error: the caller falls back to the disabled store.
func (c Config) ConnectDB() (*gorm.DB, error) {
	if c.DatabaseURL == "" {
		return nil, nil
	}
	return gorm.Open(postgres.Open(c.DatabaseURL), &gorm.Config{})
}
