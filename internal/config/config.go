package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment. A .env file in the
// working directory is loaded first when present.
type Config struct {
	ServerPort string

	// DBDriver selects the item store backend: postgres, sqlite or file.
	DBDriver    string
	DatabaseURL string
	SQLitePath  string
	DataFile    string

	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	ContactInbox  string

	MessageRetention time.Duration

	S3Region string
	S3Bucket string
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine in production; everything comes from the
	// real environment there.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "./data/gallery.db"),
		DataFile:      getEnv("DATA_FILE", "./data/gallery.json"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Gallery"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
		ContactInbox:  os.Getenv("CONTACT_INBOX"),

		MessageRetention: time.Duration(getEnvInt("MESSAGE_RETENTION_DAYS", 90)) * 24 * time.Hour,

		S3Region: getEnv("S3_REGION", "us-east-1"),
		S3Bucket: os.Getenv("S3_BUCKET_NAME"),
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	case "sqlite", "file":
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (want postgres, sqlite or file)", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
