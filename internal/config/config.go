// Package config holds the fixed moderation constants and the environment
// driven runtime settings shared by the server and the admin CLI.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is everything read from the environment at startup.
type Config struct {
	DatabaseDSN    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	ListenAddr     string
	TelegramToken  string // empty disables the notifier
	TelegramChatID int64
}

// Load reads .env (if present) and assembles the runtime config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg := Config{
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getenv("JWT_SECRET", "dev-only-secret"),
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "devblogg"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "devblogg"),
			getenv("DB_PORT", "5432"),
		)
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Warning: invalid REDIS_DB %q, using 0", v)
		} else {
			cfg.RedisDB = n
		}
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("Warning: invalid TELEGRAM_CHAT_ID %q, notifier disabled", v)
			cfg.TelegramToken = ""
		} else {
			cfg.TelegramChatID = n
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
