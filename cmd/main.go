package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"devblogg/backend/internal/api/handler"
	"devblogg/backend/internal/config"
	"devblogg/backend/internal/content"
	"devblogg/backend/internal/engagement"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/modfeed"
	"devblogg/backend/internal/moderation"
	"devblogg/backend/internal/report"
	"devblogg/backend/internal/storage"
	"devblogg/backend/internal/telegram"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL. TranslateError turns driver unique-violations into
	// gorm.ErrDuplicatedKey, which the storage layer's slug/report/toggle
	// retry logic depends on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.PostBookmark{},
		&models.PostReport{},
		&models.ModerationLog{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting devblogg Backend...")

	cfg := config.Load()

	// 1. Dependencies and storage
	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	// 2. Domain services
	engine := moderation.NewService(s)
	contentSvc := content.NewService(s)
	engagementSvc := engagement.NewService(s)
	reportSvc := report.NewService(s, engine)

	// 3. Moderation feed hub + optional Telegram notifier
	hub := modfeed.NewHub(s)
	go hub.Run()

	if cfg.TelegramToken != "" {
		notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to start the Telegram notifier: %v", err)
		}
		notifier.Run()
		hub.RegisterCh <- notifier
	}

	// 4. Gin and routing
	r := gin.Default()
	h := handler.NewHandler(contentSvc, engine, engagementSvc, reportSvc, hub, s, []byte(cfg.JWTSecret))
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
