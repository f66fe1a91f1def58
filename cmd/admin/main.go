package main

import (
	"fmt"
	"log"
	"os"

	"devblogg/backend/internal/config"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/moderation"
	"devblogg/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI
	engine := moderation.NewService(storageSvc)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	actor := adminPrincipal(storageSvc)
	command := os.Args[1]

	switch command {
	case "ban":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin ban <user_id> [reason]")
			os.Exit(1)
		}
		userID := os.Args[2]
		reason := ""
		if len(os.Args) > 3 {
			reason = os.Args[3]
		}
		if _, err := engine.BanUser(actor, userID, reason); err != nil {
			log.Fatalf("Error banning user: %v", err)
		}
		fmt.Printf("User %s has been banned.\n", userID)

	case "unban":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin unban <user_id>")
			os.Exit(1)
		}
		userID := os.Args[2]
		if _, err := engine.UnbanUser(actor, userID); err != nil {
			log.Fatalf("Error unbanning user: %v", err)
		}
		fmt.Printf("User %s has been unbanned.\n", userID)

	case "approve":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin approve <post_id>")
			os.Exit(1)
		}
		postID := os.Args[2]
		if _, err := engine.Approve(actor, postID); err != nil {
			log.Fatalf("Error approving post: %v", err)
		}
		fmt.Printf("Post %s has been approved.\n", postID)

	case "reject":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin reject <post_id> <reason>")
			os.Exit(1)
		}
		postID := os.Args[2]
		if _, err := engine.Reject(actor, postID, os.Args[3]); err != nil {
			log.Fatalf("Error rejecting post: %v", err)
		}
		fmt.Printf("Post %s has been rejected.\n", postID)

	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

// adminPrincipal resolves the acting operator from ADMIN_USER_ID so every CLI
// action is attributed to a real account in the audit log.
func adminPrincipal(s storage.Storage) models.Principal {
	actorID := os.Getenv("ADMIN_USER_ID")
	if actorID == "" {
		log.Fatal("ADMIN_USER_ID is not set")
	}

	user, err := s.GetUserByID(actorID)
	if err != nil {
		log.Fatalf("failed to load admin account %s: %v", actorID, err)
	}
	if !user.Role.CanModerate() {
		log.Fatalf("account %s has role %s, moderation access required", actorID, user.Role)
	}

	return models.Principal{UserID: user.ID, Role: user.Role, IsBanned: user.IsBanned}
}
