// Command create-admin creates an admin account, or resets the password of an
// existing one with -reset.
//
//	go run ./cmd/create-admin -username admin -password s3cret
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/infrastructure/postgres"
	"github.com/DsDac0/Website/pkg/config"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password (min 8 characters)")
	emailAddr := flag.String("email", "", "optional email")
	reset := flag.Bool("reset", false, "reset the password and reactivate an existing admin")
	flag.Parse()

	if *username == "" || len(*password) < 8 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Driver:   cfg.Database.Driver,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		DSN:      cfg.Database.DSN,
		LogLevel: "silent",
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx := context.Background()
	repo := postgres.NewAdminUserRepository(db)

	existing, err := repo.GetByUsername(ctx, *username)
	switch {
	case err == nil:
		if !*reset {
			log.Fatalf("Admin %q already exists; pass -reset to change its password", *username)
		}
		existing.Password = string(hashed)
		existing.IsActive = true
		if *emailAddr != "" {
			existing.Email = emailAddr
		}
		if err := repo.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin: %v", err)
		}
		fmt.Printf("Admin %q updated (id %d)\n", existing.Username, existing.ID)

	case errors.Is(err, repositories.ErrNotFound):
		admin := &models.AdminUser{Username: *username, Password: string(hashed), IsActive: true}
		if *emailAddr != "" {
			admin.Email = emailAddr
		}
		if err := repo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		fmt.Printf("Admin %q created (id %d)\n", admin.Username, admin.ID)

	default:
		log.Fatalf("Failed to look up admin: %v", err)
	}
}
