// Package db opens the application's relational storage connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	articleentity "cms_backend/internal/feature/articles/domain/entity"
	authadapters "cms_backend/internal/feature/auth/adapters"
	commententity "cms_backend/internal/feature/comments/domain/entity"
	userentity "cms_backend/internal/feature/users/domain/entity"
)

// OpenDB connects to Postgres using environment configuration and retries
// for up to a minute so the server survives a database that is still
// starting. TranslateError lets repositories match gorm.ErrDuplicatedKey
// regardless of driver.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&userentity.User{},
			&articleentity.Article{},
			&commententity.Comment{},
			&authadapters.SessionModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
