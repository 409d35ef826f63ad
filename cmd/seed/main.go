// Command seed populates a development database with an admin account,
// a regular user, and a couple of articles with comments.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	articleadapters "cms_backend/internal/feature/articles/adapters"
	articleentity "cms_backend/internal/feature/articles/domain/entity"
	commentadapters "cms_backend/internal/feature/comments/adapters"
	commententity "cms_backend/internal/feature/comments/domain/entity"
	useradapters "cms_backend/internal/feature/users/adapters"
	usersdomain "cms_backend/internal/feature/users/domain"
	userentity "cms_backend/internal/feature/users/domain/entity"
	"cms_backend/internal/platform/dao"
	infradb "cms_backend/internal/platform/db"
)

type seedUser struct {
	username string
	password string
	role     string
}

func main() {
	_ = godotenv.Load()

	// Seeding implies a schema.
	if os.Getenv("RUN_MIGRATIONS") == "" {
		os.Setenv("RUN_MIGRATIONS", "true")
	}

	db := infradb.OpenDB()
	base := dao.New(db)
	ctx := context.Background()

	users := useradapters.NewUserGorm(base)
	articles := articleadapters.NewArticleGorm(base)
	comments := commentadapters.NewCommentGorm(base)

	seedUsers := []seedUser{
		{username: "admin", password: envOr("SEED_ADMIN_PASSWORD", "change-me-admin"), role: userentity.RoleAdmin},
		{username: "reader", password: envOr("SEED_USER_PASSWORD", "change-me-reader"), role: userentity.RoleUser},
	}

	byName := map[string]*userentity.User{}
	for _, s := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %s: %v", s.username, err)
		}
		u := &userentity.User{Username: s.username, Password: string(hashed), Role: s.role}
		if err := users.Save(ctx, u); err != nil {
			if errors.Is(err, usersdomain.ErrDuplicateUsername) {
				log.Printf("user %s already exists, skipping", s.username)
				existing, err := users.LoadByUsername(ctx, s.username)
				if err != nil {
					log.Fatalf("load existing user %s: %v", s.username, err)
				}
				byName[s.username] = existing
				continue
			}
			log.Fatalf("seed user %s: %v", s.username, err)
		}
		byName[s.username] = u
		log.Printf("seeded user %s (id=%d, role=%s)", u.Username, u.ID, u.Role)
	}

	seedArticles := []*articleentity.Article{
		{Title: "Welcome", Content: "This site is powered by a small CMS backend."},
		{Title: "Second post", Content: "Comments are open to registered readers."},
	}
	for _, a := range seedArticles {
		if err := articles.Save(ctx, a); err != nil {
			log.Fatalf("seed article %q: %v", a.Title, err)
		}
		log.Printf("seeded article %q (id=%d)", a.Title, a.ID)
	}

	reader := byName["reader"]
	c := &commententity.Comment{
		Content:   "First!",
		ArticleID: seedArticles[0].ID,
		AuthorID:  reader.ID,
	}
	if err := comments.Save(ctx, c); err != nil {
		log.Fatalf("seed comment: %v", err)
	}
	log.Printf("seeded comment id=%d", c.ID)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
