package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"cms_backend/internal/app/di"
	"cms_backend/internal/app/router"
	articleadapters "cms_backend/internal/feature/articles/adapters"
	articlehandler "cms_backend/internal/feature/articles/transport/handler"
	articleusecase "cms_backend/internal/feature/articles/usecase"
	authhandler "cms_backend/internal/feature/auth/transport/handler"
	authusecase "cms_backend/internal/feature/auth/usecase"
	commentadapters "cms_backend/internal/feature/comments/adapters"
	commenthandler "cms_backend/internal/feature/comments/transport/handler"
	commentusecase "cms_backend/internal/feature/comments/usecase"
	useradapters "cms_backend/internal/feature/users/adapters"
	userhandler "cms_backend/internal/feature/users/transport/handler"
	userusecase "cms_backend/internal/feature/users/usecase"
	"cms_backend/internal/platform/cache"
	"cms_backend/internal/platform/dao"
	infradb "cms_backend/internal/platform/db"
	jwtmw "cms_backend/internal/platform/jwt"
	infraredis "cms_backend/internal/platform/redis"
	"cms_backend/internal/shared/ratelimiter"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
	articleCacheTTL = 5 * time.Minute

	loginAttemptsPerWindow = 10
	loginWindow            = time.Minute
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()
	base := dao.New(db)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := useradapters.NewUserGorm(base)
	articleRepo := articleadapters.NewArticleGorm(base)
	commentRepo := commentadapters.NewCommentGorm(base)
	sessionRepo := di.NewSessionRepository(rdb, base)

	// Article reads go through the Redis cache; user lookups never do.
	cachedArticleRepo := cache.NewCachingArticleRepository(rdb, articleCacheTTL, articleRepo, "articles")

	// Token generator
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewGenerator(secret, accessTokenTTL)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, accessTokenTTL, refreshTokenTTL)
	userUC := userusecase.NewUserUsecase(userRepo)
	articleUC := articleusecase.NewArticleUsecase(cachedArticleRepo, commentRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo)

	// Handlers
	loginLimiter := ratelimiter.NewLimiter(loginAttemptsPerWindow, loginWindow)
	authH := authhandler.NewAuthHandler(authUC, loginLimiter)
	userH := userhandler.NewUserHandler(userUC)
	articleH := articlehandler.NewArticleHandler(articleUC)
	commentH := commenthandler.NewCommentHandler(commentUC)

	r := router.NewRouter(authH, articleH, commentH, userH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
