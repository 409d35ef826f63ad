// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	articlehandler "cms_backend/internal/feature/articles/transport/handler"
	"cms_backend/internal/feature/auth/domain/policy"
	authhandler "cms_backend/internal/feature/auth/transport/handler"
	commenthandler "cms_backend/internal/feature/comments/transport/handler"
	userhandler "cms_backend/internal/feature/users/transport/handler"
	"cms_backend/internal/platform/http/handler"
	jwtmw "cms_backend/internal/platform/jwt"
)

// NewRouter wires every endpoint. Anonymous readers can browse articles and
// comments; posting a comment needs an authenticated user; everything under
// /admin needs the role the access policy assigns to that prefix.
func NewRouter(auth *authhandler.AuthHandler, articles *articlehandler.ArticleHandler,
	comments *commenthandler.CommentHandler, users *userhandler.UserHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.Refresh)
	r.POST("/logout", auth.Logout)
	r.GET("/articles", articles.List)
	r.GET("/articles/:id", articles.Get)
	r.GET("/articles/:id/comments", comments.ListByArticle)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/articles/:id/comments", jwtmw.RequireRole(policy.RoleForComments), comments.Post)
	}

	// Back office, gated by the static access policy
	adminRole, _ := policy.RequiredRole("/admin")
	admin := r.Group("/admin")
	admin.Use(jwtmw.AuthRequired(), jwtmw.RequireRole(adminRole))
	{
		admin.GET("/users", users.List)
		admin.GET("/users/:id", users.Get)
		admin.POST("/users", users.Create)
		admin.PUT("/users/:id", users.Update)
		admin.DELETE("/users/:id", users.Delete)

		admin.POST("/articles", articles.Create)
		admin.PUT("/articles/:id", articles.Update)
		admin.DELETE("/articles/:id", articles.Delete)

		admin.DELETE("/comments/:id", comments.Delete)
	}

	return r
}
