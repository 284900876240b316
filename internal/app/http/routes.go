package routes

import (
	authapi "catalog-app/internal/api/auth"
	"catalog-app/internal/api/categories"
	"catalog-app/internal/api/collection"
	"catalog-app/internal/api/genres"
	"catalog-app/internal/api/platforms"
	"catalog-app/internal/api/publications"
	usersapi "catalog-app/internal/api/users"
	"catalog-app/internal/api/videogames"
	"catalog-app/internal/app/http/middleware"
	"catalog-app/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s *store.Store) {
	authHandler := authapi.NewHandler(s)
	videoGamesHandler := videogames.NewHandler(s)
	platformsHandler := platforms.NewHandler(s)
	publicationsHandler := publications.NewHandler(s)
	collectionHandler := collection.NewHandler(s)
	categoriesHandler := categories.NewHandler(s)
	genresHandler := genres.NewHandler(s)
	usersHandler := usersapi.NewHandler(s)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, read-only catalog
	r.GET("/videogames", videoGamesHandler.List)
	r.GET("/videogames/count", videoGamesHandler.Count)
	r.GET("/videogames/:id", videoGamesHandler.Get)
	r.GET("/platforms", platformsHandler.List)
	r.GET("/platforms/count", platformsHandler.Count)
	r.GET("/platforms/:code", platformsHandler.Get)
	r.GET("/publications", publicationsHandler.List)
	r.GET("/publications/count", publicationsHandler.Count)
	r.GET("/publications/:id", publicationsHandler.Get)
	r.GET("/categories", categoriesHandler.List)
	r.GET("/categories/:id", categoriesHandler.Get)
	r.GET("/genres", genresHandler.List)
	r.GET("/genres/:id", genresHandler.Get)

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.GET("/auth/google", authHandler.GoogleStart)
	public.GET("/auth/google/callback", authHandler.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersHandler.Me)
	auth.POST("/change-password", authHandler.ChangePassword)
	auth.GET("/collection", collectionHandler.List)
	auth.GET("/collection/count", collectionHandler.Count)
	auth.POST("/collection", collectionHandler.Create)
	auth.DELETE("/collection/:publicationID", collectionHandler.Delete)

	// Admin: all catalog mutations
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())

	admin.POST("/videogames", videoGamesHandler.Create)
	admin.PUT("/videogames/:id", videoGamesHandler.Update)
	admin.DELETE("/videogames/:id", videoGamesHandler.Delete)
	admin.POST("/videogames/:id/categories/:categoryID", categoriesHandler.Assign)
	admin.DELETE("/videogames/:id/categories/:categoryID", categoriesHandler.Unassign)

	admin.POST("/platforms", platformsHandler.Create)
	admin.POST("/platforms/with-videogames", platformsHandler.CreateWithVideoGames)
	admin.PUT("/platforms/:code", platformsHandler.Update)
	admin.DELETE("/platforms/:code", platformsHandler.Delete)

	admin.POST("/publications", publicationsHandler.Create)
	admin.PUT("/publications/:id", publicationsHandler.Update)
	admin.DELETE("/publications/:id", publicationsHandler.Delete)

	admin.POST("/categories", categoriesHandler.Create)
	admin.PUT("/categories/:id", categoriesHandler.Update)
	admin.DELETE("/categories/:id", categoriesHandler.Delete)

	admin.POST("/genres", genresHandler.Create)
	admin.PUT("/genres/:id", genresHandler.Update)
	admin.DELETE("/genres/:id", genresHandler.Delete)

	admin.GET("/users", usersHandler.List)
	admin.GET("/users/count", usersHandler.Count)
	admin.GET("/users/:id", usersHandler.Get)
	admin.PUT("/users/:id", usersHandler.Update)
	admin.DELETE("/users/:id", usersHandler.Delete)

	admin.POST("/images/reconcile", usersHandler.ReconcileImages)
}
