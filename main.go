package main

import (
	"time"

	"catalog-app/config"
	"catalog-app/database"
	routes "catalog-app/internal/app/http"
	"catalog-app/internal/media"
	"catalog-app/internal/store"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Init(config.DB_URL)
	if err != nil {
		log.Fatal("failed to connect to database", "err", err)
	}

	images, err := media.NewStore(config.IMAGE_DIR)
	if err != nil {
		log.Fatal("failed to open image store", "err", err)
	}

	s := store.New(db, images)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, s)

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
