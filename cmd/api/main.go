package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/database"
	"ecommerce-backend/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	// db stays nil when the connection fails; handlers report it per request
	db := database.Connect(cfg)

	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, db, cfg)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
