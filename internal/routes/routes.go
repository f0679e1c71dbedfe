package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/database"
	"ecommerce-backend/internal/handlers"
	"ecommerce-backend/internal/repository"
)

// RegisterRoutes wires every endpoint. db may be nil when the store is
// unavailable; product endpoints then report the configuration error and
// the diagnostic endpoint reports the disconnected state.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	var lister handlers.CollectionLister
	var repo handlers.ProductRepository
	if db != nil {
		store := database.NewStore(db)
		lister = store
		repo = repository.NewProductRepository(store)
	}

	health := handlers.NewHealthHandler(lister, cfg)
	products := handlers.NewProductHandler(repo)

	router.GET("/", health.Root)
	router.GET("/test", health.TestDatabase)

	api := router.Group("/api")
	{
		api.GET("/hello", health.Hello)
		api.GET("/products", products.ListProducts)
		api.POST("/products", products.CreateProduct)
		api.GET("/products/:id", products.GetProductByID)
		api.POST("/seed", products.SeedProducts)
	}
}
