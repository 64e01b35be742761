package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/config"
	cartControllers "github.com/SuryaShibin2198/Surya/controllers/cart"
	"github.com/SuryaShibin2198/Surya/middleware"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		cart.POST("/", cartControllers.AddToCart(db))
		cart.GET("/", cartControllers.GetCartItems(db))
		cart.PUT("/", cartControllers.UpdateCartQuantity(db))
		cart.DELETE("/:productID", cartControllers.RemoveCartItem(db))
	}
}
