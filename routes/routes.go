package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/config"
	orderControllers "github.com/SuryaShibin2198/Surya/controllers/order"
	"github.com/SuryaShibin2198/Surya/realtime"
)

// SetupRoutes is the single entry-point that wires up the cart and order
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, pub orderControllers.EventPublisher, hub *realtime.Hub) {
	SetupCartRoutes(r, db, cfg)
	SetupOrderRoutes(r, db, cfg, pub, hub)
}
