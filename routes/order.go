package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/config"
	orderControllers "github.com/SuryaShibin2198/Surya/controllers/order"
	"github.com/SuryaShibin2198/Surya/middleware"
	"github.com/SuryaShibin2198/Surya/realtime"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, pub orderControllers.EventPublisher, hub *realtime.Hub) {
	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", hub.ServeWS)

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		// Create a new order from the user's cart
		orders.POST("/place", orderControllers.PlaceOrderHandler(db, pub, cfg.StockAllowBackorder))

		// Cancel an order and restore its stock
		orders.POST("/cancel/:orderID", orderControllers.CancelOrderHandler(db, pub))

		// Fetch all orders (admin)
		orders.GET("/", orderControllers.GetAllOrdersHandler(db))

		// Export all orders as xlsx (admin)
		orders.GET("/export", orderControllers.ExportOrdersToExcel(db))

		// Fetch orders for the authenticated user
		orders.GET("/user", orderControllers.GetUserOrdersHandler(db))

		// Fetch a single order by id or ref
		orders.GET("/detail/:orderID", orderControllers.GetOrderByIDHandler(db))
	}

	notificationsGroup := r.Group("/notifications")
	notificationsGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		notificationsGroup.POST("/push", orderControllers.PushNotificationHandler(hub))
	}
}
