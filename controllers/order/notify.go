package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/notifications"
)

type PushNotificationRequest struct {
	Message string `json:"message" binding:"required"`
}

// Broadcast a free-form notification to all connected realtime clients.
func PushNotificationHandler(bus notifications.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PushNotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.ResponseError(c, helpers.BadRequest("valid message is required"))
			return
		}

		bus.Emit("notification", map[string]string{"message": req.Message})
		helpers.ResponseSuccess(c, nil, http.StatusOK, "Notification sent")
	}
}
