package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/middleware"
	"github.com/SuryaShibin2198/Surya/models"
)

// Fetch all orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Scopes(models.Active).
			Preload("Items", "deleted = ?", false).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}
		helpers.ResponseSuccess(c, orders, http.StatusOK, "Order list fetched successfully")
	}
}

// Fetch orders for the authenticated user
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.Scopes(models.Active).
			Where("user_id = ?", userID).
			Preload("Items", "deleted = ?", false).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}
		helpers.ResponseSuccess(c, orders, http.StatusOK, "Order list fetched successfully")
	}
}

// Fetch a single order by numeric id or order ref
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := c.Param("orderID")
		if param == "" {
			helpers.ResponseError(c, helpers.BadRequest("orderID is required"))
			return
		}

		// Numeric params look up by primary key, anything else by order ref.
		// The id column is a bigint, so a ref string must never reach it.
		query := db.Scopes(models.Active).Preload("Items", "deleted = ?", false)
		if id, err := strconv.ParseUint(param, 10, 64); err == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("order_ref = ?", param)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				helpers.ResponseError(c, helpers.NotFound("order not found"))
				return
			}
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}
		helpers.ResponseSuccess(c, order, http.StatusOK, "Order fetched successfully")
	}
}
