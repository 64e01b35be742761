package cartControllers

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

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	ProductID     uint `json:"product_id" binding:"required"`
	QuantityAdded int  `json:"quantity_added" binding:"required,min=1"`
}

// POST /cart — add one unit of a product, creating the cart on first use.
// Cart aggregates move in lockstep with the item rows so the order assembler
// can rely on them.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.ResponseError(c, helpers.BadRequest("product_id is required"))
			return
		}

		var product models.Product
		if err := db.Scopes(models.Active).First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				helpers.ResponseError(c, helpers.NotFound("product not found"))
				return
			}
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}

		var item models.CartItem
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return helpers.Internal(err)
				}
				cart = models.Cart{UserID: userID, CreatedBy: userID}
				if err := tx.Create(&cart).Error; err != nil {
					return helpers.Internal(err)
				}
			}

			err := tx.Scopes(models.Active).
				Where("user_id = ? AND product_id = ?", userID, req.ProductID).
				First(&item).Error
			switch {
			case err == nil:
				item.QuantityAdded++
				item.TotalPrice += product.DiscountedPrice
				if err := tx.Save(&item).Error; err != nil {
					return helpers.Internal(err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				item = models.CartItem{
					UserID:        userID,
					ProductID:     req.ProductID,
					QuantityAdded: 1,
					TotalPrice:    product.DiscountedPrice,
					CreatedBy:     userID,
				}
				if err := tx.Create(&item).Error; err != nil {
					return helpers.Internal(err)
				}
			default:
				return helpers.Internal(err)
			}

			if err := tx.Model(&models.Cart{}).
				Where("id = ?", cart.ID).
				Updates(map[string]interface{}{
					"quantity_in_cart": gorm.Expr("quantity_in_cart + ?", 1),
					"final_price":      gorm.Expr("final_price + ?", product.DiscountedPrice),
				}).Error; err != nil {
				return helpers.Internal(err)
			}
			return nil
		})
		if err != nil {
			helpers.ResponseError(c, err)
			return
		}

		helpers.ResponseSuccess(c, item, http.StatusOK, "Product added to cart successfully")
	}
}

// GET /cart
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var items []models.CartItem
		if err := db.Scopes(models.Active).Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}
		if len(items) == 0 {
			helpers.ResponseError(c, helpers.NotFound("no cart items found for the user"))
			return
		}
		helpers.ResponseSuccess(c, items, http.StatusOK, "Cart items retrieved successfully")
	}
}

// PUT /cart — set an item's quantity; aggregates adjust by the difference.
func UpdateCartQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.ResponseError(c, helpers.BadRequest("product_id and a valid quantity are required"))
			return
		}

		var product models.Product
		if err := db.Scopes(models.Active).First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				helpers.ResponseError(c, helpers.NotFound("product not found"))
				return
			}
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}

		var item models.CartItem
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Scopes(models.Active).
				Where("user_id = ? AND product_id = ?", userID, req.ProductID).
				First(&item).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helpers.NotFound("cart item not found")
				}
				return helpers.Internal(err)
			}

			newTotalPrice := product.DiscountedPrice * float64(req.QuantityAdded)
			priceDifference := newTotalPrice - item.TotalPrice
			quantityDifference := req.QuantityAdded - item.QuantityAdded

			item.QuantityAdded = req.QuantityAdded
			item.TotalPrice = newTotalPrice
			if err := tx.Save(&item).Error; err != nil {
				return helpers.Internal(err)
			}

			if err := tx.Model(&models.Cart{}).
				Where("user_id = ?", userID).
				Updates(map[string]interface{}{
					"quantity_in_cart": gorm.Expr("quantity_in_cart + ?", quantityDifference),
					"final_price":      gorm.Expr("final_price + ?", priceDifference),
				}).Error; err != nil {
				return helpers.Internal(err)
			}
			return nil
		})
		if err != nil {
			helpers.ResponseError(c, err)
			return
		}

		helpers.ResponseSuccess(c, item, http.StatusOK, "Cart item quantity updated successfully")
	}
}

// DELETE /cart/:productID — soft-delete the item and roll its amounts out of
// the aggregates.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
		if err != nil {
			helpers.ResponseError(c, helpers.BadRequest("productID is required"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var item models.CartItem
			if err := tx.Scopes(models.Active).
				Where("user_id = ? AND product_id = ?", userID, productID).
				First(&item).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helpers.NotFound("cart item not found")
				}
				return helpers.Internal(err)
			}

			if err := tx.Model(&models.Cart{}).
				Where("user_id = ?", userID).
				Updates(map[string]interface{}{
					"quantity_in_cart": gorm.Expr("quantity_in_cart - ?", item.QuantityAdded),
					"final_price":      gorm.Expr("final_price - ?", item.TotalPrice),
				}).Error; err != nil {
				return helpers.Internal(err)
			}

			if err := tx.Model(&models.CartItem{}).
				Where("id = ?", item.ID).
				Update("deleted", true).Error; err != nil {
				return helpers.Internal(err)
			}
			return nil
		})
		if err != nil {
			helpers.ResponseError(c, err)
			return
		}

		helpers.ResponseSuccess(c, nil, http.StatusOK, "Cart item removed successfully")
	}
}
