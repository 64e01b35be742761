package orderControllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/models"
)

// ExportOrdersToExcel streams all active orders as an xlsx download (admin).
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Scopes(models.Active).
			Preload("Items", "deleted = ?", false).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}

		// Header row
		headers := []string{
			"ID", "OrderRef", "UserID", "TotalAmount", "DiscountAmount",
			"CouponApplied", "OfferApplied", "Status", "ExpectedDeliveryDate",
			"ProductIDs", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.DiscountAmount)
			row.AddCell().SetValue(o.CouponApplied)
			row.AddCell().SetValue(o.OfferApplied)
			row.AddCell().SetValue(string(o.Status))

			row.AddCell().SetValue(o.ExpectedDeliveryDate.Format("2006-01-02"))

			var productIDs []string
			for _, item := range o.Items {
				productIDs = append(productIDs, strconv.Itoa(int(item.ProductID)))
			}
			row.AddCell().SetValue(strings.Join(productIDs, ","))

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			helpers.ResponseError(c, helpers.Internal(err))
			return
		}
	}
}
