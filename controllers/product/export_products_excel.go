package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
)

// GET /products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)

		var products []models.Product
		if err := db.Preload("Tags").Where("store_name = ?", store).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Description", "SKU", "Barcode",
			"Price", "CompareAtPrice", "Cost", "TrackQuantity", "Quantity",
			"Weight", "WeightUnit", "Status", "Tags", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(p.Barcode)
			row.AddCell().SetValue(p.Price.String())
			if p.CompareAtPrice != nil {
				row.AddCell().SetValue(p.CompareAtPrice.String())
			} else {
				row.AddCell().SetValue("")
			}
			if p.Cost != nil {
				row.AddCell().SetValue(p.Cost.String())
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.TrackQuantity)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.Weight.String())
			row.AddCell().SetValue(string(p.WeightUnit))
			row.AddCell().SetValue(string(p.Status))

			var tagNames []string
			for _, tag := range p.Tags {
				tagNames = append(tagNames, tag.Name)
			}
			row.AddCell().SetValue(strings.Join(tagNames, ","))

			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
