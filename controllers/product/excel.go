package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
	"github.com/storelane/storefront-api/validators"
)

// POST /products/import-excel
// Rows with a SKU matching an existing product update it; the rest are
// created. Malformed rows are skipped, not fatal.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)

		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(0)
			description := get(1)
			sku := get(2)
			barcode := get(3)
			price, err1 := decimal.NewFromString(get(4))
			weight, err2 := decimal.NewFromString(get(5))
			weightUnit := get(6)
			quantity, _ := strconv.Atoi(get(7))
			statusStr := get(8)

			if name == "" || err1 != nil || err2 != nil {
				skippedCount++
				continue
			}
			status, err := mapProductStatus(statusStr)
			if err != nil {
				status = models.ProductStatusDraft
			}
			if weightUnit != string(models.WeightUnitLB) {
				weightUnit = string(models.WeightUnitKG)
			}

			// Update by SKU when one matches in this store
			if sku != "" {
				var existing models.Product
				if err := db.Where("store_name = ? AND sku = ?", store, sku).First(&existing).Error; err == nil {
					existing.Name = name
					existing.Description = description
					existing.Barcode = barcode
					existing.Price = price
					existing.Weight = weight
					existing.WeightUnit = models.WeightUnit(weightUnit)
					existing.Quantity = quantity
					existing.Status = status

					// Imported rows obey the same draft rules as the API
					if validators.ValidateProduct(&existing) != nil {
						skippedCount++
						continue
					}
					if err := db.Save(&existing).Error; err == nil {
						updatedCount++
					} else {
						skippedCount++
					}
					continue
				}
			}

			product := models.Product{
				StoreName:     store,
				Name:          name,
				Description:   description,
				SKU:           sku,
				Barcode:       barcode,
				Price:         price,
				TrackQuantity: quantity > 0,
				Quantity:      quantity,
				Weight:        weight,
				WeightUnit:    models.WeightUnit(weightUnit),
				Status:        status,
			}
			if validators.ValidateProduct(&product) != nil {
				skippedCount++
				continue
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		invalidateProductCache(c.Request.Context(), store)

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
