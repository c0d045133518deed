package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
	"github.com/storelane/storefront-api/validators"
)

// UpdateProductRequest distinguishes omitted fields (nil pointer, leave
// as-is) from present-but-empty collections (replace with nothing).
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	CategoryID     *string          `json:"category_id"`
	CategoryName   *string          `json:"category_name"`
	Price          *decimal.Decimal `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price"`
	Cost           *decimal.Decimal `json:"cost"`
	SKU            *string          `json:"sku"`
	Barcode        *string          `json:"barcode"`
	TrackQuantity  *bool            `json:"track_quantity"`
	Quantity       *int             `json:"quantity"`
	Weight         *decimal.Decimal `json:"weight"`
	WeightUnit     *string          `json:"weight_unit"`
	Status         *string          `json:"status"`
	Images         *[]ImageInput    `json:"images"`
	Tags           *[]TagInput      `json:"tags"`
}

// ReplaceImages reports whether the request carries an images field at
// all. Omitted means existing images are left untouched.
func (r *UpdateProductRequest) ReplaceImages() bool { return r.Images != nil }

// ReplaceTags is the same contract for tags.
func (r *UpdateProductRequest) ReplaceTags() bool { return r.Tags != nil }

// Apply merges the request over an existing product.
func (r *UpdateProductRequest) Apply(product *models.Product) {
	if r.Name != nil {
		product.Name = *r.Name
	}
	if r.Description != nil {
		product.Description = *r.Description
	}
	if r.CategoryID != nil {
		product.CategoryID = *r.CategoryID
	}
	if r.CategoryName != nil {
		product.CategoryName = *r.CategoryName
	}
	if r.Price != nil {
		product.Price = *r.Price
	}
	if r.CompareAtPrice != nil {
		product.CompareAtPrice = r.CompareAtPrice
	}
	if r.Cost != nil {
		product.Cost = r.Cost
	}
	if r.SKU != nil {
		product.SKU = *r.SKU
	}
	if r.Barcode != nil {
		product.Barcode = *r.Barcode
	}
	if r.TrackQuantity != nil {
		product.TrackQuantity = *r.TrackQuantity
	}
	if r.Quantity != nil {
		product.Quantity = *r.Quantity
	}
	if r.Weight != nil {
		product.Weight = *r.Weight
	}
	if r.WeightUnit != nil {
		product.WeightUnit = models.WeightUnit(*r.WeightUnit)
	}
	if r.Status != nil {
		product.Status = normalizeProductStatus(*r.Status)
	}
}

// PUT /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)
		id := c.Param("id")

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Fetch existing product scoped to the caller's store
		var product models.Product
		if err := db.Where("id = ? AND store_name = ?", id, store).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		req.Apply(&product)

		if errs := validators.ValidateProduct(&product); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Images", "Tags").Save(&product).Error; err != nil {
				return err
			}

			// Child collections are replaced wholesale when present in
			// the request, untouched when omitted.
			if req.ReplaceImages() {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
				images := buildImages(*req.Images)
				for i := range images {
					images[i].ProductID = product.ID
				}
				if len(images) > 0 {
					if err := tx.Create(&images).Error; err != nil {
						return err
					}
				}
				product.Images = images
			}

			if req.ReplaceTags() {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductTag{}).Error; err != nil {
					return err
				}
				tags := buildTags(*req.Tags)
				for i := range tags {
					tags[i].ProductID = product.ID
				}
				if len(tags) > 0 {
					if err := tx.Create(&tags).Error; err != nil {
						return err
					}
				}
				product.Tags = tags
			}

			return nil
		})
		if err != nil {
			log.Printf("❌ Failed to update product %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		invalidateProductCache(c.Request.Context(), store)
		c.JSON(http.StatusOK, product)
	}
}
