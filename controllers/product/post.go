package productcontroller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/cache"
	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
	"github.com/storelane/storefront-api/validators"
)

type ImageInput struct {
	URL      string `json:"url" binding:"required"`
	Alt      string `json:"alt"`
	Position int    `json:"position"`
}

type TagInput struct {
	Name string `json:"name" binding:"required"`
}

type CreateProductRequest struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	CategoryID     string           `json:"category_id"`
	CategoryName   string           `json:"category_name"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price"`
	Cost           *decimal.Decimal `json:"cost"`
	SKU            string           `json:"sku"`
	Barcode        string           `json:"barcode"`
	TrackQuantity  bool             `json:"track_quantity"`
	Quantity       int              `json:"quantity"`
	Weight         decimal.Decimal  `json:"weight"`
	WeightUnit     string           `json:"weight_unit"`
	Status         string           `json:"status"`
	Images         []ImageInput     `json:"images"`
	Tags           []TagInput       `json:"tags"`
}

// Map string to ProductStatus
func mapProductStatus(status string) (models.ProductStatus, error) {
	switch strings.ToLower(status) {
	case string(models.ProductStatusDraft):
		return models.ProductStatusDraft, nil
	case string(models.ProductStatusActive):
		return models.ProductStatusActive, nil
	case string(models.ProductStatusArchived):
		return models.ProductStatusArchived, nil
	default:
		return "", errors.New("invalid product status")
	}
}

// normalizeProductStatus maps case-insensitive input to a known status.
// Unknown values pass through for the validator to report.
func normalizeProductStatus(status string) models.ProductStatus {
	if mapped, err := mapProductStatus(status); err == nil {
		return mapped
	}
	return models.ProductStatus(status)
}

func buildImages(inputs []ImageInput) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, models.ProductImage{
			URL:      in.URL,
			Alt:      in.Alt,
			Position: in.Position,
		})
	}
	return images
}

func buildTags(inputs []TagInput) []models.ProductTag {
	tags := make([]models.ProductTag, 0, len(inputs))
	for _, in := range inputs {
		tags = append(tags, models.ProductTag{Name: in.Name})
	}
	return tags
}

// invalidateProductCache drops the cached storefront listing after any
// product mutation.
func invalidateProductCache(ctx context.Context, store string) {
	cache.Invalidate(ctx, "store_products:"+store)
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)

		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := req.Status
		if status == "" {
			status = string(models.ProductStatusDraft)
		}
		weightUnit := req.WeightUnit
		if weightUnit == "" {
			weightUnit = string(models.WeightUnitKG)
		}

		product := models.Product{
			StoreName:      store,
			Name:           req.Name,
			Description:    req.Description,
			CategoryID:     req.CategoryID,
			CategoryName:   req.CategoryName,
			Price:          req.Price,
			CompareAtPrice: req.CompareAtPrice,
			Cost:           req.Cost,
			SKU:            req.SKU,
			Barcode:        req.Barcode,
			TrackQuantity:  req.TrackQuantity,
			Quantity:       req.Quantity,
			Weight:         req.Weight,
			WeightUnit:     models.WeightUnit(weightUnit),
			Status:         normalizeProductStatus(status),
			Images:         buildImages(req.Images),
			Tags:           buildTags(req.Tags),
		}

		if errs := validators.ValidateProduct(&product); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		// Parent and children land in one transaction.
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&product).Error
		}); err != nil {
			log.Printf("❌ Failed to create product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		invalidateProductCache(c.Request.Context(), store)
		c.JSON(http.StatusCreated, product)
	}
}
