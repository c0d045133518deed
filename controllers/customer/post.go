package customercontroller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
	"github.com/storelane/storefront-api/validators"
)

type CreateCustomerRequest struct {
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	AcceptsMarketing bool           `json:"accepts_marketing"`
	Tags             []string       `json:"tags"`
	Addresses        []AddressInput `json:"addresses"`
}

// POST /customers
func CreateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)

		var req CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		customer := models.Customer{
			StoreName:        store,
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			Email:            strings.ToLower(req.Email),
			Phone:            req.Phone,
			AcceptsMarketing: req.AcceptsMarketing,
			Tags:             pq.StringArray(req.Tags),
			Addresses:        buildAddresses(store, req.Addresses),
		}

		if errs := validators.ValidateCustomer(&customer); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		// Parent and addresses land in one transaction.
		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&customer).Error
		})
		if err != nil {
			if IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A customer with this email already exists"})
				return
			}
			log.Printf("❌ Failed to create customer: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}

		c.JSON(http.StatusCreated, customer)
	}
}
