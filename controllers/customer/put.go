package customercontroller

import (
	"errors"
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

// UpdateCustomerRequest uses pointers so omitted fields stay untouched.
// A present addresses field, even empty, replaces the address list.
type UpdateCustomerRequest struct {
	FirstName        *string         `json:"first_name"`
	LastName         *string         `json:"last_name"`
	Email            *string         `json:"email"`
	Phone            *string         `json:"phone"`
	AcceptsMarketing *bool           `json:"accepts_marketing"`
	Tags             *[]string       `json:"tags"`
	Addresses        *[]AddressInput `json:"addresses"`
}

func (r *UpdateCustomerRequest) Apply(customer *models.Customer) {
	if r.FirstName != nil {
		customer.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		customer.LastName = *r.LastName
	}
	if r.Email != nil {
		customer.Email = strings.ToLower(*r.Email)
	}
	if r.Phone != nil {
		customer.Phone = *r.Phone
	}
	if r.AcceptsMarketing != nil {
		customer.AcceptsMarketing = *r.AcceptsMarketing
	}
	if r.Tags != nil {
		customer.Tags = pq.StringArray(*r.Tags)
	}
}

// PUT /customers/:id
func UpdateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)
		id := c.Param("id")

		var req UpdateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var customer models.Customer
		if err := db.Where("id = ? AND store_name = ?", id, store).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}

		req.Apply(&customer)

		if errs := validators.ValidateCustomer(&customer); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Addresses").Save(&customer).Error; err != nil {
				return err
			}

			if req.Addresses != nil {
				if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.CustomerAddress{}).Error; err != nil {
					return err
				}
				addresses := buildAddresses(store, *req.Addresses)
				for i := range addresses {
					addresses[i].CustomerID = customer.ID
				}
				if len(addresses) > 0 {
					if err := tx.Create(&addresses).Error; err != nil {
						return err
					}
				}
				customer.Addresses = addresses
			}

			return nil
		})
		if err != nil {
			if IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A customer with this email already exists"})
				return
			}
			log.Printf("❌ Failed to update customer %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
			return
		}

		c.JSON(http.StatusOK, customer)
	}
}
