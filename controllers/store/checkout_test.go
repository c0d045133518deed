package storecontroller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.CustomerAddress{},
	))
	return db
}

func TestCreateOrGetCustomerReusesExisting(t *testing.T) {
	db := openTestDB(t)

	existing := models.Customer{
		StoreName: "acme",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	}
	require.NoError(t, db.Create(&existing).Error)

	// Same email, different casing and name. The first record wins.
	got, err := createOrGetCustomer(db, "acme", CheckoutCustomer{
		FirstName: "Janet",
		LastName:  "Doe",
		Email:     "Jane@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)

	var count int64
	db.Model(&models.Customer{}).Where("store_name = ?", "acme").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateOrGetCustomerScopedToStore(t *testing.T) {
	db := openTestDB(t)

	existing := models.Customer{
		StoreName: "acme",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	}
	require.NoError(t, db.Create(&existing).Error)

	// The same email in another store is a different customer.
	got, err := createOrGetCustomer(db, "rival", CheckoutCustomer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)
	assert.NotEqual(t, existing.ID, got.ID)
	assert.Equal(t, "rival", got.StoreName)
}

func TestPlaceOrderRejectsInvalidPhone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Email:        "owner@acme.test",
		PasswordHash: "x",
		StoreName:    "acme",
	}).Error)

	body := `{
		"customer": {
			"first_name": "Jane",
			"last_name": "Doe",
			"email": "jane@example.com",
			"phone": "not-a-phone",
			"address": {
				"address1": "1 Main St",
				"city": "Springfield",
				"state": "IL",
				"postal_code": "62701",
				"country": "US"
			}
		},
		"items": [{"product_id": "p1", "quantity": 1}]
	}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/store/acme/checkout", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "store", Value: "acme"}}

	PlaceOrder(db)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was written before the request was rejected
	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateShippingAddressIsDefault(t *testing.T) {
	db := openTestDB(t)

	customer := models.Customer{
		StoreName: "acme",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	}
	require.NoError(t, db.Create(&customer).Error)

	require.NoError(t, createShippingAddress(db, "acme", customer.ID, CheckoutCustomer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Address: CheckoutAddress{
			Address1:   "1 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
			Country:    "US",
		},
	}))

	var address models.CustomerAddress
	require.NoError(t, db.First(&address, "customer_id = ?", customer.ID).Error)
	assert.Equal(t, models.AddressTypeShipping, address.Type)
	assert.True(t, address.IsDefault)
	assert.Equal(t, "acme", address.StoreName)
}
