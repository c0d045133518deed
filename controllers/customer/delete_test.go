package customercontroller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
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
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.CustomerAddress{}))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, store string) models.Customer {
	t.Helper()
	customer := models.Customer{
		StoreName: store,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&models.CustomerAddress{
		CustomerID: customer.ID,
		StoreName:  store,
		Type:       models.AddressTypeShipping,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Address1:   "1 Analytical Way",
		City:       "London",
		State:      "LDN",
		PostalCode: "E1 6AN",
		Country:    "GB",
	}).Error)
	return customer
}

func deleteRequest(id, store string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/customers/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Set("store_name", store)
	return w, c
}

func TestDeleteCustomerIgnoresOtherStores(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	customer := seedCustomer(t, db, "acme")

	w, c := deleteRequest(customer.ID, "rival")
	DeleteCustomer(db)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	// Row and its addresses are untouched
	var kept models.Customer
	assert.NoError(t, db.First(&kept, "id = ?", customer.ID).Error)
	var addresses int64
	db.Model(&models.CustomerAddress{}).Where("customer_id = ?", customer.ID).Count(&addresses)
	assert.Equal(t, int64(1), addresses)
}

func TestDeleteCustomerRemovesOwnRows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	customer := seedCustomer(t, db, "acme")

	w, c := deleteRequest(customer.ID, "acme")
	DeleteCustomer(db)(c)

	assert.Equal(t, http.StatusOK, w.Code)

	err := db.First(&models.Customer{}, "id = ?", customer.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var addresses int64
	db.Model(&models.CustomerAddress{}).Where("customer_id = ?", customer.ID).Count(&addresses)
	assert.Zero(t, addresses)
}
