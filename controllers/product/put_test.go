package productcontroller

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelane/storefront-api/models"
)

// The partial-update contract: an omitted images field leaves existing
// images alone, a present-but-empty array removes them all.
func TestUpdateRequestImagesOmittedVsEmpty(t *testing.T) {
	var omitted UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Tote"}`), &omitted))
	assert.False(t, omitted.ReplaceImages())
	assert.False(t, omitted.ReplaceTags())

	var emptied UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"images":[],"tags":[]}`), &emptied))
	assert.True(t, emptied.ReplaceImages())
	assert.Len(t, *emptied.Images, 0)
	assert.True(t, emptied.ReplaceTags())

	var replaced UpdateProductRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"images":[{"url":"https://cdn.example.com/a.jpg","position":1}]}`), &replaced))
	assert.True(t, replaced.ReplaceImages())
	assert.Len(t, *replaced.Images, 1)
}

func TestUpdateRequestApplyMergesOverExisting(t *testing.T) {
	product := models.Product{
		Name:        "Canvas Tote",
		Description: "A sturdy tote",
		Price:       decimal.NewFromFloat(19.99),
		Status:      models.ProductStatusDraft,
		Quantity:    7,
	}

	newName := "Canvas Tote XL"
	newPrice := decimal.NewFromFloat(24.99)
	newStatus := "active"
	req := UpdateProductRequest{
		Name:   &newName,
		Price:  &newPrice,
		Status: &newStatus,
	}
	req.Apply(&product)

	assert.Equal(t, "Canvas Tote XL", product.Name)
	assert.True(t, decimal.NewFromFloat(24.99).Equal(product.Price))
	assert.Equal(t, models.ProductStatusActive, product.Status)
	// Untouched fields keep their values
	assert.Equal(t, "A sturdy tote", product.Description)
	assert.Equal(t, 7, product.Quantity)
}

func TestBuildImagesPreservesPosition(t *testing.T) {
	images := buildImages([]ImageInput{
		{URL: "https://cdn.example.com/front.jpg", Alt: "front", Position: 0},
		{URL: "https://cdn.example.com/back.jpg", Alt: "back", Position: 1},
	})
	require.Len(t, images, 2)
	assert.Equal(t, 0, images[0].Position)
	assert.Equal(t, 1, images[1].Position)
	assert.Equal(t, "front", images[0].Alt)
}

func TestMapProductStatus(t *testing.T) {
	for _, s := range []string{"draft", "active", "archived"} {
		status, err := mapProductStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, s, string(status))
	}
	_, err := mapProductStatus("published")
	assert.Error(t, err)
}

func TestNormalizeProductStatusIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.ProductStatusActive, normalizeProductStatus("Active"))
	assert.Equal(t, models.ProductStatusArchived, normalizeProductStatus("ARCHIVED"))
	// Unknown values pass through so the validator can name the field
	assert.Equal(t, models.ProductStatus("published"), normalizeProductStatus("published"))

	var req UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Active"}`), &req))
	product := models.Product{Status: models.ProductStatusDraft}
	req.Apply(&product)
	assert.Equal(t, models.ProductStatusActive, product.Status)
}
