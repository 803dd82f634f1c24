package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriscan-api/domain"
	"nutriscan-api/internal/api/presenters"
)

type fakeProductService struct {
	product domain.ScannedProduct
	err     error
}

func (s *fakeProductService) ResolveBarcode(ctx context.Context, barcode string) (domain.ScannedProduct, error) {
	if s.err != nil {
		return domain.ScannedProduct{}, s.err
	}
	p := s.product
	p.Barcode = barcode
	return p, nil
}

func newProductTestApp(service *fakeProductService) *fiber.App {
	app := fiber.New()
	handler := NewProductHandler(service)
	app.Get("/api/v1/products/:barcode", handler.ResolveBarcode)
	return app
}

func TestProductHandler_ResolveBarcode(t *testing.T) {
	app := newProductTestApp(&fakeProductService{
		product: domain.ScannedProduct{
			Name:         "Rolled Oats",
			OverallScore: domain.NutritionScore{Score: 85, Color: "green", Label: "Excellent", Available: true},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/5410673000153", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, domain.MessageSuccessResolveProduct, body.Message)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Rolled Oats", data["name"])
	assert.Equal(t, "5410673000153", data["barcode"])
}

func TestProductHandler_ResolveBarcode_NotFound(t *testing.T) {
	app := newProductTestApp(&fakeProductService{err: domain.ErrProductNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/0000000000000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "failed", body.Status)
	assert.Equal(t, domain.MessageProductNotFound, body.Message)
}

func TestProductHandler_ResolveBarcode_LookupFailure(t *testing.T) {
	app := newProductTestApp(&fakeProductService{err: domain.ErrProductLookup})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/1234567890123", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.MessageProductLookupFailed, body.Message)
}
