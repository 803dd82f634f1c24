package handlers

import (
	"errors"

	"nutriscan-api/domain"
	"nutriscan-api/internal/api/presenters"
	"nutriscan-api/pkg/product"

	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		ResolveBarcode(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
	}
)

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &productHandler{productService: productService}
}

func (h *productHandler) ResolveBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")

	res, err := h.productService.ResolveBarcode(c.Context(), barcode)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageProductNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageProductLookupFailed, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveProduct)
}
