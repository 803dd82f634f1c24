package product

import (
	"context"

	"nutriscan-api/domain"
)

type (
	// ProductService is the resolution stage of the scan pipeline: barcode in,
	// fully scored product out. Each call builds a fresh ScannedProduct; no
	// caching and no deduplication across scans.
	ProductService interface {
		ResolveBarcode(ctx context.Context, barcode string) (domain.ScannedProduct, error)
	}

	productService struct {
		client OpenFoodFactsClient
	}
)

func NewProductService(client OpenFoodFactsClient) ProductService {
	return &productService{client: client}
}

func (s *productService) ResolveBarcode(ctx context.Context, barcode string) (domain.ScannedProduct, error) {
	rec, err := s.client.GetProduct(ctx, barcode)
	if err != nil {
		return domain.ScannedProduct{}, err
	}
	return BuildScannedProduct(rec, barcode), nil
}
