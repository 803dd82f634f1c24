package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nutriscan-api/domain"
)

type (
	// OpenFoodFactsClient fetches one product record by barcode lookup.
	OpenFoodFactsClient interface {
		GetProduct(ctx context.Context, barcode string) (*ProductRecord, error)
	}

	openFoodFactsClient struct {
		baseURL    string
		httpClient *http.Client
	}

	productResponse struct {
		Status  int           `json:"status"`
		Product ProductRecord `json:"product"`
	}

	Nutriments struct {
		EnergyKcal    float64 `json:"energy_kcal"`
		EnergyValue   float64 `json:"energy_value"`
		Proteins      float64 `json:"proteins"`
		Carbohydrates float64 `json:"carbohydrates"`
		Fat           float64 `json:"fat"`
		Fiber         float64 `json:"fiber"`
		Sugars        float64 `json:"sugars"`
		Sodium        float64 `json:"sodium"`
	}

	SelectedImages struct {
		Front struct {
			Display struct {
				URL string `json:"url"`
			} `json:"display"`
		} `json:"front"`
	}

	// QuantityValue decodes a field that arrives as either a bare number or
	// free text ("330 g"). One dirty optional field must not fail the whole
	// product decode.
	QuantityValue string

	// ProductRecord mirrors the subset of the Open Food Facts v2 product
	// document the scoring pipeline reads. A missing grade decodes to the
	// zero value and is treated as "not available" downstream.
	ProductRecord struct {
		ProductName            string         `json:"product_name"`
		NutriscoreGrade        string         `json:"nutriscore_grade"`
		NovaGroup              int            `json:"nova_group"`
		EcoscoreGrade          string         `json:"ecoscore_grade"`
		Nutriments             Nutriments     `json:"nutriments"`
		IngredientsTextEn      string         `json:"ingredients_text_en"`
		IngredientsText        string         `json:"ingredients_text"`
		AllergensTags          []string       `json:"allergens_tags"`
		LabelsTags             []string       `json:"labels_tags"`
		Brands                 string         `json:"brands"`
		Contact                string         `json:"contact"`
		Countries              string         `json:"countries"`
		Quantity               string         `json:"quantity"`
		ProductQuantity        QuantityValue  `json:"product_quantity"`
		StorageConditions      string         `json:"storage_conditions"`
		ConservationConditions string         `json:"conservation_conditions"`
		Preparation            string         `json:"preparation"`
		ImageURL               string         `json:"image_url"`
		ImageFrontURL          string         `json:"image_front_url"`
		SelectedImages         SelectedImages `json:"selected_images"`
	}
)

func (q *QuantityValue) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*q = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = QuantityValue(s)
		return nil
	}
	*q = QuantityValue(b)
	return nil
}

func (q QuantityValue) String() string {
	return string(q)
}

func NewOpenFoodFactsClient(baseURL string) OpenFoodFactsClient {
	return &openFoodFactsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *openFoodFactsClient) GetProduct(ctx context.Context, barcode string) (*ProductRecord, error) {
	url := fmt.Sprintf("%s/api/v2/product/%s", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProductLookup, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProductLookup, err)
	}
	defer resp.Body.Close()

	// The API answers 404 with a status:0 body for unknown barcodes; both
	// shapes mean the same thing to callers.
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", domain.ErrProductLookup, resp.Status)
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProductLookup, err)
	}

	if body.Status != 1 {
		return nil, domain.ErrProductNotFound
	}

	return &body.Product, nil
}
