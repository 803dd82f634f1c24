package domain

import (
	"errors"
)

var (
	MessageSuccessResolveProduct = "product resolved successfully"
	MessageFailedResolveProduct  = "failed to resolve product"
	MessageProductNotFound       = "we couldn't find this product in our database"
	MessageProductLookupFailed   = "failed to fetch product information, please try again"

	// ErrProductNotFound means the database answered but has no record for the
	// barcode; retrying the same barcode is pointless.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductLookup covers transport failures and malformed responses;
	// callers should offer a retry.
	ErrProductLookup = errors.New("product lookup failed")
)

type (
	// NutritionFacts holds per-product macro values. Missing source fields are
	// zero, never negative.
	NutritionFacts struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Fiber    float64 `json:"fiber"`
		Sugar    float64 `json:"sugar"`
		Sodium   float64 `json:"sodium"`
	}

	// NutritionScore is one 0-100 sub-score. Available false means the source
	// grade was missing and the score is the neutral default, not a measured
	// zero.
	NutritionScore struct {
		Score     int    `json:"score"`
		Color     string `json:"color"`
		Label     string `json:"label"`
		Available bool   `json:"available"`
	}

	AdditionalInfo struct {
		Storage             string   `json:"storage,omitempty"`
		Manufacturer        string   `json:"manufacturer,omitempty"`
		ContactInfo         string   `json:"contact_info,omitempty"`
		CountryOfOrigin     string   `json:"country_of_origin,omitempty"`
		Quantity            string   `json:"quantity,omitempty"`
		Certifications      []string `json:"certifications,omitempty"`
		CookingInstructions string   `json:"cooking_instructions,omitempty"`
	}

	// ScannedProduct aggregates one barcode lookup. It lives only for the
	// duration of the on-screen review and is never cached across scans.
	ScannedProduct struct {
		Name               string         `json:"name"`
		Image              string         `json:"image"`
		OverallScore       NutritionScore `json:"overall_score"`
		NutritionScore     NutritionScore `json:"nutrition_score"`
		ProcessingScore    NutritionScore `json:"processing_score"`
		EnvironmentalScore NutritionScore `json:"environmental_score"`
		NutritionFacts     NutritionFacts `json:"nutrition_facts"`
		Ingredients        string         `json:"ingredients"`
		Allergens          []string       `json:"allergens"`
		Barcode            string         `json:"barcode"`
		AdditionalInfo     AdditionalInfo `json:"additional_info"`
	}
)
