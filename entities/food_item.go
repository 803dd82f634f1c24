package entities

import (
	"github.com/google/uuid"
)

// FoodItem is the stored snapshot of one scanned product. It is written once
// when the user confirms adding the product to the journal and is never
// touched by the scoring pipeline afterwards.
type FoodItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Barcode  string    `json:"barcode,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`

	Ingredients string `gorm:"type:text" json:"ingredients,omitempty"`
	Allergens   string `gorm:"type:text" json:"allergens,omitempty"` // comma separated

	OverallScore       int `json:"overall_score"`
	NutritionScore     int `json:"nutrition_score"`
	ProcessingScore    int `json:"processing_score"`
	EnvironmentalScore int `json:"environmental_score"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
