package entities

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	FoodItemID  uuid.UUID `json:"food_item_id"`
	MealType    string    `json:"meal_type"` // "breakfast", "lunch", "dinner", "snack"
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `json:"serving_unit"`
	ConsumedAt  time.Time `json:"consumed_at"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`

	User     *User     `gorm:"foreignKey:UserID"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
