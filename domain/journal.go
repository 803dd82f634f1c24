package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddToJournal     = "food item added to journal successfully"
	MessageSuccessGetJournal       = "journal entries retrieved successfully"
	MessageSuccessGetDailySummary  = "daily summary retrieved successfully"
	MessageSuccessDeleteEntry      = "journal entry deleted successfully"
	MessageSuccessUploadEntryPhoto = "photo uploaded successfully"

	MessageFailedAddToJournal     = "failed to add food item to journal"
	MessageFailedGetJournal       = "failed to retrieve journal entries"
	MessageFailedGetDailySummary  = "failed to retrieve daily summary"
	MessageFailedDeleteEntry      = "failed to delete journal entry"
	MessageFailedUploadEntryPhoto = "failed to upload photo"

	ErrInvalidMealType    = errors.New("invalid meal type")
	ErrInvalidServingSize = errors.New("serving size must be positive")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEntryNotFound      = errors.New("journal entry not found")
	ErrUnauthorizedAccess = errors.New("unauthorized access to journal entry")
	// ErrJournalPersistence wraps a failed insert; when the food item insert
	// fails the journal entry is never attempted and nothing is committed.
	ErrJournalPersistence = errors.New("failed to persist journal entry")
)

var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

type (
	AddToJournalRequest struct {
		Product     ScannedProduct `json:"product" validate:"required"`
		MealType    string         `json:"meal_type" validate:"required"`
		ServingSize float64        `json:"serving_size" validate:"required,gt=0"`
		ServingUnit string         `json:"serving_unit" validate:"required"`
		Notes       string         `json:"notes" validate:"omitempty"`
	}

	AddToJournalResponse struct {
		EntryID    string    `json:"entry_id"`
		FoodItemID string    `json:"food_item_id"`
		Name       string    `json:"name"`
		MealType   string    `json:"meal_type"`
		ConsumedAt time.Time `json:"consumed_at"`
	}

	JournalEntryResponse struct {
		ID            string         `json:"id"`
		Name          string         `json:"name"`
		ImageURL      string         `json:"image_url,omitempty"`
		PhotoURL      string         `json:"photo_url,omitempty"`
		MealType      string         `json:"meal_type"`
		ServingSize   float64        `json:"serving_size"`
		ServingUnit   string         `json:"serving_unit"`
		ConsumedAt    time.Time      `json:"consumed_at"`
		Notes         string         `json:"notes,omitempty"`
		Barcode       string         `json:"barcode,omitempty"`
		Facts         NutritionFacts `json:"nutrition_facts"`
		OverallScore  int            `json:"overall_score"`
		CreatedAt     time.Time      `json:"created_at"`
	}

	DailySummaryResponse struct {
		Date         string  `json:"date"`
		Entries      int     `json:"entries"`
		Calories     float64 `json:"calories"`
		Protein      float64 `json:"protein"`
		Carbs        float64 `json:"carbs"`
		Fat          float64 `json:"fat"`
		AverageScore int     `json:"average_score"`
	}

	UploadEntryPhotoRequest struct {
		EntryID string                `json:"entry_id" form:"entry_id" validate:"required,uuid"`
		Photo   *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}
)
