package journal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"nutriscan-api/domain"
	"nutriscan-api/entities"
	"nutriscan-api/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	JournalService interface {
		AddToJournal(ctx context.Context, req domain.AddToJournalRequest, userID string) (domain.AddToJournalResponse, error)
		GetJournalEntries(ctx context.Context, userID string, date string, mealType string, page, limit int) ([]domain.JournalEntryResponse, int64, error)
		GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
		UploadEntryPhoto(ctx context.Context, req domain.UploadEntryPhotoRequest, userID string) (string, error)
	}

	journalService struct {
		journalRepository JournalRepository
		s3                storage.AwsS3
	}
)

func NewJournalService(journalRepository JournalRepository, s3 storage.AwsS3) JournalService {
	return &journalService{
		journalRepository: journalRepository,
		s3:                s3,
	}
}

func (s *journalService) AddToJournal(ctx context.Context, req domain.AddToJournalRequest, userID string) (domain.AddToJournalResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddToJournalResponse{}, domain.ErrParseUUID
	}

	mealType := strings.ToLower(req.MealType)
	if !isValidMealType(mealType) {
		return domain.AddToJournalResponse{}, domain.ErrInvalidMealType
	}

	if req.ServingSize <= 0 {
		return domain.AddToJournalResponse{}, domain.ErrInvalidServingSize
	}

	product := req.Product
	name := product.Name
	if name == "" {
		name = "Unknown Product"
	}

	foodItem := &entities.FoodItem{
		ID:                 uuid.New(),
		UserID:             userUUID,
		Name:               name,
		Barcode:            product.Barcode,
		ImageURL:           product.Image,
		Calories:           product.NutritionFacts.Calories,
		Protein:            product.NutritionFacts.Protein,
		Carbs:              product.NutritionFacts.Carbs,
		Fat:                product.NutritionFacts.Fat,
		Fiber:              product.NutritionFacts.Fiber,
		Sugar:              product.NutritionFacts.Sugar,
		Sodium:             product.NutritionFacts.Sodium,
		Ingredients:        product.Ingredients,
		Allergens:          strings.Join(product.Allergens, ", "),
		OverallScore:       product.OverallScore.Score,
		NutritionScore:     product.NutritionScore.Score,
		ProcessingScore:    product.ProcessingScore.Score,
		EnvironmentalScore: product.EnvironmentalScore.Score,
	}

	entry := &entities.JournalEntry{
		ID:          uuid.New(),
		UserID:      userUUID,
		MealType:    mealType,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		ConsumedAt:  time.Now(),
		Notes:       req.Notes,
	}

	if err := s.journalRepository.CreateEntryWithFoodItem(ctx, foodItem, entry); err != nil {
		return domain.AddToJournalResponse{}, fmt.Errorf("%w: %v", domain.ErrJournalPersistence, err)
	}

	return domain.AddToJournalResponse{
		EntryID:    entry.ID.String(),
		FoodItemID: foodItem.ID.String(),
		Name:       foodItem.Name,
		MealType:   entry.MealType,
		ConsumedAt: entry.ConsumedAt,
	}, nil
}

func (s *journalService) GetJournalEntries(ctx context.Context, userID string, date string, mealType string, page, limit int) ([]domain.JournalEntryResponse, int64, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, 0, err
	}

	entries, count, err := s.journalRepository.GetEntries(ctx, userID, day, strings.ToLower(mealType), page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.JournalEntryResponse
	for _, entry := range entries {
		item := domain.JournalEntryResponse{
			ID:          entry.ID.String(),
			MealType:    entry.MealType,
			ServingSize: entry.ServingSize,
			ServingUnit: entry.ServingUnit,
			ConsumedAt:  entry.ConsumedAt,
			Notes:       entry.Notes,
			PhotoURL:    entry.PhotoURL,
			CreatedAt:   entry.CreatedAt,
		}
		if entry.FoodItem != nil {
			item.Name = entry.FoodItem.Name
			item.ImageURL = entry.FoodItem.ImageURL
			item.Barcode = entry.FoodItem.Barcode
			item.OverallScore = entry.FoodItem.OverallScore
			item.Facts = domain.NutritionFacts{
				Calories: entry.FoodItem.Calories,
				Protein:  entry.FoodItem.Protein,
				Carbs:    entry.FoodItem.Carbs,
				Fat:      entry.FoodItem.Fat,
				Fiber:    entry.FoodItem.Fiber,
				Sugar:    entry.FoodItem.Sugar,
				Sodium:   entry.FoodItem.Sodium,
			}
		}
		response = append(response, item)
	}

	return response, count, nil
}

func (s *journalService) GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	totals, err := s.journalRepository.GetDailyTotals(ctx, userID, day)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	return domain.DailySummaryResponse{
		Date:         day.Format("2006-01-02"),
		Entries:      int(totals.Entries),
		Calories:     totals.Calories,
		Protein:      totals.Protein,
		Carbs:        totals.Carbs,
		Fat:          totals.Fat,
		AverageScore: int(math.Round(totals.AvgScore)),
	}, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, id string, userID string) error {
	entry, err := s.journalRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.journalRepository.DeleteEntry(ctx, id)
}

func (s *journalService) UploadEntryPhoto(ctx context.Context, req domain.UploadEntryPhotoRequest, userID string) (string, error) {
	entry, err := s.journalRepository.GetEntryByID(ctx, req.EntryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrEntryNotFound
		}
		return "", err
	}

	if entry.UserID.String() != userID {
		return "", domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("journal-entry-%s", entry.ID.String())
	var objectKey string
	var uploadErr error

	if entry.PhotoURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(entry.PhotoURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Photo, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Photo, "journal-photos", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Photo, "journal-photos", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	entry.PhotoURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.journalRepository.UpdateEntry(ctx, entry); err != nil {
		return "", err
	}

	return entry.PhotoURL, nil
}

func isValidMealType(mealType string) bool {
	for _, t := range domain.MealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}

func parseDate(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return day, nil
}
