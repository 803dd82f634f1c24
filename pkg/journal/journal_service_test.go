package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nutriscan-api/domain"
	"nutriscan-api/entities"
)

// fakeJournalRepository keeps entries in memory and can be told to fail the
// food item insert, mimicking the transactional repository without a database.
type fakeJournalRepository struct {
	foodItems    map[uuid.UUID]*entities.FoodItem
	entries      map[uuid.UUID]*entities.JournalEntry
	failFoodItem error
	failEntry    error
	totals       DailyTotals
	totalsErr    error
	listed       []*entities.JournalEntry
	listedCount  int64
	lastMealType string
	lastDay      time.Time
	updatedEntry *entities.JournalEntry
	deletedIDs   []string
}

func newFakeJournalRepository() *fakeJournalRepository {
	return &fakeJournalRepository{
		foodItems: make(map[uuid.UUID]*entities.FoodItem),
		entries:   make(map[uuid.UUID]*entities.JournalEntry),
	}
}

func (r *fakeJournalRepository) CreateEntryWithFoodItem(ctx context.Context, foodItem *entities.FoodItem, entry *entities.JournalEntry) error {
	if r.failFoodItem != nil {
		return r.failFoodItem
	}
	if r.failEntry != nil {
		// entry insert failed inside the transaction, food item rolls back
		return r.failEntry
	}
	r.foodItems[foodItem.ID] = foodItem
	entry.FoodItemID = foodItem.ID
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeJournalRepository) GetEntryByID(ctx context.Context, id string) (*entities.JournalEntry, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	entry, ok := r.entries[entryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (r *fakeJournalRepository) GetEntries(ctx context.Context, userID string, day time.Time, mealType string, page, limit int) ([]*entities.JournalEntry, int64, error) {
	r.lastDay = day
	r.lastMealType = mealType
	return r.listed, r.listedCount, nil
}

func (r *fakeJournalRepository) UpdateEntry(ctx context.Context, entry *entities.JournalEntry) error {
	r.updatedEntry = entry
	return nil
}

func (r *fakeJournalRepository) DeleteEntry(ctx context.Context, id string) error {
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

func (r *fakeJournalRepository) GetDailyTotals(ctx context.Context, userID string, day time.Time) (DailyTotals, error) {
	if r.totalsErr != nil {
		return DailyTotals{}, r.totalsErr
	}
	return r.totals, nil
}

func sampleProduct() domain.ScannedProduct {
	return domain.ScannedProduct{
		Name:    "Rolled Oats",
		Barcode: "5410673000153",
		Image:   "https://img.example/oats.jpg",
		OverallScore: domain.NutritionScore{
			Score: 85, Color: "green", Label: "Excellent", Available: true,
		},
		NutritionScore:     domain.NutritionScore{Score: 90, Available: true},
		ProcessingScore:    domain.NutritionScore{Score: 90, Available: true},
		EnvironmentalScore: domain.NutritionScore{Score: 75, Available: true},
		NutritionFacts: domain.NutritionFacts{
			Calories: 379, Protein: 13.2, Carbs: 67.7, Fat: 6.5,
		},
		Ingredients: "whole grain rolled oats",
		Allergens:   []string{"gluten", "may contain nuts"},
	}
}

func TestJournalService_AddToJournal(t *testing.T) {
	repo := newFakeJournalRepository()
	service := NewJournalService(repo, nil)
	userID := uuid.NewString()

	req := domain.AddToJournalRequest{
		Product:     sampleProduct(),
		MealType:    "Breakfast",
		ServingSize: 40,
		ServingUnit: "g",
		Notes:       "with yogurt",
	}

	got, err := service.AddToJournal(context.Background(), req, userID)
	require.NoError(t, err)

	assert.Equal(t, "Rolled Oats", got.Name)
	assert.Equal(t, "breakfast", got.MealType)
	assert.WithinDuration(t, time.Now(), got.ConsumedAt, time.Second)

	entryID, err := uuid.Parse(got.EntryID)
	require.NoError(t, err)
	entry := repo.entries[entryID]
	require.NotNil(t, entry)
	assert.Equal(t, userID, entry.UserID.String())
	assert.Equal(t, 40.0, entry.ServingSize)
	assert.Equal(t, "with yogurt", entry.Notes)

	item := repo.foodItems[entry.FoodItemID]
	require.NotNil(t, item)
	assert.Equal(t, "5410673000153", item.Barcode)
	assert.Equal(t, 85, item.OverallScore)
	assert.Equal(t, 90, item.NutritionScore)
	assert.Equal(t, 75, item.EnvironmentalScore)
	assert.Equal(t, 379.0, item.Calories)
	assert.Equal(t, "gluten, may contain nuts", item.Allergens)
}

func TestJournalService_AddToJournal_FoodItemInsertFails(t *testing.T) {
	repo := newFakeJournalRepository()
	repo.failFoodItem = errors.New("insert failed")
	service := NewJournalService(repo, nil)

	req := domain.AddToJournalRequest{
		Product:     sampleProduct(),
		MealType:    "lunch",
		ServingSize: 1,
		ServingUnit: "portion",
	}

	_, err := service.AddToJournal(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrJournalPersistence)
	assert.Empty(t, repo.entries, "no journal entry when the food item insert fails")
	assert.Empty(t, repo.foodItems)
}

func TestJournalService_AddToJournal_InvalidUserID(t *testing.T) {
	service := NewJournalService(newFakeJournalRepository(), nil)

	req := domain.AddToJournalRequest{
		Product:     sampleProduct(),
		MealType:    "dinner",
		ServingSize: 1,
		ServingUnit: "portion",
	}

	_, err := service.AddToJournal(context.Background(), req, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestJournalService_AddToJournal_InvalidMealType(t *testing.T) {
	service := NewJournalService(newFakeJournalRepository(), nil)

	req := domain.AddToJournalRequest{
		Product:     sampleProduct(),
		MealType:    "brunch",
		ServingSize: 1,
		ServingUnit: "portion",
	}

	_, err := service.AddToJournal(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidMealType)
}

func TestJournalService_AddToJournal_InvalidServingSize(t *testing.T) {
	service := NewJournalService(newFakeJournalRepository(), nil)

	req := domain.AddToJournalRequest{
		Product:     sampleProduct(),
		MealType:    "snack",
		ServingSize: 0,
		ServingUnit: "g",
	}

	_, err := service.AddToJournal(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidServingSize)
}

func TestJournalService_AddToJournal_UnnamedProduct(t *testing.T) {
	repo := newFakeJournalRepository()
	service := NewJournalService(repo, nil)

	product := sampleProduct()
	product.Name = ""
	req := domain.AddToJournalRequest{
		Product:     product,
		MealType:    "snack",
		ServingSize: 1,
		ServingUnit: "portion",
	}

	got, err := service.AddToJournal(context.Background(), req, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, "Unknown Product", got.Name)
}

func TestJournalService_GetJournalEntries(t *testing.T) {
	repo := newFakeJournalRepository()
	entryID := uuid.New()
	consumedAt := time.Date(2026, 8, 30, 8, 15, 0, 0, time.UTC)
	repo.listed = []*entities.JournalEntry{
		{
			ID:          entryID,
			MealType:    "breakfast",
			ServingSize: 40,
			ServingUnit: "g",
			ConsumedAt:  consumedAt,
			FoodItem: &entities.FoodItem{
				Name:         "Rolled Oats",
				Barcode:      "5410673000153",
				Calories:     379,
				OverallScore: 85,
			},
		},
	}
	repo.listedCount = 1
	service := NewJournalService(repo, nil)

	entries, count, err := service.GetJournalEntries(context.Background(), uuid.NewString(), "2026-08-30", "Breakfast", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, entries, 1)

	assert.Equal(t, entryID.String(), entries[0].ID)
	assert.Equal(t, "Rolled Oats", entries[0].Name)
	assert.Equal(t, "5410673000153", entries[0].Barcode)
	assert.Equal(t, 85, entries[0].OverallScore)
	assert.Equal(t, 379.0, entries[0].Facts.Calories)
	assert.Equal(t, "breakfast", repo.lastMealType)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), repo.lastDay)
}

func TestJournalService_GetJournalEntries_DefaultsToLocalToday(t *testing.T) {
	repo := newFakeJournalRepository()
	service := NewJournalService(repo, nil)

	_, _, err := service.GetJournalEntries(context.Background(), uuid.NewString(), "", "all", 1, 10)
	require.NoError(t, err)

	now := time.Now()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.Equal(t, want, repo.lastDay, "empty date selects midnight of the local calendar day")
}

func TestDayStart_KeepsLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	early := time.Date(2026, 8, 31, 2, 30, 0, 0, jakarta)

	got := dayStart(early)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, jakarta), got)
	assert.Equal(t, 31, got.Day(), "an early-morning instant east of UTC stays on its own day")

	// Truncate would have landed on the previous local day.
	assert.Equal(t, 30, early.Truncate(24*time.Hour).Day())
}

func TestJournalService_GetJournalEntries_InvalidDate(t *testing.T) {
	service := NewJournalService(newFakeJournalRepository(), nil)

	_, _, err := service.GetJournalEntries(context.Background(), uuid.NewString(), "30-08-2026", "", 1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestJournalService_GetDailySummary(t *testing.T) {
	repo := newFakeJournalRepository()
	repo.totals = DailyTotals{
		Entries:  3,
		Calories: 1850,
		Protein:  72.5,
		Carbs:    210,
		Fat:      55,
		AvgScore: 71.5,
	}
	service := NewJournalService(repo, nil)

	got, err := service.GetDailySummary(context.Background(), uuid.NewString(), "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", got.Date)
	assert.Equal(t, 3, got.Entries)
	assert.Equal(t, 1850.0, got.Calories)
	assert.Equal(t, 72, got.AverageScore, "average score rounds half-up")
}

func TestJournalService_DeleteEntry(t *testing.T) {
	repo := newFakeJournalRepository()
	userID := uuid.New()
	entry := &entities.JournalEntry{ID: uuid.New(), UserID: userID}
	repo.entries[entry.ID] = entry
	service := NewJournalService(repo, nil)

	require.NoError(t, service.DeleteEntry(context.Background(), entry.ID.String(), userID.String()))
	assert.Equal(t, []string{entry.ID.String()}, repo.deletedIDs)
}

func TestJournalService_DeleteEntry_NotFound(t *testing.T) {
	service := NewJournalService(newFakeJournalRepository(), nil)

	err := service.DeleteEntry(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestJournalService_DeleteEntry_WrongOwner(t *testing.T) {
	repo := newFakeJournalRepository()
	entry := &entities.JournalEntry{ID: uuid.New(), UserID: uuid.New()}
	repo.entries[entry.ID] = entry
	service := NewJournalService(repo, nil)

	err := service.DeleteEntry(context.Background(), entry.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
	assert.Empty(t, repo.deletedIDs)
}
