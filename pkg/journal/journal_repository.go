package journal

import (
	"context"
	"time"

	"nutriscan-api/entities"

	"gorm.io/gorm"
)

type (
	// DailyTotals aggregates one day of journal entries joined with their
	// food item snapshots.
	DailyTotals struct {
		Entries  int64
		Calories float64
		Protein  float64
		Carbs    float64
		Fat      float64
		AvgScore float64
	}

	JournalRepository interface {
		// CreateEntryWithFoodItem persists the food item and the journal
		// entry referencing it in one transaction. The entry is never
		// created when the food item insert fails, and a failed entry
		// insert rolls the food item back.
		CreateEntryWithFoodItem(ctx context.Context, foodItem *entities.FoodItem, entry *entities.JournalEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.JournalEntry, error)
		GetEntries(ctx context.Context, userID string, day time.Time, mealType string, page, limit int) ([]*entities.JournalEntry, int64, error)
		UpdateEntry(ctx context.Context, entry *entities.JournalEntry) error
		DeleteEntry(ctx context.Context, id string) error
		GetDailyTotals(ctx context.Context, userID string, day time.Time) (DailyTotals, error)
	}

	journalRepository struct {
		db *gorm.DB
	}
)

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

// dayStart is midnight of the day in its own location, not the UTC epoch
// boundary Truncate would pick.
func dayStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

func (r *journalRepository) CreateEntryWithFoodItem(ctx context.Context, foodItem *entities.FoodItem, entry *entities.JournalEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(foodItem).Error; err != nil {
			return err
		}
		entry.FoodItemID = foodItem.ID
		return tx.Create(entry).Error
	})
}

func (r *journalRepository) GetEntryByID(ctx context.Context, id string) (*entities.JournalEntry, error) {
	var entry entities.JournalEntry
	if err := r.db.WithContext(ctx).Preload("FoodItem").Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) GetEntries(ctx context.Context, userID string, day time.Time, mealType string, page, limit int) ([]*entities.JournalEntry, int64, error) {
	var entries []*entities.JournalEntry
	var count int64

	start := dayStart(day)
	end := start.Add(24 * time.Hour)
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end)

	if mealType != "all" && mealType != "" {
		query = query.Where("meal_type = ?", mealType)
	}

	if err := query.Model(&entities.JournalEntry{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("FoodItem").
		Offset(offset).Limit(limit).
		Order("consumed_at asc").
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

func (r *journalRepository) UpdateEntry(ctx context.Context, entry *entities.JournalEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *journalRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.JournalEntry{}).Error
}

func (r *journalRepository) GetDailyTotals(ctx context.Context, userID string, day time.Time) (DailyTotals, error) {
	start := dayStart(day)
	end := start.Add(24 * time.Hour)

	var totals DailyTotals
	err := r.db.WithContext(ctx).
		Table("journal_entries").
		Select(`COUNT(journal_entries.id) AS entries,
			COALESCE(SUM(food_items.calories), 0) AS calories,
			COALESCE(SUM(food_items.protein), 0) AS protein,
			COALESCE(SUM(food_items.carbs), 0) AS carbs,
			COALESCE(SUM(food_items.fat), 0) AS fat,
			COALESCE(AVG(food_items.overall_score), 0) AS avg_score`).
		Joins("JOIN food_items ON food_items.id = journal_entries.food_item_id").
		Where("journal_entries.user_id = ? AND journal_entries.consumed_at >= ? AND journal_entries.consumed_at < ? AND journal_entries.deleted_at IS NULL",
			userID, start, end).
		Scan(&totals).Error
	if err != nil {
		return DailyTotals{}, err
	}

	return totals, nil
}
