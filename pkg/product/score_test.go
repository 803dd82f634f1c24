package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriscan-api/domain"
)

func TestGradeScore(t *testing.T) {
	cases := map[string]int{
		"a": 90,
		"b": 75,
		"c": 60,
		"d": 40,
		"e": 20,
		"":  50,
		"z": 50,
	}
	for grade, want := range cases {
		assert.Equal(t, want, gradeScore(grade), "grade %q", grade)
	}
}

func TestNovaScore(t *testing.T) {
	cases := map[int]int{
		1: 90,
		2: 70,
		3: 40,
		4: 20,
		0: 50,
		5: 50,
	}
	for group, want := range cases {
		assert.Equal(t, want, novaScore(group), "group %d", group)
	}
}

func TestScoreColor_Boundaries(t *testing.T) {
	assert.Equal(t, "green", scoreColor(80))
	assert.Equal(t, "yellow", scoreColor(79))
	assert.Equal(t, "yellow", scoreColor(60))
	assert.Equal(t, "red", scoreColor(59))
	assert.Equal(t, "green", scoreColor(100))
	assert.Equal(t, "red", scoreColor(0))
}

func TestScoreLabel_Boundaries(t *testing.T) {
	assert.Equal(t, "Excellent", scoreLabel(80))
	assert.Equal(t, "Good", scoreLabel(79))
	assert.Equal(t, "Good", scoreLabel(60))
	assert.Equal(t, "Poor", scoreLabel(59))
}

func TestOverallScore_AveragesOnlyAvailable(t *testing.T) {
	subs := []domain.NutritionScore{
		{Score: 90, Available: true},
		{Score: 50, Available: false},
		{Score: 20, Available: true},
	}
	// (90 + 20) / 2; the unavailable default never drags the mean.
	assert.Equal(t, 55, overallScore(subs...))
}

func TestOverallScore_RoundsHalfUp(t *testing.T) {
	subs := []domain.NutritionScore{
		{Score: 90, Available: true},
		{Score: 75, Available: true},
	}
	// 82.5 rounds to 83, not 82.
	assert.Equal(t, 83, overallScore(subs...))
}

func TestOverallScore_NoneAvailable(t *testing.T) {
	subs := []domain.NutritionScore{
		{Score: 50, Available: false},
		{Score: 50, Available: false},
		{Score: 50, Available: false},
	}
	assert.Equal(t, 50, overallScore(subs...))
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "tree nuts", normalizeTag("en:tree_nuts"))
	assert.Equal(t, "gluten", normalizeTag("fr:gluten"))
	assert.Equal(t, "soybeans", normalizeTag("soybeans"))
	assert.Equal(t, "organic farming", normalizeTag("en:organic_farming"))
}

func TestBuildScannedProduct_AllGradesPresent(t *testing.T) {
	rec := &ProductRecord{
		ProductName:     "Rolled Oats",
		NutriscoreGrade: "a",
		NovaGroup:       1,
		EcoscoreGrade:   "b",
	}

	got := BuildScannedProduct(rec, "3017620422003")

	assert.Equal(t, 90, got.NutritionScore.Score)
	assert.Equal(t, "Nutri-Score A", got.NutritionScore.Label)
	assert.True(t, got.NutritionScore.Available)

	assert.Equal(t, 90, got.ProcessingScore.Score)
	assert.Equal(t, "NOVA Group 1", got.ProcessingScore.Label)
	assert.True(t, got.ProcessingScore.Available)

	assert.Equal(t, 75, got.EnvironmentalScore.Score)
	assert.Equal(t, "Eco-Score B", got.EnvironmentalScore.Label)
	assert.True(t, got.EnvironmentalScore.Available)

	// mean of 90, 90, 75 is 85
	assert.Equal(t, 85, got.OverallScore.Score)
	assert.Equal(t, "green", got.OverallScore.Color)
	assert.Equal(t, "Excellent", got.OverallScore.Label)
	assert.Equal(t, "3017620422003", got.Barcode)
}

func TestBuildScannedProduct_NothingAvailable(t *testing.T) {
	got := BuildScannedProduct(&ProductRecord{}, "0000000000000")

	for _, sub := range []domain.NutritionScore{
		got.NutritionScore, got.ProcessingScore, got.EnvironmentalScore,
	} {
		assert.Equal(t, 50, sub.Score)
		assert.False(t, sub.Available)
		assert.Equal(t, "Not Available", sub.Label)
	}

	assert.Equal(t, 50, got.OverallScore.Score)
	assert.Equal(t, "red", got.OverallScore.Color)
	assert.Equal(t, "Poor", got.OverallScore.Label)
	assert.Equal(t, "Unknown Product", got.Name)
	assert.Equal(t, placeholderImage, got.Image)
}

func TestBuildScannedProduct_UppercaseGrades(t *testing.T) {
	rec := &ProductRecord{NutriscoreGrade: "C", EcoscoreGrade: "D"}

	got := BuildScannedProduct(rec, "1")

	assert.Equal(t, 60, got.NutritionScore.Score)
	assert.Equal(t, "Nutri-Score C", got.NutritionScore.Label)
	assert.Equal(t, 40, got.EnvironmentalScore.Score)
	assert.Equal(t, "Eco-Score D", got.EnvironmentalScore.Label)
}

func TestBuildScannedProduct_EnergyFallback(t *testing.T) {
	rec := &ProductRecord{
		Nutriments: Nutriments{EnergyValue: 120, Proteins: 4.5, Sugars: 11},
	}

	got := BuildScannedProduct(rec, "1")
	assert.Equal(t, 120.0, got.NutritionFacts.Calories)
	assert.Equal(t, 4.5, got.NutritionFacts.Protein)
	assert.Equal(t, 11.0, got.NutritionFacts.Sugar)

	rec.Nutriments.EnergyKcal = 250
	got = BuildScannedProduct(rec, "1")
	assert.Equal(t, 250.0, got.NutritionFacts.Calories)
}

func TestBuildScannedProduct_IngredientsPrecedence(t *testing.T) {
	rec := &ProductRecord{
		IngredientsTextEn: "oats, water",
		IngredientsText:   "avoine, eau",
	}
	got := BuildScannedProduct(rec, "1")
	assert.Equal(t, "oats, water", got.Ingredients)

	rec.IngredientsTextEn = ""
	got = BuildScannedProduct(rec, "1")
	assert.Equal(t, "avoine, eau", got.Ingredients)
}

func TestBuildScannedProduct_ImageFallbackChain(t *testing.T) {
	rec := &ProductRecord{}
	rec.SelectedImages.Front.Display.URL = "https://img.example/front.jpg"

	got := BuildScannedProduct(rec, "1")
	assert.Equal(t, "https://img.example/front.jpg", got.Image)

	rec.ImageFrontURL = "https://img.example/front_full.jpg"
	got = BuildScannedProduct(rec, "1")
	assert.Equal(t, "https://img.example/front_full.jpg", got.Image)

	rec.ImageURL = "https://img.example/main.jpg"
	got = BuildScannedProduct(rec, "1")
	assert.Equal(t, "https://img.example/main.jpg", got.Image)
}

func TestBuildScannedProduct_TagsNormalized(t *testing.T) {
	rec := &ProductRecord{
		AllergensTags: []string{"en:tree_nuts", "en:milk"},
		LabelsTags:    []string{"en:organic", "fr:commerce_equitable"},
	}

	got := BuildScannedProduct(rec, "1")
	require.Len(t, got.Allergens, 2)
	assert.Equal(t, []string{"tree nuts", "milk"}, got.Allergens)
	assert.Equal(t, []string{"organic", "commerce equitable"}, got.AdditionalInfo.Certifications)
}

func TestBuildScannedProduct_Deterministic(t *testing.T) {
	rec := &ProductRecord{
		ProductName:     "Soup",
		NutriscoreGrade: "b",
		NovaGroup:       3,
	}

	first := BuildScannedProduct(rec, "2")
	second := BuildScannedProduct(rec, "2")
	assert.Equal(t, first, second)
}
