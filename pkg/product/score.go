package product

import (
	"math"
	"strconv"
	"strings"

	"nutriscan-api/domain"
)

// defaultScore stands in for any sub-score whose source grade is absent. It
// never participates in the overall mean.
const defaultScore = 50

const placeholderImage = "https://images.unsplash.com/photo-1505252585461-04db1eb84625?w=800&q=80"

// gradeScore maps a Nutri-Score or Eco-Score letter onto 0-100. Unknown
// letters fall back to the neutral default.
func gradeScore(grade string) int {
	switch grade {
	case "a":
		return 90
	case "b":
		return 75
	case "c":
		return 60
	case "d":
		return 40
	case "e":
		return 20
	default:
		return defaultScore
	}
}

// novaScore maps the four-level NOVA processing classification onto 0-100.
func novaScore(group int) int {
	switch group {
	case 1:
		return 90
	case 2:
		return 70
	case 3:
		return 40
	case 4:
		return 20
	default:
		return defaultScore
	}
}

func scoreColor(score int) string {
	if score >= 80 {
		return "green"
	}
	if score >= 60 {
		return "yellow"
	}
	return "red"
}

func scoreLabel(score int) string {
	if score >= 80 {
		return "Excellent"
	}
	if score >= 60 {
		return "Good"
	}
	return "Poor"
}

// overallScore averages only the sub-scores whose source grade was present,
// rounded half-up. With nothing available it stays at the neutral default.
func overallScore(subs ...domain.NutritionScore) int {
	sum, n := 0, 0
	for _, s := range subs {
		if s.Available {
			sum += s.Score
			n++
		}
	}
	if n == 0 {
		return defaultScore
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// normalizeTag strips the language-code prefix from a taxonomy tag
// ("en:tree_nuts" -> "tree nuts").
func normalizeTag(tag string) string {
	if i := strings.Index(tag, ":"); i >= 0 {
		tag = tag[i+1:]
	}
	return strings.ReplaceAll(tag, "_", " ")
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, normalizeTag(tag))
	}
	return out
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// BuildScannedProduct turns a fetched record into the scored aggregate. It is
// a pure function of the record: the same input always yields the same scores.
func BuildScannedProduct(rec *ProductRecord, barcode string) domain.ScannedProduct {
	nutriGrade := strings.ToLower(rec.NutriscoreGrade)
	ecoGrade := strings.ToLower(rec.EcoscoreGrade)

	nutrition := domain.NutritionScore{
		Score:     gradeScore(nutriGrade),
		Available: nutriGrade != "",
	}
	nutrition.Color = scoreColor(nutrition.Score)
	if nutrition.Available {
		nutrition.Label = "Nutri-Score " + strings.ToUpper(nutriGrade)
	} else {
		nutrition.Label = "Not Available"
	}

	processing := domain.NutritionScore{
		Score:     novaScore(rec.NovaGroup),
		Available: rec.NovaGroup != 0,
	}
	processing.Color = scoreColor(processing.Score)
	if processing.Available {
		processing.Label = "NOVA Group " + strconv.Itoa(rec.NovaGroup)
	} else {
		processing.Label = "Not Available"
	}

	environmental := domain.NutritionScore{
		Score:     gradeScore(ecoGrade),
		Available: ecoGrade != "",
	}
	environmental.Color = scoreColor(environmental.Score)
	if environmental.Available {
		environmental.Label = "Eco-Score " + strings.ToUpper(ecoGrade)
	} else {
		environmental.Label = "Not Available"
	}

	overall := overallScore(nutrition, processing, environmental)
	overallNS := domain.NutritionScore{
		Score:     overall,
		Color:     scoreColor(overall),
		Label:     scoreLabel(overall),
		Available: true,
	}

	name := rec.ProductName
	if name == "" {
		name = "Unknown Product"
	}

	return domain.ScannedProduct{
		Name:               name,
		Image:              firstNonEmpty(rec.ImageURL, rec.ImageFrontURL, rec.SelectedImages.Front.Display.URL, placeholderImage),
		OverallScore:       overallNS,
		NutritionScore:     nutrition,
		ProcessingScore:    processing,
		EnvironmentalScore: environmental,
		NutritionFacts: domain.NutritionFacts{
			Calories: firstNonZero(rec.Nutriments.EnergyKcal, rec.Nutriments.EnergyValue),
			Protein:  rec.Nutriments.Proteins,
			Carbs:    rec.Nutriments.Carbohydrates,
			Fat:      rec.Nutriments.Fat,
			Fiber:    rec.Nutriments.Fiber,
			Sugar:    rec.Nutriments.Sugars,
			Sodium:   rec.Nutriments.Sodium,
		},
		// Always a single string; the two source shapes collapse here.
		Ingredients: firstNonEmpty(rec.IngredientsTextEn, rec.IngredientsText),
		Allergens:   normalizeTags(rec.AllergensTags),
		Barcode:     barcode,
		AdditionalInfo: domain.AdditionalInfo{
			Storage:             firstNonEmpty(rec.StorageConditions, rec.ConservationConditions),
			Manufacturer:        rec.Brands,
			ContactInfo:         rec.Contact,
			CountryOfOrigin:     rec.Countries,
			Quantity:            firstNonEmpty(rec.Quantity, rec.ProductQuantity.String()),
			Certifications:      normalizeTags(rec.LabelsTags),
			CookingInstructions: rec.Preparation,
		},
	}
}
