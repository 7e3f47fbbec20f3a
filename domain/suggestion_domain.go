package domain

import (
	"errors"
)

var (
	MessageSuccessGetSuggestions = "recipe suggestions retrieved successfully"
	MessageFailedGetSuggestions  = "failed to retrieve recipe suggestions"

	ErrNegativeMaxResults     = errors.New("max results must not be negative")
	ErrInvalidMinAvailability = errors.New("min availability must be between 0 and 100")
	ErrMissingPatient         = errors.New("patient id is required for suggestions")
)

// BadgeType is the severity class of a safety badge. Display order is
// danger > warning > info > safe within a single result.
type BadgeType string

const (
	BadgeDanger  BadgeType = "danger"
	BadgeWarning BadgeType = "warning"
	BadgeInfo    BadgeType = "info"
	BadgeSafe    BadgeType = "safe"
)

// badgeRank maps badge types to their severity order, lowest first.
var badgeRank = map[BadgeType]int{
	BadgeDanger:  0,
	BadgeWarning: 1,
	BadgeInfo:    2,
	BadgeSafe:    3,
}

// BadgeRank returns the sort key for a badge type; unknown types sort last.
func BadgeRank(t BadgeType) int {
	if r, ok := badgeRank[t]; ok {
		return r
	}
	return len(badgeRank)
}

type (
	SafetyBadge struct {
		Type    BadgeType `json:"type"`
		Label   string    `json:"label"`
		Tooltip string    `json:"tooltip,omitempty"`
	}

	// SafetyResult is derived per request and never persisted: the medical
	// context can change between requests.
	SafetyResult struct {
		Badges   []SafetyBadge `json:"badges"`
		Warnings []string      `json:"warnings"`
	}

	InventoryAvailability struct {
		Percentage          int      `json:"percentage"` // integer 0..100
		ExpiringIngredients []string `json:"expiring_ingredients"`
		MissingIngredients  []string `json:"missing_ingredients"`
	}

	// MatchedProduct is one ranked candidate for a free text ingredient.
	MatchedProduct struct {
		Product ProductResponse `json:"product"`
		Score   float64         `json:"score"`
	}

	IngredientMatch struct {
		Ingredient string           `json:"ingredient"`
		Products   []MatchedProduct `json:"products"`
	}

	// CostEstimate is nil-valued ("unknown cost") when no ingredient had a
	// priced match; a zero sum would be misleading.
	CostEstimate struct {
		MinCents             int64 `json:"min_cents"`
		MaxCents             int64 `json:"max_cents"`
		IngredientsWithPrice int   `json:"ingredients_with_price"`
	}

	MemberRecipeSuggestion struct {
		Recipe       RecipeResponse        `json:"recipe"`
		Safety       SafetyResult          `json:"safety"`
		Availability InventoryAvailability `json:"availability"`
		Matches      []IngredientMatch     `json:"ingredient_matches"`
		Cost         *CostEstimate         `json:"cost_estimate,omitempty"`
		UsesExpiring bool                  `json:"uses_expiring"`
	}

	SuggestionOptions struct {
		PatientID          string `json:"patient_id" query:"patient_id" validate:"required,uuid"`
		MealType           string `json:"meal_type" query:"meal_type" validate:"omitempty,oneof=Breakfast Lunch Dinner Snack"`
		Region             string `json:"region" query:"region" validate:"omitempty"`
		MaxResults         int    `json:"max_results" query:"max_results" validate:"omitempty,min=0"`
		PrioritizeExpiring bool   `json:"prioritize_expiring" query:"prioritize_expiring"`
		MinAvailability    int    `json:"min_availability" query:"min_availability" validate:"omitempty,min=0,max=100"`
	}

	SuggestionResponse struct {
		Suggestions []MemberRecipeSuggestion `json:"suggestions"`
		Total       int                      `json:"total"`
		Skipped     int                      `json:"skipped"`
	}
)
