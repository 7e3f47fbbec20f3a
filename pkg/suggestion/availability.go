package suggestion

import (
	"math"
	"strings"
	"time"

	"HealthPantry-Backend/domain"
)

// DefaultExpiryHorizonDays bounds the "expiring soon" window used when
// flagging inventory matches.
const DefaultExpiryHorizonDays = 5

type (
	// AvailabilityScorer scores how much of a recipe the account's current
	// inventory covers.
	AvailabilityScorer interface {
		Score(recipe domain.RecipeResponse, snapshot domain.InventorySnapshot, now time.Time) domain.InventoryAvailability
	}

	availabilityScorer struct {
		horizonDays int
	}
)

func NewAvailabilityScorer(horizonDays int) AvailabilityScorer {
	if horizonDays <= 0 {
		horizonDays = DefaultExpiryHorizonDays
	}
	return &availabilityScorer{horizonDays: horizonDays}
}

func (s *availabilityScorer) Score(recipe domain.RecipeResponse, snapshot domain.InventorySnapshot, now time.Time) domain.InventoryAvailability {
	// A recipe with no ingredients needs nothing, so everything is on hand.
	if len(recipe.Ingredients) == 0 {
		return domain.InventoryAvailability{
			Percentage:          100,
			ExpiringIngredients: []string{},
			MissingIngredients:  []string{},
		}
	}

	type stockEntry struct {
		item domain.InventoryItemResponse
		name string
	}
	var stock []stockEntry
	for _, item := range snapshot.Items {
		if !item.InStock {
			continue
		}
		stock = append(stock, stockEntry{item: item, name: Normalize(item.Name)})
	}

	horizon := now.AddDate(0, 0, s.horizonDays)
	matched := 0
	expiring := []string{}
	missing := []string{}
	expiringSeen := map[string]bool{}

	for _, line := range recipe.Ingredients {
		ingredient := NormalizeIngredient(line)
		if ingredient == "" {
			continue
		}
		found := false
		for _, entry := range stock {
			if entry.name == "" {
				continue
			}
			if entry.name != ingredient &&
				!strings.Contains(entry.name, ingredient) &&
				!strings.Contains(ingredient, entry.name) {
				continue
			}
			found = true
			if entry.item.ExpiryDate != nil &&
				!entry.item.ExpiryDate.Before(now) &&
				entry.item.ExpiryDate.Before(horizon) &&
				!expiringSeen[entry.item.Name] {
				expiringSeen[entry.item.Name] = true
				expiring = append(expiring, entry.item.Name)
			}
			break
		}
		if found {
			matched++
		} else {
			missing = append(missing, ingredient)
		}
	}

	percentage := int(math.Round(float64(matched) / float64(len(recipe.Ingredients)) * 100))

	return domain.InventoryAvailability{
		Percentage:          percentage,
		ExpiringIngredients: expiring,
		MissingIngredients:  missing,
	}
}
