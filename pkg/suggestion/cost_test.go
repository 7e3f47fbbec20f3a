package suggestion

import (
	"testing"

	"HealthPantry-Backend/domain"
)

func pricedProduct(id string, avg, min, max int64) domain.MatchedProduct {
	return domain.MatchedProduct{
		Product: domain.ProductResponse{
			ID:    id,
			Price: &domain.RegionalPrice{AvgPriceCents: avg, MinPriceCents: min, MaxPriceCents: max},
		},
		Score: 0.8,
	}
}

func TestEstimateCostNilWithoutPrices(t *testing.T) {
	matches := []domain.IngredientMatch{
		{Ingredient: "saffron", Products: []domain.MatchedProduct{}},
		{Ingredient: "milk", Products: []domain.MatchedProduct{
			{Product: domain.ProductResponse{ID: "p1"}, Score: 0.9},
		}},
	}
	if got := EstimateCost(matches); got != nil {
		t.Errorf("expected nil estimate, got %+v", got)
	}
}

func TestEstimateCostSumsBestPricedMatch(t *testing.T) {
	matches := []domain.IngredientMatch{
		{Ingredient: "milk", Products: []domain.MatchedProduct{
			// Top match has no price; the next priced match is used.
			{Product: domain.ProductResponse{ID: "p0"}, Score: 0.95},
			pricedProduct("p1", 300, 250, 350),
		}},
		{Ingredient: "eggs", Products: []domain.MatchedProduct{
			pricedProduct("p2", 500, 450, 600),
		}},
		{Ingredient: "saffron", Products: []domain.MatchedProduct{}},
	}

	got := EstimateCost(matches)
	if got == nil {
		t.Fatal("expected an estimate")
	}
	if got.MinCents != 700 || got.MaxCents != 950 {
		t.Errorf("range = [%d, %d], want [700, 950]", got.MinCents, got.MaxCents)
	}
	if got.IngredientsWithPrice != 2 {
		t.Errorf("ingredients with price = %d, want 2", got.IngredientsWithPrice)
	}
	if got.MinCents > got.MaxCents {
		t.Errorf("min exceeds max: %d > %d", got.MinCents, got.MaxCents)
	}
}

func TestEstimateCostFallsBackToAverage(t *testing.T) {
	matches := []domain.IngredientMatch{
		{Ingredient: "rice", Products: []domain.MatchedProduct{
			pricedProduct("p1", 400, 0, 0),
		}},
	}

	got := EstimateCost(matches)
	if got == nil {
		t.Fatal("expected an estimate")
	}
	if got.MinCents != 400 || got.MaxCents != 400 {
		t.Errorf("range = [%d, %d], want [400, 400]", got.MinCents, got.MaxCents)
	}
}
