package suggestion

import (
	"HealthPantry-Backend/domain"
)

// EstimateCost sums the regional price range of the best priced match for
// each ingredient. It returns nil when no ingredient had a priced match,
// since a zero sum would read as "free" rather than "unknown".
func EstimateCost(matches []domain.IngredientMatch) *domain.CostEstimate {
	var estimate domain.CostEstimate
	for _, match := range matches {
		for _, candidate := range match.Products {
			price := candidate.Product.Price
			if price == nil || price.AvgPriceCents <= 0 {
				continue
			}
			min, max := price.MinPriceCents, price.MaxPriceCents
			if min <= 0 {
				min = price.AvgPriceCents
			}
			if max < min {
				max = min
			}
			estimate.MinCents += min
			estimate.MaxCents += max
			estimate.IngredientsWithPrice++
			break
		}
	}
	if estimate.IngredientsWithPrice == 0 {
		return nil
	}
	return &estimate
}
