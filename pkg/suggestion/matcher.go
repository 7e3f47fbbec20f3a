package suggestion

import (
	"context"
	"sort"

	"HealthPantry-Backend/domain"
)

const (
	// AcceptanceFloor is the minimum score a candidate needs to be kept.
	AcceptanceFloor = 0.35
	// DefaultTopN caps the number of products returned per ingredient.
	DefaultTopN = 5
)

type (
	// CandidateProvider supplies catalog products for a region. The catalog
	// service satisfies this.
	CandidateProvider interface {
		FindCandidates(ctx context.Context, region string) ([]domain.ProductResponse, error)
	}

	// MatchWeights tune the fuzzy scoring terms. Token overlap dominates;
	// the verified and popularity terms break ties between equally close
	// names.
	MatchWeights struct {
		TokenOverlap  float64
		VerifiedBoost float64
		Popularity    float64
	}

	// ProductMatcher resolves a free text ingredient line to ranked catalog
	// products.
	ProductMatcher interface {
		Match(ctx context.Context, ingredientText string, region string) ([]domain.MatchedProduct, error)
	}

	productMatcher struct {
		provider CandidateProvider
		weights  MatchWeights
		floor    float64
		topN     int
	}
)

func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		TokenOverlap:  0.80,
		VerifiedBoost: 0.12,
		Popularity:    0.08,
	}
}

func NewProductMatcher(provider CandidateProvider) ProductMatcher {
	return &productMatcher{
		provider: provider,
		weights:  DefaultMatchWeights(),
		floor:    AcceptanceFloor,
		topN:     DefaultTopN,
	}
}

func (m *productMatcher) Match(ctx context.Context, ingredientText string, region string) ([]domain.MatchedProduct, error) {
	tokens := Tokenize(NormalizeIngredient(ingredientText))
	if len(tokens) == 0 {
		return []domain.MatchedProduct{}, nil
	}

	candidates, err := m.provider.FindCandidates(ctx, region)
	if err != nil {
		return nil, err
	}

	var matched []domain.MatchedProduct
	for _, product := range candidates {
		score := m.score(tokens, product)
		if score < m.floor {
			continue
		}
		matched = append(matched, domain.MatchedProduct{Product: product, Score: score})
	}

	// Score descending, then scan count, then id, so equal inputs always
	// rank identically.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		if matched[i].Product.ScanCount != matched[j].Product.ScanCount {
			return matched[i].Product.ScanCount > matched[j].Product.ScanCount
		}
		return matched[i].Product.ID < matched[j].Product.ID
	})

	if len(matched) > m.topN {
		matched = matched[:m.topN]
	}
	if matched == nil {
		matched = []domain.MatchedProduct{}
	}
	return matched, nil
}

func (m *productMatcher) score(ingredientTokens []string, product domain.ProductResponse) float64 {
	productTokens := map[string]bool{}
	for _, src := range []string{product.Name, product.Brand, product.Category} {
		for _, tok := range Tokenize(Normalize(src)) {
			productTokens[tok] = true
		}
	}

	hits := 0
	for _, tok := range ingredientTokens {
		if productTokens[tok] {
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	overlap := float64(hits) / float64(len(ingredientTokens))

	score := m.weights.TokenOverlap * overlap
	if product.Verified {
		score += m.weights.VerifiedBoost
	}
	// Saturating popularity term so a heavily scanned product cannot
	// outrank a closer name match.
	popularity := float64(product.ScanCount) / (float64(product.ScanCount) + 50)
	score += m.weights.Popularity * popularity

	return score
}
