package suggestion

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"HealthPantry-Backend/domain"
	"HealthPantry-Backend/internal/utils"
)

const (
	// DefaultWorkerCount bounds the ingredient match fan-out.
	DefaultWorkerCount = 4
	// DefaultMatchTimeout caps one catalog match attempt; a slow catalog
	// degrades that ingredient to no matches instead of stalling the call.
	DefaultMatchTimeout = 2 * time.Second
	// DefaultMaxResults applies when the caller does not cap results.
	DefaultMaxResults = 20
)

type (
	// MedicalDataProvider yields the patient snapshot used for safety
	// evaluation. The patient service satisfies this.
	MedicalDataProvider interface {
		GetMedicalContext(ctx context.Context, patientID string, accountID string) (domain.PatientMedicalContext, error)
	}

	// InventoryProvider yields the stock snapshot scored per recipe. The
	// inventory service satisfies this.
	InventoryProvider interface {
		GetSnapshot(ctx context.Context, accountID string) (domain.InventorySnapshot, error)
	}

	// RecipeCatalogProvider yields the recipe catalog in stable position
	// order. The recipe service satisfies this.
	RecipeCatalogProvider interface {
		GetCatalog(ctx context.Context, mealType string) ([]domain.RecipeResponse, error)
	}

	SuggestionService interface {
		GetMemberRecipeSuggestions(ctx context.Context, accountID string, opts domain.SuggestionOptions) (domain.SuggestionResponse, error)
	}

	// Tunables adjust the orchestrator; zero values take the defaults.
	Tunables struct {
		WorkerCount  int
		MatchTimeout time.Duration
		MaxResults   int
	}

	suggestionService struct {
		medical   MedicalDataProvider
		inventory InventoryProvider
		recipes   RecipeCatalogProvider
		safety    SafetyEvaluator
		scorer    AvailabilityScorer
		matcher   ProductMatcher
		tunables  Tunables
	}
)

func NewSuggestionService(
	medical MedicalDataProvider,
	inventory InventoryProvider,
	recipes RecipeCatalogProvider,
	safety SafetyEvaluator,
	scorer AvailabilityScorer,
	matcher ProductMatcher,
	tunables Tunables,
) SuggestionService {
	if tunables.WorkerCount <= 0 {
		tunables.WorkerCount = DefaultWorkerCount
	}
	if tunables.MatchTimeout <= 0 {
		tunables.MatchTimeout = DefaultMatchTimeout
	}
	if tunables.MaxResults <= 0 {
		tunables.MaxResults = DefaultMaxResults
	}
	return &suggestionService{
		medical:   medical,
		inventory: inventory,
		recipes:   recipes,
		safety:    safety,
		scorer:    scorer,
		matcher:   matcher,
		tunables:  tunables,
	}
}

func (s *suggestionService) GetMemberRecipeSuggestions(ctx context.Context, accountID string, opts domain.SuggestionOptions) (domain.SuggestionResponse, error) {
	if opts.PatientID == "" {
		return domain.SuggestionResponse{}, domain.ErrMissingPatient
	}
	if opts.MaxResults < 0 {
		return domain.SuggestionResponse{}, domain.ErrNegativeMaxResults
	}
	if opts.MinAvailability < 0 || opts.MinAvailability > 100 {
		return domain.SuggestionResponse{}, domain.ErrInvalidMinAvailability
	}
	if opts.MealType != "" && !domain.ValidMealType(opts.MealType) {
		return domain.SuggestionResponse{}, domain.ErrUnknownMealType
	}

	mc, err := s.medical.GetMedicalContext(ctx, opts.PatientID, accountID)
	if err != nil {
		return domain.SuggestionResponse{}, err
	}
	snapshot, err := s.inventory.GetSnapshot(ctx, accountID)
	if err != nil {
		return domain.SuggestionResponse{}, err
	}
	catalog, err := s.recipes.GetCatalog(ctx, opts.MealType)
	if err != nil {
		return domain.SuggestionResponse{}, err
	}

	now := snapshot.TakenAt
	if now.IsZero() {
		now = time.Now()
	}

	// First pass: safety and availability are cheap in-process work, and
	// the availability gate decides which recipes are worth matching.
	suggestions := make([]domain.MemberRecipeSuggestion, 0, len(catalog))
	skipped := 0
	for _, rec := range catalog {
		if err := ctx.Err(); err != nil {
			return domain.SuggestionResponse{}, err
		}
		availability := s.scorer.Score(rec, snapshot, now)
		if availability.Percentage < opts.MinAvailability {
			skipped++
			continue
		}
		suggestions = append(suggestions, domain.MemberRecipeSuggestion{
			Recipe:       rec,
			Safety:       s.safety.Evaluate(rec, mc),
			Availability: availability,
			UsesExpiring: len(availability.ExpiringIngredients) > 0,
		})
	}

	// Second pass: fan out catalog matching for the missing ingredients of
	// every surviving recipe over a bounded worker pool.
	if err := s.matchMissing(ctx, suggestions, opts.Region); err != nil {
		return domain.SuggestionResponse{}, err
	}
	for i := range suggestions {
		suggestions[i].Cost = EstimateCost(suggestions[i].Matches)
	}

	s.rank(suggestions, opts.PrioritizeExpiring)

	total := len(suggestions)
	limit := opts.MaxResults
	if limit == 0 {
		limit = s.tunables.MaxResults
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return domain.SuggestionResponse{
		Suggestions: suggestions,
		Total:       total,
		Skipped:     skipped,
	}, nil
}

type matchJob struct {
	suggestionIdx int
	matchIdx      int
	ingredient    string
}

func (s *suggestionService) matchMissing(ctx context.Context, suggestions []domain.MemberRecipeSuggestion, region string) error {
	var jobs []matchJob
	for i := range suggestions {
		missing := suggestions[i].Availability.MissingIngredients
		suggestions[i].Matches = make([]domain.IngredientMatch, len(missing))
		for j, ingredient := range missing {
			suggestions[i].Matches[j] = domain.IngredientMatch{
				Ingredient: ingredient,
				Products:   []domain.MatchedProduct{},
			}
			jobs = append(jobs, matchJob{suggestionIdx: i, matchIdx: j, ingredient: ingredient})
		}
	}
	if len(jobs) == 0 {
		return nil
	}

	jobCh := make(chan matchJob)
	var wg sync.WaitGroup
	for w := 0; w < s.tunables.WorkerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				s.runMatch(ctx, suggestions, job, region)
			}
		}()
	}

	dispatchErr := func() error {
		defer close(jobCh)
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobCh <- job:
			}
		}
		return nil
	}()
	wg.Wait()

	return dispatchErr
}

func (s *suggestionService) runMatch(ctx context.Context, suggestions []domain.MemberRecipeSuggestion, job matchJob, region string) {
	matchCtx, cancel := context.WithTimeout(ctx, s.tunables.MatchTimeout)
	defer cancel()

	products, err := s.matcher.Match(matchCtx, job.ingredient, region)
	if err != nil {
		// A failed or slow catalog lookup degrades this ingredient to no
		// matches rather than failing the whole suggestion call.
		utils.LogWarn("ingredient match degraded",
			zap.String("ingredient", job.ingredient),
			zap.String("region", region),
			zap.Error(err))
		return
	}
	suggestions[job.suggestionIdx].Matches[job.matchIdx].Products = products
}

// rank orders suggestions by expiring-stock usage (when requested), then
// availability, then absence of danger badges, keeping catalog position
// order for full ties via stable sort.
func (s *suggestionService) rank(suggestions []domain.MemberRecipeSuggestion, prioritizeExpiring bool) {
	hasDanger := func(sg domain.MemberRecipeSuggestion) bool {
		for _, b := range sg.Safety.Badges {
			if b.Type == domain.BadgeDanger {
				return true
			}
		}
		return false
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if prioritizeExpiring && a.UsesExpiring != b.UsesExpiring {
			return a.UsesExpiring
		}
		if a.Availability.Percentage != b.Availability.Percentage {
			return a.Availability.Percentage > b.Availability.Percentage
		}
		if da, db := hasDanger(a), hasDanger(b); da != db {
			return !da
		}
		return false
	})
}
