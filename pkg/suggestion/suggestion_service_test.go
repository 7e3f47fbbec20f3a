package suggestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"HealthPantry-Backend/domain"
)

type fakeMedical struct {
	mc  domain.PatientMedicalContext
	err error
}

func (f *fakeMedical) GetMedicalContext(ctx context.Context, patientID string, accountID string) (domain.PatientMedicalContext, error) {
	return f.mc, f.err
}

type fakeInventory struct {
	snap domain.InventorySnapshot
	err  error
}

func (f *fakeInventory) GetSnapshot(ctx context.Context, accountID string) (domain.InventorySnapshot, error) {
	return f.snap, f.err
}

type fakeRecipes struct {
	recipes []domain.RecipeResponse
	err     error
}

func (f *fakeRecipes) GetCatalog(ctx context.Context, mealType string) ([]domain.RecipeResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if mealType == "" {
		return f.recipes, nil
	}
	var out []domain.RecipeResponse
	for _, r := range f.recipes {
		if r.MealType == mealType {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMatcher struct {
	products map[string][]domain.MatchedProduct
	err      error
}

func (f *fakeMatcher) Match(ctx context.Context, ingredientText string, region string) ([]domain.MatchedProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.products[ingredientText]; ok {
		return p, nil
	}
	return []domain.MatchedProduct{}, nil
}

func newTestService(medical MedicalDataProvider, inv InventoryProvider, rec RecipeCatalogProvider, matcher ProductMatcher) SuggestionService {
	return NewSuggestionService(
		medical, inv, rec,
		NewSafetyEvaluator(DefaultClinicalTables()),
		NewAvailabilityScorer(5),
		matcher,
		Tunables{},
	)
}

func baseOptions() domain.SuggestionOptions {
	return domain.SuggestionOptions{PatientID: "patient-1"}
}

func TestSuggestionsValidatesOptions(t *testing.T) {
	svc := newTestService(&fakeMedical{}, &fakeInventory{}, &fakeRecipes{}, &fakeMatcher{})

	cases := []struct {
		name string
		opts domain.SuggestionOptions
		want error
	}{
		{"missing patient", domain.SuggestionOptions{}, domain.ErrMissingPatient},
		{"negative max", domain.SuggestionOptions{PatientID: "p", MaxResults: -1}, domain.ErrNegativeMaxResults},
		{"bad availability", domain.SuggestionOptions{PatientID: "p", MinAvailability: 101}, domain.ErrInvalidMinAvailability},
		{"bad meal type", domain.SuggestionOptions{PatientID: "p", MealType: "Brunch"}, domain.ErrUnknownMealType},
	}
	for _, c := range cases {
		if _, err := svc.GetMemberRecipeSuggestions(context.Background(), "acct-1", c.opts); !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}

func TestSuggestionsHappyPath(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 2)

	medical := &fakeMedical{mc: domain.PatientMedicalContext{
		PatientID:   "patient-1",
		PatientName: "Ana",
		Allergies:   []string{"dairy"},
	}}
	inv := &fakeInventory{snap: domain.InventorySnapshot{
		AccountID: "acct-1",
		TakenAt:   now,
		Items: []domain.InventoryItemResponse{
			{Name: "Eggs", InStock: true, ExpiryDate: &soon},
			{Name: "Spinach", InStock: true},
		},
	}}
	recipes := &fakeRecipes{recipes: []domain.RecipeResponse{
		testRecipe("Spinach Omelette", nil, []string{"3 eggs", "1 cup spinach"}),
		testRecipe("Mac and Cheese", nil, []string{"2 cups macaroni", "1 cup cheese"}),
	}}
	matcher := &fakeMatcher{products: map[string][]domain.MatchedProduct{
		"macaroni": {pricedProduct("p1", 250, 200, 300)},
	}}

	got, err := newTestService(medical, inv, recipes, matcher).
		GetMemberRecipeSuggestions(context.Background(), "acct-1", baseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 2 || len(got.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got total=%d len=%d", got.Total, len(got.Suggestions))
	}

	// Full availability ranks the omelette first.
	first := got.Suggestions[0]
	if first.Recipe.Name != "Spinach Omelette" {
		t.Fatalf("expected omelette ranked first, got %s", first.Recipe.Name)
	}
	if first.Availability.Percentage != 100 {
		t.Errorf("omelette availability = %d, want 100", first.Availability.Percentage)
	}
	if !first.UsesExpiring {
		t.Errorf("omelette should use expiring eggs")
	}

	second := got.Suggestions[1]
	hasDangerBadge := false
	for _, b := range second.Safety.Badges {
		if b.Type == domain.BadgeDanger {
			hasDangerBadge = true
		}
	}
	if !hasDangerBadge {
		t.Errorf("mac and cheese should carry a dairy danger badge")
	}
	if second.Cost == nil || second.Cost.IngredientsWithPrice != 1 {
		t.Errorf("expected cost estimate from the macaroni match, got %+v", second.Cost)
	}
	if len(second.Matches) != 2 {
		t.Errorf("expected matches for 2 missing ingredients, got %d", len(second.Matches))
	}
}

func TestSuggestionsMinAvailabilityGate(t *testing.T) {
	inv := &fakeInventory{snap: domain.InventorySnapshot{Items: []domain.InventoryItemResponse{
		{Name: "Rice", InStock: true},
	}}}
	recipes := &fakeRecipes{recipes: []domain.RecipeResponse{
		testRecipe("Plain Rice", nil, []string{"2 cups rice"}),
		testRecipe("Paella", nil, []string{"2 cups rice", "1 lb shrimp", "1 pinch saffron", "1 onion"}),
	}}

	opts := baseOptions()
	opts.MinAvailability = 50
	got, err := newTestService(&fakeMedical{}, inv, recipes, &fakeMatcher{}).
		GetMemberRecipeSuggestions(context.Background(), "acct-1", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Suggestions) != 1 || got.Suggestions[0].Recipe.Name != "Plain Rice" {
		t.Fatalf("expected only Plain Rice, got %+v", got.Suggestions)
	}
	if got.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", got.Skipped)
	}
}

func TestSuggestionsPrioritizeExpiring(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 1)

	inv := &fakeInventory{snap: domain.InventorySnapshot{
		TakenAt: now,
		Items: []domain.InventoryItemResponse{
			{Name: "Chicken", InStock: true},
			{Name: "Spinach", InStock: true, ExpiryDate: &soon},
		},
	}}
	recipes := &fakeRecipes{recipes: []domain.RecipeResponse{
		testRecipe("Grilled Chicken", nil, []string{"1 lb chicken"}),
		testRecipe("Spinach Salad", nil, []string{"2 cups spinach"}),
	}}

	opts := baseOptions()
	opts.PrioritizeExpiring = true
	got, err := newTestService(&fakeMedical{}, inv, recipes, &fakeMatcher{}).
		GetMemberRecipeSuggestions(context.Background(), "acct-1", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Suggestions[0].Recipe.Name != "Spinach Salad" {
		t.Errorf("expected expiring-stock recipe first, got %s", got.Suggestions[0].Recipe.Name)
	}

	// Without the flag the higher catalog position wins the tie.
	got, err = newTestService(&fakeMedical{}, inv, recipes, &fakeMatcher{}).
		GetMemberRecipeSuggestions(context.Background(), "acct-1", baseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Suggestions[0].Recipe.Name != "Grilled Chicken" {
		t.Errorf("expected catalog order kept, got %s", got.Suggestions[0].Recipe.Name)
	}
}

func TestSuggestionsTruncatesAfterRanking(t *testing.T) {
	inv := &fakeInventory{snap: domain.InventorySnapshot{Items: []domain.InventoryItemResponse{
		{Name: "Spinach", InStock: true},
	}}}
	recipes := &fakeRecipes{recipes: []domain.RecipeResponse{
		testRecipe("Toast", nil, []string{"2 slices bread"}),
		testRecipe("Spinach Salad", nil, []string{"2 cups spinach"}),
	}}

	opts := baseOptions()
	opts.MaxResults = 1
	got, err := newTestService(&fakeMedical{}, inv, recipes, &fakeMatcher{}).
		GetMemberRecipeSuggestions(context.Background(), "acct-1", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got.Suggestions))
	}
	// Ranking happens before the cut, so the fully available salad survives.
	if got.Suggestions[0].Recipe.Name != "Spinach Salad" {
		t.Errorf("expected Spinach Salad kept, got %s", got.Suggestions[0].Recipe.Name)
	}
	if got.Total != 2 {
		t.Errorf("total = %d, want 2", got.Total)
	}
}

func TestSuggestionsDegradesOnMatcherFailure(t *testing.T) {
	inv := &fakeInventory{snap: domain.InventorySnapshot{}}
	recipes := &fakeRecipes{recipes: []domain.RecipeResponse{
		testRecipe("Toast", nil, []string{"2 slices bread"}),
	}}
	matcher := &fakeMatcher{err: errors.New("catalog down")}

	got, err := newTestService(&fakeMedical{}, inv, recipes, matcher).
		GetMemberRecipeSuggestions(context.Background(), "acct-1", baseOptions())
	if err != nil {
		t.Fatalf("matcher failure should degrade, not fail: %v", err)
	}
	if len(got.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got.Suggestions))
	}
	match := got.Suggestions[0].Matches[0]
	if match.Ingredient != "bread" || len(match.Products) != 0 {
		t.Errorf("expected empty match for bread, got %+v", match)
	}
	if got.Suggestions[0].Cost != nil {
		t.Errorf("expected nil cost with no priced matches")
	}
}

func TestSuggestionsHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recipes := &fakeRecipes{recipes: []domain.RecipeResponse{
		testRecipe("Toast", nil, []string{"2 slices bread"}),
	}}

	_, err := newTestService(&fakeMedical{}, &fakeInventory{}, recipes, &fakeMatcher{}).
		GetMemberRecipeSuggestions(ctx, "acct-1", baseOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSuggestionsPropagatesProviderErrors(t *testing.T) {
	wantErr := domain.ErrPatientNotFound
	svc := newTestService(&fakeMedical{err: wantErr}, &fakeInventory{}, &fakeRecipes{}, &fakeMatcher{})

	_, err := svc.GetMemberRecipeSuggestions(context.Background(), "acct-1", baseOptions())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
