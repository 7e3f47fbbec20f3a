package suggestion

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"HealthPantry-Backend/domain"
)

type fakeCatalog struct {
	products []domain.ProductResponse
	err      error
	calls    int
}

func (f *fakeCatalog) FindCandidates(ctx context.Context, region string) ([]domain.ProductResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func product(id, name string, verified bool, scans int) domain.ProductResponse {
	return domain.ProductResponse{ID: id, Name: name, Verified: verified, ScanCount: scans}
}

func TestMatchRanksByTokenOverlap(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.ProductResponse{
		product("p1", "Whole Milk", false, 0),
		product("p2", "Milk Chocolate Bar", false, 0),
		product("p3", "Orange Juice", false, 0),
	}}
	matcher := NewProductMatcher(catalog)

	got, err := matcher.Match(context.Background(), "1 cup whole milk", "US-CA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 || got[0].Product.ID != "p1" {
		t.Fatalf("expected p1 first, got %+v", got)
	}
	for _, m := range got {
		if m.Product.ID == "p3" {
			t.Errorf("zero-overlap product p3 should be below the floor")
		}
	}
}

func TestMatchVerifiedBoostBreaksTies(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.ProductResponse{
		product("p1", "Butter", false, 0),
		product("p2", "Butter", true, 0),
	}}
	matcher := NewProductMatcher(catalog)

	got, err := matcher.Match(context.Background(), "1 tbsp butter", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Product.ID != "p2" {
		t.Fatalf("expected verified p2 first, got %+v", got)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("verified product should score higher: %v vs %v", got[0].Score, got[1].Score)
	}
}

func TestMatchCapsAtTopN(t *testing.T) {
	var products []domain.ProductResponse
	for i := 0; i < 10; i++ {
		products = append(products, product(fmt.Sprintf("p%02d", i), "Olive Oil", false, i))
	}
	matcher := NewProductMatcher(&fakeCatalog{products: products})

	got, err := matcher.Match(context.Background(), "2 tbsp olive oil", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != DefaultTopN {
		t.Fatalf("expected %d matches, got %d", DefaultTopN, len(got))
	}
	// Equal scores fall back to scan count descending.
	if got[0].Product.ID != "p09" {
		t.Errorf("expected most scanned product first, got %s", got[0].Product.ID)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.ProductResponse{
		product("p2", "Brown Rice", false, 3),
		product("p1", "Brown Rice", false, 3),
	}}
	matcher := NewProductMatcher(catalog)

	first, err := matcher.Match(context.Background(), "1 cup brown rice", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := matcher.Match(context.Background(), "1 cup brown rice", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated match differs: %+v vs %+v", first, second)
	}
	if first[0].Product.ID != "p1" {
		t.Errorf("full ties should order by id, got %s first", first[0].Product.ID)
	}
}

func TestMatchEmptyIngredientSkipsCatalog(t *testing.T) {
	catalog := &fakeCatalog{}
	matcher := NewProductMatcher(catalog)

	got, err := matcher.Match(context.Background(), "2 cups", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
	if catalog.calls != 0 {
		t.Errorf("catalog should not be queried for an empty ingredient")
	}
}

func TestMatchPropagatesProviderError(t *testing.T) {
	wantErr := errors.New("catalog down")
	matcher := NewProductMatcher(&fakeCatalog{err: wantErr})

	_, err := matcher.Match(context.Background(), "3 eggs", "")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
}
