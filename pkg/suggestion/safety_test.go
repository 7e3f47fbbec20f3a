package suggestion

import (
	"testing"

	"HealthPantry-Backend/domain"
)

func testRecipe(name string, tags []string, ingredients []string) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          "recipe-" + name,
		Name:        name,
		DietaryTags: tags,
		Ingredients: ingredients,
	}
}

func TestEvaluateAllergyHitIsDanger(t *testing.T) {
	eval := NewSafetyEvaluator(DefaultClinicalTables())
	mc := domain.PatientMedicalContext{
		PatientName: "Ana",
		Allergies:   []string{"dairy"},
	}
	recipe := testRecipe("Mac and Cheese", nil, []string{"2 cups macaroni", "1 cup shredded cheese"})

	result := eval.Evaluate(recipe, mc)

	if len(result.Badges) != 1 {
		t.Fatalf("expected 1 badge, got %d: %+v", len(result.Badges), result.Badges)
	}
	if result.Badges[0].Type != domain.BadgeDanger {
		t.Errorf("expected danger badge, got %s", result.Badges[0].Type)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(result.Warnings))
	}
}

func TestEvaluateUnknownAllergenMatchesOwnName(t *testing.T) {
	eval := NewSafetyEvaluator(DefaultClinicalTables())
	mc := domain.PatientMedicalContext{PatientName: "Ana", Allergies: []string{"kiwi"}}
	recipe := testRecipe("Fruit Salad", nil, []string{"1 kiwi, sliced", "1 banana"})

	result := eval.Evaluate(recipe, mc)

	if len(result.Badges) != 1 || result.Badges[0].Type != domain.BadgeDanger {
		t.Fatalf("expected single danger badge, got %+v", result.Badges)
	}
}

func TestEvaluateMedicationInteractionIsWarning(t *testing.T) {
	eval := NewSafetyEvaluator(DefaultClinicalTables())
	mc := domain.PatientMedicalContext{
		PatientName: "Ben",
		Medications: []domain.MedicationResponse{
			{Name: "Warfarin", InteractionTag: "anticoagulant", IsActive: true},
		},
	}
	recipe := testRecipe("Green Smoothie", nil, []string{"2 cups spinach", "1 banana"})

	result := eval.Evaluate(recipe, mc)

	if len(result.Badges) != 1 || result.Badges[0].Type != domain.BadgeWarning {
		t.Fatalf("expected single warning badge, got %+v", result.Badges)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected 1 warning string, got %d", len(result.Warnings))
	}
}

func TestEvaluateInactiveMedicationIgnored(t *testing.T) {
	eval := NewSafetyEvaluator(DefaultClinicalTables())
	mc := domain.PatientMedicalContext{
		PatientName: "Ben",
		Medications: []domain.MedicationResponse{
			{Name: "Warfarin", InteractionTag: "anticoagulant", IsActive: false},
		},
	}
	recipe := testRecipe("Green Smoothie", nil, []string{"2 cups spinach"})

	result := eval.Evaluate(recipe, mc)

	for _, b := range result.Badges {
		if b.Type == domain.BadgeWarning {
			t.Errorf("inactive medication produced warning badge: %+v", b)
		}
	}
}

func TestEvaluateDietMismatchIsInfo(t *testing.T) {
	eval := NewSafetyEvaluator(DefaultClinicalTables())
	mc := domain.PatientMedicalContext{PatientName: "Cara", DietaryTags: []string{"vegan"}}
	recipe := testRecipe("Chicken Rice", []string{"gluten-free"}, []string{"1 lb chicken", "2 cups rice"})

	result := eval.Evaluate(recipe, mc)

	if len(result.Badges) != 1 || result.Badges[0].Type != domain.BadgeInfo {
		t.Fatalf("expected single info badge, got %+v", result.Badges)
	}
	if result.Badges[0].Label != "Not vegan" {
		t.Errorf("unexpected label %q", result.Badges[0].Label)
	}
}

func TestEvaluateSafeBadgeNeedsContext(t *testing.T) {
	eval := NewSafetyEvaluator(DefaultClinicalTables())
	recipe := testRecipe("Toast", nil, []string{"2 slices bread"})

	empty := eval.Evaluate(recipe, domain.PatientMedicalContext{PatientName: "Dee"})
	if len(empty.Badges) != 0 {
		t.Errorf("no medical data should yield no badges, got %+v", empty.Badges)
	}

	withContext := eval.Evaluate(
		testRecipe("Rice Bowl", []string{"vegan"}, []string{"2 cups rice"}),
		domain.PatientMedicalContext{PatientName: "Dee", DietaryTags: []string{"vegan"}},
	)
	if len(withContext.Badges) != 1 || withContext.Badges[0].Type != domain.BadgeSafe {
		t.Fatalf("expected single safe badge, got %+v", withContext.Badges)
	}
}

func TestEvaluateBadgeOrderAndDedupe(t *testing.T) {
	eval := NewSafetyEvaluator(DefaultClinicalTables())
	mc := domain.PatientMedicalContext{
		PatientName: "Eli",
		Allergies:   []string{"dairy"},
		DietaryTags: []string{"vegan"},
		Medications: []domain.MedicationResponse{
			{Name: "Warfarin", InteractionTag: "anticoagulant", IsActive: true},
			// Same interaction class twice must not duplicate the badge for
			// the same label, but a different medication name is distinct.
			{Name: "Warfarin", InteractionTag: "anticoagulant", IsActive: true},
		},
	}
	recipe := testRecipe("Creamed Spinach", nil, []string{"2 cups spinach", "1 cup cream"})

	result := eval.Evaluate(recipe, mc)

	if len(result.Badges) != 3 {
		t.Fatalf("expected 3 badges after dedupe, got %d: %+v", len(result.Badges), result.Badges)
	}
	wantOrder := []domain.BadgeType{domain.BadgeDanger, domain.BadgeWarning, domain.BadgeInfo}
	for i, want := range wantOrder {
		if result.Badges[i].Type != want {
			t.Errorf("badge[%d] = %s, want %s", i, result.Badges[i].Type, want)
		}
	}
}
