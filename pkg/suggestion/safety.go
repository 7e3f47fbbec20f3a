package suggestion

import (
	"fmt"
	"sort"
	"strings"

	"HealthPantry-Backend/domain"
)

type (
	// SafetyEvaluator checks one recipe against a patient medical context
	// using the configured clinical tables. Evaluation is pure and never
	// persisted: the medical context can change between requests.
	SafetyEvaluator interface {
		Evaluate(recipe domain.RecipeResponse, mc domain.PatientMedicalContext) domain.SafetyResult
	}

	safetyEvaluator struct {
		tables ClinicalTables
	}
)

func NewSafetyEvaluator(tables ClinicalTables) SafetyEvaluator {
	return &safetyEvaluator{tables: tables}
}

func (e *safetyEvaluator) Evaluate(recipe domain.RecipeResponse, mc domain.PatientMedicalContext) domain.SafetyResult {
	var (
		badges   []domain.SafetyBadge
		warnings []string
		seen     = map[string]bool{}
	)

	addBadge := func(badge domain.SafetyBadge) {
		key := string(badge.Type) + "|" + badge.Label
		if seen[key] {
			return
		}
		seen[key] = true
		badges = append(badges, badge)
	}

	normalizedIngredients := make([]string, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		normalizedIngredients[i] = Normalize(ing)
	}

	recipeTags := map[string]bool{}
	for _, tag := range recipe.DietaryTags {
		recipeTags[strings.ToLower(strings.TrimSpace(tag))] = true
	}

	dietSatisfied := true
	for _, tag := range mc.DietaryTags {
		if recipeTags[strings.ToLower(strings.TrimSpace(tag))] {
			continue
		}
		dietSatisfied = false
		addBadge(domain.SafetyBadge{
			Type:    domain.BadgeInfo,
			Label:   fmt.Sprintf("Not %s", tag),
			Tooltip: fmt.Sprintf("%s follows a %s diet but this recipe is not tagged %s", mc.PatientName, tag, tag),
		})
	}

	for _, allergen := range mc.Allergies {
		keywords := e.tables.Allergens[strings.ToLower(allergen)]
		if len(keywords) == 0 {
			// Unknown allergens still match on their own name.
			keywords = []string{allergen}
		}
		for i, ing := range normalizedIngredients {
			keyword, hit := firstKeywordHit(ing, keywords)
			if !hit {
				continue
			}
			addBadge(domain.SafetyBadge{
				Type:    domain.BadgeDanger,
				Label:   fmt.Sprintf("Allergen: %s", allergen),
				Tooltip: fmt.Sprintf("ingredient %q contains %s", recipe.Ingredients[i], keyword),
			})
			warnings = append(warnings, fmt.Sprintf(
				"%q contains %s and %s is allergic to %s", recipe.Ingredients[i], keyword, mc.PatientName, allergen))
			break
		}
	}

	for _, med := range mc.Medications {
		if !med.IsActive || med.InteractionTag == "" {
			continue
		}
		entry, ok := e.tables.Interactions[med.InteractionTag]
		if !ok {
			continue
		}
		for i, ing := range normalizedIngredients {
			keyword, hit := firstKeywordHit(ing, entry.Keywords)
			if !hit {
				continue
			}
			addBadge(domain.SafetyBadge{
				Type:    domain.BadgeWarning,
				Label:   fmt.Sprintf("May interact with %s", med.Name),
				Tooltip: entry.Note,
			})
			warnings = append(warnings, fmt.Sprintf(
				"%q contains %s, which may interact with %s (%s): %s",
				recipe.Ingredients[i], keyword, med.Name, entry.Display, entry.Note))
			break
		}
	}

	hasConflict := false
	for _, b := range badges {
		if b.Type == domain.BadgeDanger || b.Type == domain.BadgeWarning {
			hasConflict = true
			break
		}
	}
	hasContext := len(mc.Allergies) > 0 || len(mc.Medications) > 0 || len(mc.DietaryTags) > 0
	if hasContext && dietSatisfied && !hasConflict {
		addBadge(domain.SafetyBadge{
			Type:    domain.BadgeSafe,
			Label:   "No known conflicts",
			Tooltip: fmt.Sprintf("no allergy, medication, or diet conflicts found for %s", mc.PatientName),
		})
	}

	sort.SliceStable(badges, func(i, j int) bool {
		return domain.BadgeRank(badges[i].Type) < domain.BadgeRank(badges[j].Type)
	})

	return domain.SafetyResult{Badges: badges, Warnings: warnings}
}

// firstKeywordHit reports the first keyword appearing as a substring of the
// normalized ingredient line.
func firstKeywordHit(normalizedIngredient string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(normalizedIngredient, Normalize(kw)) {
			return kw, true
		}
	}
	return "", false
}
