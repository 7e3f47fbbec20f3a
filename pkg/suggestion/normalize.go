package suggestion

import (
	"strings"
)

// unitVocabulary covers the leading quantity/unit tokens stripped from free
// text ingredient lines. Tokens not in the vocabulary are left in place
// rather than guessed.
var unitVocabulary = map[string]bool{
	"cup": true, "cups": true,
	"tbsp": true, "tablespoon": true, "tablespoons": true,
	"tsp": true, "teaspoon": true, "teaspoons": true,
	"oz": true, "ounce": true, "ounces": true,
	"lb": true, "lbs": true, "pound": true, "pounds": true,
	"g": true, "gram": true, "grams": true,
	"kg": true, "ml": true, "l": true, "liter": true, "liters": true,
	"pinch": true, "dash": true, "handful": true,
	"clove": true, "cloves": true,
	"slice": true, "slices": true,
	"can": true, "cans": true,
	"piece": true, "pieces": true,
	"stick": true, "sticks": true,
	"bunch": true, "head": true,
	"of": true,
}

// descriptorWords add no matching signal; they are ignored when tokenizing
// for product matching but kept for inventory substring matching.
var descriptorWords = map[string]bool{
	"chopped": true, "diced": true, "minced": true, "sliced": true,
	"fresh": true, "frozen": true, "dried": true, "ground": true,
	"grated": true, "shredded": true, "melted": true, "softened": true,
	"cooked": true, "raw": true, "ripe": true, "large": true,
	"small": true, "medium": true, "whole": true, "boneless": true,
	"skinless": true, "optional": true, "to": true, "taste": true,
}

func isQuantityToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if (r < '0' || r > '9') && r != '/' && r != '.' && r != '-' {
			return false
		}
	}
	return true
}

// StripQuantity removes leading quantity and unit tokens from an
// ingredient line: "2 cups chopped spinach" becomes "chopped spinach".
// An unparseable prefix is returned unchanged.
func StripQuantity(ingredientText string) string {
	fields := strings.Fields(ingredientText)
	i := 0
	for i < len(fields) && isQuantityToken(fields[i]) {
		i++
	}
	// Only strip units that follow a quantity, so "can of tuna" keeps its
	// leading word but "1 can of tuna" does not.
	if i > 0 {
		for i < len(fields) && unitVocabulary[strings.ToLower(fields[i])] {
			i++
		}
	}
	if i == 0 || i == len(fields) {
		return strings.TrimSpace(ingredientText)
	}
	return strings.Join(fields[i:], " ")
}

// Normalize lowercases, strips punctuation and collapses whitespace.
func Normalize(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeIngredient reduces a free text ingredient line to a bare,
// normalized ingredient name.
func NormalizeIngredient(ingredientText string) string {
	return Normalize(StripQuantity(ingredientText))
}

// Tokenize splits a normalized string into matching tokens, dropping
// descriptor words that carry no signal.
func Tokenize(normalized string) []string {
	var tokens []string
	for _, tok := range strings.Fields(normalized) {
		if descriptorWords[tok] || unitVocabulary[tok] || isQuantityToken(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
