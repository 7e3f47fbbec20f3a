package suggestion

import (
	"os"

	"gopkg.in/yaml.v2"
)

type (
	// InteractionEntry describes a food interaction class a medication can
	// reference through its interaction tag.
	InteractionEntry struct {
		Display  string   `yaml:"display"`
		Keywords []string `yaml:"keywords"`
		Note     string   `yaml:"note"`
	}

	// ClinicalTables holds the versioned allergen keyword and
	// medication interaction lookup tables used by the safety evaluator.
	ClinicalTables struct {
		Version      string                      `yaml:"version"`
		Allergens    map[string][]string         `yaml:"allergens"`
		Interactions map[string]InteractionEntry `yaml:"interactions"`
	}
)

// DefaultClinicalTables returns the compiled-in tables used when no
// external table file is configured.
func DefaultClinicalTables() ClinicalTables {
	return ClinicalTables{
		Version: "builtin-1",
		Allergens: map[string][]string{
			"dairy":     {"milk", "cheese", "butter", "cream", "yogurt", "whey", "casein"},
			"peanut":    {"peanut", "peanuts", "groundnut"},
			"tree nut":  {"almond", "walnut", "cashew", "pecan", "hazelnut", "pistachio"},
			"gluten":    {"wheat", "flour", "barley", "rye", "bread", "pasta", "couscous"},
			"egg":       {"egg", "eggs", "mayonnaise"},
			"soy":       {"soy", "tofu", "edamame", "tempeh"},
			"shellfish": {"shrimp", "prawn", "crab", "lobster", "scallop"},
			"fish":      {"salmon", "tuna", "cod", "anchovy", "sardine"},
			"sesame":    {"sesame", "tahini"},
		},
		Interactions: map[string]InteractionEntry{
			"anticoagulant": {
				Display:  "anticoagulants",
				Keywords: []string{"spinach", "kale", "broccoli", "brussels sprouts", "collard", "chard"},
				Note:     "high vitamin K intake can reduce anticoagulant effectiveness",
			},
			"maoi": {
				Display:  "MAO inhibitors",
				Keywords: []string{"aged cheese", "salami", "cured", "soy sauce", "sauerkraut", "miso"},
				Note:     "tyramine rich foods can cause a hypertensive reaction",
			},
			"statin": {
				Display:  "statins",
				Keywords: []string{"grapefruit"},
				Note:     "grapefruit interferes with statin metabolism",
			},
			"ace-inhibitor": {
				Display:  "ACE inhibitors",
				Keywords: []string{"banana", "salt substitute", "potassium"},
				Note:     "excess potassium intake can raise serum potassium levels",
			},
			"thyroid": {
				Display:  "thyroid medication",
				Keywords: []string{"soy", "tofu", "walnut"},
				Note:     "can reduce absorption of thyroid hormone replacement",
			},
		},
	}
}

// LoadClinicalTables reads tables from a YAML file, falling back to the
// compiled-in defaults when path is empty.
func LoadClinicalTables(path string) (ClinicalTables, error) {
	if path == "" {
		return DefaultClinicalTables(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ClinicalTables{}, err
	}
	var tables ClinicalTables
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return ClinicalTables{}, err
	}
	if tables.Allergens == nil {
		tables.Allergens = map[string][]string{}
	}
	if tables.Interactions == nil {
		tables.Interactions = map[string]InteractionEntry{}
	}
	return tables, nil
}
