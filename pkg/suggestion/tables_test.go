package suggestion

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadClinicalTablesDefaults(t *testing.T) {
	tables, err := LoadClinicalTables("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tables.Version == "" {
		t.Errorf("default tables should be versioned")
	}
	if len(tables.Allergens["dairy"]) == 0 {
		t.Errorf("default tables should map dairy keywords")
	}
	if _, ok := tables.Interactions["anticoagulant"]; !ok {
		t.Errorf("default tables should carry the anticoagulant class")
	}
}

func TestLoadClinicalTablesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	raw := []byte(`
version: "test-1"
allergens:
  dairy: [milk]
interactions:
  statin:
    display: statins
    keywords: [grapefruit]
    note: interferes with metabolism
`)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tables, err := LoadClinicalTables(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tables.Version != "test-1" {
		t.Errorf("version = %q, want test-1", tables.Version)
	}
	if len(tables.Allergens["dairy"]) != 1 || tables.Allergens["dairy"][0] != "milk" {
		t.Errorf("allergens = %v", tables.Allergens)
	}
	if tables.Interactions["statin"].Note == "" {
		t.Errorf("interaction note should be parsed")
	}

	if _, err := LoadClinicalTables(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file should error")
	}
}
