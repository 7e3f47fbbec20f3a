package suggestion

import (
	"reflect"
	"testing"
)

func TestStripQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2 cups chopped spinach", "chopped spinach"},
		{"1/2 tsp salt", "salt"},
		{"1 can of tuna", "tuna"},
		{"can of tuna", "can of tuna"},
		{"3 eggs", "eggs"},
		{"salt", "salt"},
		{"  olive oil  ", "olive oil"},
		{"2", "2"},
	}
	for _, c := range cases {
		if got := StripQuantity(c.in); got != c.want {
			t.Errorf("StripQuantity(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Whole-Wheat Pasta!", "whole wheat pasta"},
		{"  Greek   Yogurt ", "greek yogurt"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokenizeDropsDescriptors(t *testing.T) {
	got := Tokenize("fresh chopped baby spinach")
	want := []string{"baby", "spinach"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestNormalizeIngredient(t *testing.T) {
	if got := NormalizeIngredient("2 cups Whole Milk"); got != "whole milk" {
		t.Errorf("NormalizeIngredient = %q, want %q", got, "whole milk")
	}
}
