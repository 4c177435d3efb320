package category

import (
	"testing"

	"kaidan-backend/internal/models"
)

func productTable() []models.Product {
	return []models.Product{
		{Name: "A", Category: Poultry},
		{Name: "B", Category: Byproduct},
		{Name: "C", Category: ""},
	}
}

func items(names ...string) []models.SlipItem {
	out := make([]models.SlipItem, 0, len(names))
	for _, n := range names {
		out = append(out, models.SlipItem{Name: n})
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		items    []models.SlipItem
		want     string
	}{
		{"explicit selector wins", Byproduct, items("A"), Byproduct},
		{"both categories is mixed", Auto, items("A", "B"), Mixed},
		{"all matched byproduct", Auto, items("B"), Byproduct},
		{"all matched poultry", Auto, items("A"), Poultry},
		{"partial byproduct dominates", Auto, items("B", "unknown"), Byproduct},
		{"partial poultry", Auto, items("A", "unknown"), Poultry},
		{"all unmatched defaults to poultry", Auto, items("x", "y"), Poultry},
		{"no named rows defaults to poultry", Auto, items("", ""), Poultry},
		{"uncategorized match defaults to poultry", Auto, items("C"), Poultry},
		{"empty selector behaves as auto", "", items("A", "B"), Mixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.selector, tt.items, productTable()); got != tt.want {
				t.Errorf("Resolve(%q, %v) = %q, want %q", tt.selector, tt.items, got, tt.want)
			}
		})
	}
}
