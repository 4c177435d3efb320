// Package category infers a slip's goods category from its matched
// product rows.
package category

import (
	"strings"

	"kaidan-backend/internal/match"
	"kaidan-backend/internal/models"
)

// The fixed category vocabulary.
const (
	Auto       = "自动"
	Poultry    = "鸡"
	Byproduct  = "鸡副"
	Mixed      = "混合"
)

// Categories lists the selector options in UI order.
var Categories = []string{Auto, Poultry, Byproduct, Mixed}

// Resolve returns the slip category. A non-auto selector is returned
// verbatim. Otherwise every named row is looked up in the product table:
// both categories present means mixed; a uniform full match keeps its
// category; on partial matches byproduct presence dominates; rows with
// no names or no matches default to poultry.
func Resolve(selector string, items []models.SlipItem, products []models.Product) string {
	sel := strings.TrimSpace(selector)
	if sel != "" && sel != Auto {
		return sel
	}

	var hasByproduct, hasPoultry bool
	matched, total := 0, 0
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}
		total++
		p := match.Product(name, products)
		if p == nil {
			continue
		}
		matched++
		switch strings.TrimSpace(p.Category) {
		case Byproduct:
			hasByproduct = true
		case Poultry:
			hasPoultry = true
		}
	}

	if hasByproduct && hasPoultry {
		return Mixed
	}
	if total > 0 && matched == total {
		if hasByproduct {
			return Byproduct
		}
		if hasPoultry {
			return Poultry
		}
	}
	if hasByproduct {
		return Byproduct
	}
	// Poultry is the business default for ambiguous or unmatched rows.
	return Poultry
}
