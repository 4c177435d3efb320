// Package reconcile implements per-row derivation of the sales-slip
// numeric fields. Each row carries five value fields; weight, price and
// amount can be back-solved from the others through the two defining
// relations:
//
//	weight = spec * count / 2000   (spec is jin per unit, 2000 jin per ton)
//	amount = price * weight
//
// A field typed by the user is never recomputed; a field the engine wrote
// stays recomputable until the user overwrites or clears it.
package reconcile

import (
	"math"
	"strconv"
	"strings"

	"kaidan-backend/internal/numeric"
)

// Origin tracks who last wrote a field.
type Origin int

const (
	// OriginUnset marks a field nobody has written.
	OriginUnset Origin = iota
	// OriginManual marks a field explicitly typed by the user.
	OriginManual
	// OriginAuto marks a field last written by the engine.
	OriginAuto
)

// Field is one editable cell of a slip row.
type Field struct {
	Text   string
	Origin Origin
}

// FieldName identifies a cell within a Line.
type FieldName string

const (
	FieldProduct FieldName = "name"
	FieldSpec    FieldName = "spec"
	FieldCount   FieldName = "count"
	FieldWeight  FieldName = "weight"
	FieldPrice   FieldName = "price"
	FieldAmount  FieldName = "amount"
)

// Line is one slip row under edit.
type Line struct {
	Product Field
	Spec    Field
	Count   Field
	Weight  Field
	Price   Field
	Amount  Field
}

// NewLine returns an empty row.
func NewLine() *Line {
	return &Line{}
}

// NewLineFromValues builds a row from already-entered field texts, marking
// every non-empty derived field manual. This is the finalize/import path:
// whatever the caller supplied is authoritative, blanks stay derivable.
func NewLineFromValues(name, spec, count, weight, price, amount string) *Line {
	l := NewLine()
	l.SetInput(FieldProduct, name)
	l.SetInput(FieldSpec, spec)
	l.SetInput(FieldCount, count)
	l.SetInput(FieldWeight, weight)
	l.SetInput(FieldPrice, price)
	l.SetInput(FieldAmount, amount)
	return l
}

// SetInput records a user edit to one field and applies the re-arm rules:
// typing into weight/price/amount marks that field manual (clearing it
// resets the mark); editing spec or count re-arms weight and amount for
// recomputation unless they are manual; editing price re-arms amount.
func (l *Line) SetInput(field FieldName, text string) {
	switch field {
	case FieldProduct:
		l.Product.Text = text
	case FieldSpec:
		l.Spec.Text = text
		l.rearm(&l.Weight)
		l.rearm(&l.Amount)
	case FieldCount:
		l.Count.Text = text
		l.rearm(&l.Weight)
		l.rearm(&l.Amount)
	case FieldWeight:
		setDirect(&l.Weight, text)
	case FieldPrice:
		setDirect(&l.Price, text)
		l.rearm(&l.Amount)
	case FieldAmount:
		setDirect(&l.Amount, text)
	}
}

func setDirect(f *Field, text string) {
	f.Text = text
	if strings.TrimSpace(text) != "" {
		f.Origin = OriginManual
	} else {
		f.Origin = OriginUnset
	}
}

func (l *Line) rearm(f *Field) {
	if f.Origin != OriginManual {
		f.Origin = OriginAuto
	}
}

// Recalc fills whichever of weight/price/amount are free to auto-fill.
// A field is free iff its text is empty or the engine wrote it last.
// Unresolvable fields are left blank; Recalc never fails.
func (l *Line) Recalc() {
	nan := math.NaN()
	spec := numeric.ParseFloat(l.Spec.Text, nan)
	count := numeric.ParseFloat(l.Count.Text, nan)

	// An auto value is a derived echo, not an input: ignore it so stale
	// derivations cannot feed the next round.
	weight := nan
	if l.Weight.Origin != OriginAuto {
		weight = numeric.ParseFloat(l.Weight.Text, nan)
	}
	price := nan
	if l.Price.Origin != OriginAuto {
		price = numeric.ParseFloat(l.Price.Text, nan)
	}
	amount := nan
	if l.Amount.Origin != OriginAuto {
		amount = numeric.ParseFloat(l.Amount.Text, nan)
	}

	calcWeight := weight
	if !finite(calcWeight) && finite(spec) && finite(count) {
		calcWeight = spec * count / 2000
	}
	calcAmount := amount
	if !finite(calcAmount) && finite(price) && finite(calcWeight) {
		calcAmount = price * calcWeight
	}
	calcPrice := price
	if !finite(calcPrice) && finite(calcAmount) && finite(calcWeight) && calcWeight != 0 {
		calcPrice = calcAmount / calcWeight
	}

	if l.freeToFill(&l.Weight) && finite(calcWeight) {
		l.Weight.Text = strconv.FormatFloat(calcWeight, 'f', 3, 64)
		l.Weight.Origin = OriginAuto
	}
	if l.freeToFill(&l.Price) && finite(calcPrice) {
		l.Price.Text = numeric.FormatDecimal(calcPrice)
		l.Price.Origin = OriginAuto
	}
	if l.freeToFill(&l.Amount) && finite(calcAmount) {
		l.Amount.Text = strconv.FormatInt(int64(math.Round(calcAmount)), 10)
		l.Amount.Origin = OriginAuto
	}
}

func (l *Line) freeToFill(f *Field) bool {
	return strings.TrimSpace(f.Text) == "" || f.Origin == OriginAuto
}

// Empty reports whether no field of the row holds any text.
func (l *Line) Empty() bool {
	for _, f := range []Field{l.Product, l.Spec, l.Count, l.Weight, l.Price, l.Amount} {
		if strings.TrimSpace(f.Text) != "" {
			return false
		}
	}
	return true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
