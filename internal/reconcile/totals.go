package reconcile

import (
	"fmt"
	"strings"

	"kaidan-backend/internal/numeric"
)

// MaxLines is the slip's row capacity.
const MaxLines = 5

// Totals aggregates count, weight and amount across a slip's rows.
type Totals struct {
	Qty    float64
	Weight float64
	Amount float64
}

// Sum totals up to MaxLines rows, treating unparsable values as zero.
func Sum(lines []*Line) Totals {
	var t Totals
	for i, l := range lines {
		if i >= MaxLines {
			break
		}
		t.Qty += numeric.ParseFloat(l.Count.Text, 0)
		t.Weight += numeric.ParseFloat(l.Weight.Text, 0)
		t.Amount += numeric.ParseFloat(l.Amount.Text, 0)
	}
	return t
}

// Line renders the totals strip shown under the item table.
func (t Totals) Line() string {
	return fmt.Sprintf("总件数：%.0f    总吨位：%.3f    总价格：%.0f", t.Qty, t.Weight, t.Amount)
}

// DefaultSummary synthesizes the slip's summary sentence.
func (t Totals) DefaultSummary() string {
	return fmt.Sprintf("共%.0f件，%.3f吨，合计%.0f元", t.Qty, t.Weight, t.Amount)
}

// Summary returns the user's summary text when present, otherwise the
// synthesized default. A non-empty user summary is never overwritten.
func (t Totals) Summary(userText string) string {
	if strings.TrimSpace(userText) != "" {
		return userText
	}
	return t.DefaultSummary()
}
