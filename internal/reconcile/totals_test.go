package reconcile

import "testing"

func TestSum(t *testing.T) {
	lines := []*Line{
		NewLineFromValues("红毛", "22", "325", "3.575", "15030", "53732"),
		NewLineFromValues("鸡胗", "", "100", "1.2", "", "8000"),
		NewLineFromValues("", "", "", "", "", "x"), // unparsable counts as zero
	}
	got := Sum(lines)
	if got.Qty != 425 {
		t.Errorf("qty = %v, want 425", got.Qty)
	}
	if got.Weight != 4.775 {
		t.Errorf("weight = %v, want 4.775", got.Weight)
	}
	if got.Amount != 61732 {
		t.Errorf("amount = %v, want 61732", got.Amount)
	}
}

func TestSumIgnoresRowsBeyondCapacity(t *testing.T) {
	lines := make([]*Line, 0, MaxLines+2)
	for i := 0; i < MaxLines+2; i++ {
		lines = append(lines, NewLineFromValues("", "", "1", "", "", "10"))
	}
	got := Sum(lines)
	if got.Qty != MaxLines {
		t.Errorf("qty = %v, want %d", got.Qty, MaxLines)
	}
}

func TestTotalsLine(t *testing.T) {
	tl := Totals{Qty: 325, Weight: 3.575, Amount: 53732.25}
	want := "总件数：325    总吨位：3.575    总价格：53732"
	if got := tl.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestSummaryPrefersUserText(t *testing.T) {
	tl := Totals{Qty: 325, Weight: 3.575, Amount: 53732}
	if got := tl.Summary("自提"); got != "自提" {
		t.Errorf("user summary overwritten: %q", got)
	}
	want := "共325件，3.575吨，合计53732元"
	if got := tl.Summary("  "); got != want {
		t.Errorf("default summary = %q, want %q", got, want)
	}
}
