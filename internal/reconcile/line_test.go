package reconcile

import "testing"

func editAndRecalc(l *Line, field FieldName, text string) {
	l.SetInput(field, text)
	l.Recalc()
}

func TestWeightDerivedFromSpecAndCount(t *testing.T) {
	l := NewLine()
	editAndRecalc(l, FieldSpec, "22")
	editAndRecalc(l, FieldCount, "325")

	if l.Weight.Text != "3.575" {
		t.Errorf("weight = %q, want 3.575", l.Weight.Text)
	}
	if l.Weight.Origin != OriginAuto {
		t.Errorf("weight origin = %v, want auto", l.Weight.Origin)
	}
}

func TestAmountDerivedFromPriceAndWeight(t *testing.T) {
	l := NewLine()
	editAndRecalc(l, FieldSpec, "22")
	editAndRecalc(l, FieldCount, "325")
	editAndRecalc(l, FieldPrice, "15030")

	// 15030 * 3.575 = 53732.25, rounded to whole yuan
	if l.Amount.Text != "53732" {
		t.Errorf("amount = %q, want 53732", l.Amount.Text)
	}
	if l.Price.Origin != OriginManual {
		t.Errorf("price origin = %v, want manual", l.Price.Origin)
	}
}

func TestPriceBackSolvedFromAmountAndWeight(t *testing.T) {
	l := NewLine()
	editAndRecalc(l, FieldWeight, "2")
	editAndRecalc(l, FieldAmount, "30000")

	if l.Price.Text != "15000" {
		t.Errorf("price = %q, want 15000", l.Price.Text)
	}
	if l.Price.Origin != OriginAuto {
		t.Errorf("price origin = %v, want auto", l.Price.Origin)
	}
}

func TestManualWeightIsNeverRecomputed(t *testing.T) {
	l := NewLine()
	editAndRecalc(l, FieldWeight, "9.9")
	editAndRecalc(l, FieldSpec, "22")
	editAndRecalc(l, FieldCount, "325")

	if l.Weight.Text != "9.9" {
		t.Errorf("weight = %q, manual value must survive spec/count edits", l.Weight.Text)
	}
}

func TestEditingInputsReArmsAutoFields(t *testing.T) {
	l := NewLine()
	editAndRecalc(l, FieldSpec, "22")
	editAndRecalc(l, FieldCount, "325")
	editAndRecalc(l, FieldPrice, "15030")

	// Changing count must refresh the previously-auto weight and amount.
	editAndRecalc(l, FieldCount, "100")
	if l.Weight.Text != "1.100" {
		t.Errorf("weight after count edit = %q, want 1.100", l.Weight.Text)
	}
	if l.Amount.Text != "16533" {
		t.Errorf("amount after count edit = %q, want 16533", l.Amount.Text)
	}
}

func TestClearingManualFieldReleasesIt(t *testing.T) {
	l := NewLine()
	editAndRecalc(l, FieldSpec, "22")
	editAndRecalc(l, FieldCount, "325")
	editAndRecalc(l, FieldWeight, "9.9")
	editAndRecalc(l, FieldWeight, "")

	if l.Weight.Text != "3.575" {
		t.Errorf("weight after clear = %q, want derived 3.575", l.Weight.Text)
	}
}

func TestUnresolvableFieldsStayBlank(t *testing.T) {
	l := NewLine()
	editAndRecalc(l, FieldSpec, "22")
	// count unknown: nothing derivable
	if l.Weight.Text != "" || l.Price.Text != "" || l.Amount.Text != "" {
		t.Errorf("derived fields should stay blank, got weight=%q price=%q amount=%q",
			l.Weight.Text, l.Price.Text, l.Amount.Text)
	}

	editAndRecalc(l, FieldCount, "abc")
	if l.Weight.Text != "" {
		t.Errorf("weight = %q, unparsable count must not derive", l.Weight.Text)
	}
}

func TestNewLineFromValuesDerivesBlanksOnly(t *testing.T) {
	l := NewLineFromValues("红毛", "22", "325", "", "15030", "")
	l.Recalc()

	if l.Weight.Text != "3.575" {
		t.Errorf("weight = %q, want 3.575", l.Weight.Text)
	}
	if l.Amount.Text != "53732" {
		t.Errorf("amount = %q, want 53732", l.Amount.Text)
	}
	if l.Price.Text != "15030" || l.Price.Origin != OriginManual {
		t.Errorf("supplied price must stay untouched, got %q origin %v", l.Price.Text, l.Price.Origin)
	}
}

func TestEmpty(t *testing.T) {
	l := NewLine()
	if !l.Empty() {
		t.Error("fresh line should be empty")
	}
	l.SetInput(FieldProduct, "鸡胗")
	if l.Empty() {
		t.Error("line with a product name is not empty")
	}
}
