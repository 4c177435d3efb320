package services

import (
	"testing"

	"kaidan-backend/internal/models"
)

func TestSlipFilename(t *testing.T) {
	inv := &models.Invoice{
		InvoiceNo:   102,
		Category:    "鸡",
		Date:        "2025.3.1",
		Location:    "成都",
		Customer:    "刘正彬",
		TotalQty:    300,
		TotalWeight: 3.465,
		TotalAmount: 41580,
	}
	want := "102-鸡-2025.3.1-成都-刘正彬-300件-3.465吨-41580元.pdf"
	if got := slipFilename(inv); got != want {
		t.Errorf("slipFilename = %q, want %q", got, want)
	}
}

func TestSlipFilenameSkipsBlankParts(t *testing.T) {
	inv := &models.Invoice{InvoiceNo: 7, TotalQty: 10, TotalWeight: 0.110, TotalAmount: 1320}
	want := "7-10件-0.110吨-1320元.pdf"
	if got := slipFilename(inv); got != want {
		t.Errorf("slipFilename = %q, want %q", got, want)
	}
}

func TestSlipFilenameSanitizesReservedCharacters(t *testing.T) {
	inv := &models.Invoice{InvoiceNo: 1, Customer: `刘/正*彬?`, Date: "2025.3.1"}
	got := slipFilename(inv)
	for _, r := range got {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			t.Fatalf("reserved character %q in filename %q", r, got)
		}
	}
}

func TestOptFloat(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"", nil},
		{"   ", nil},
		{"abc", nil},
		{"22", ptr(22.0)},
		{"3.465", ptr(3.465)},
		{"22斤", nil},
		{"1,200", ptr(1200.0)},
		{"-1", ptr(-1.0)},
	}
	for _, tt := range tests {
		got := optFloat(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("optFloat(%q) = %v, want nil", tt.in, *got)
		case tt.want != nil && got == nil:
			t.Errorf("optFloat(%q) = nil, want %v", tt.in, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("optFloat(%q) = %v, want %v", tt.in, *got, *tt.want)
		}
	}
}

func ptr(f float64) *float64 { return &f }
