package timeutil

import (
	"testing"
	"time"
)

func TestParseDateISO(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025.1.3", "2025-01-03"},
		{"2025/1/3", "2025-01-03"},
		{"2025-01-03", "2025-01-03"},
		{" 2025.12.31 ", "2025-12-31"},
		{"2025.1", ""},
		{"not a date", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ParseDateISO(tt.in); got != tt.want {
			t.Errorf("ParseDateISO(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-03", "2025.1.3"},
		{"2025.1.3", "2025.1.3"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := FormatDateInput(tt.in); got != tt.want {
			t.Errorf("FormatDateInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		months int
		want   string
	}{
		{"plain shift back", "2025-05-15", -3, "2025-02-15"},
		{"day clamped to short month", "2025-03-31", -1, "2025-02-28"},
		{"leap february", "2024-01-31", 1, "2024-02-29"},
		{"year boundary", "2025-01-10", -1, "2024-12-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := time.ParseInLocation(ISOLayout, tt.from, CST)
			if err != nil {
				t.Fatal(err)
			}
			if got := AddMonths(from, tt.months).Format(ISOLayout); got != tt.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.from, tt.months, got, tt.want)
			}
		})
	}
}

func TestQuarterRange(t *testing.T) {
	start, end := QuarterRange(2025, 2)
	if start.Format(ISOLayout) != "2025-04-01" || end.Format(ISOLayout) != "2025-06-30" {
		t.Errorf("QuarterRange(2025, 2) = %s..%s", start.Format(ISOLayout), end.Format(ISOLayout))
	}
}
