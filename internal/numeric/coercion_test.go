package numeric

import "testing"

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fallback float64
		want     float64
	}{
		{"plain", "15030", 0, 15030},
		{"decimal", "3.575", 0, 3.575},
		{"thousands separators", "1,503,0", 0, 15030},
		{"leading and trailing space", " 22 ", 0, 22},
		{"empty", "", -1, -1},
		{"garbage", "abc", -1, -1},
		{"inf text", "Inf", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFloat(tt.text, tt.fallback); got != tt.want {
				t.Errorf("ParseFloat(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fallback int
		want     int
	}{
		{"plain", "325", 0, 325},
		{"fractional tail dropped", "12.9", 0, 12},
		{"empty", "", 7, 7},
		{"garbage", "x1", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInt(tt.text, tt.fallback); got != tt.want {
				t.Errorf("ParseInt(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.575, "3.575"},
		{15030, "15030"},
		{0.5, "0.5"},
		{1.0 / 3, "0.333333"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatDecimal(tt.in); got != tt.want {
			t.Errorf("FormatDecimal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmountCN(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{53732, "5万3732元"},
		{50000, "5万元"},
		{900, "900元"},
		{0, "0元"},
	}
	for _, tt := range tests {
		if got := FormatAmountCN(tt.in); got != tt.want {
			t.Errorf("FormatAmountCN(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
