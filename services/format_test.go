package services

import "testing"

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "£0.00"},
		{"small amount", 42.5, "£42.50"},
		{"thousands grouping", 12345.67, "£12,345.67"},
		{"millions grouping", 1234567.89, "£1,234,567.89"},
		{"exactly one thousand", 1000, "£1,000.00"},
		{"rounds to two decimals", 99.999, "£100.00"},
		{"negative amount", -1500.5, "-£1,500.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatGBP(tt.amount)
			if got != tt.want {
				t.Errorf("FormatGBP(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatEUR(t *testing.T) {
	if got := FormatEUR(12345.67); got != "€12,345.67" {
		t.Errorf("FormatEUR(12345.67) = %q, want €12,345.67", got)
	}
	if got := FormatEUR(-5); got != "-€5.00" {
		t.Errorf("FormatEUR(-5) = %q, want -€5.00", got)
	}
}
