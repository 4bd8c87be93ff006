package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Small amount", 12.5, "$12.50"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
		{"Exactly one thousand", 1000, "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Currency(tt.input); result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if result := Percent(0.0725); result != "7.25%" {
		t.Errorf("Percent(0.0725) = %q, expected 7.25%%", result)
	}
}

func TestPerKwh(t *testing.T) {
	if result := PerKwh(0.1545); result != "$0.1545/kWh" {
		t.Errorf("PerKwh(0.1545) = %q, expected $0.1545/kWh", result)
	}
}
