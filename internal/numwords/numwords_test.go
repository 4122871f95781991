package numwords

import (
	"errors"
	"testing"
)

func TestCardinal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "zero"},
		{"7", "seven"},
		{"18", "eighteen"},
		{"40", "forty"},
		{"99", "ninety nine"},
		{"100", "one hundred"},
		{"123", "one hundred and twenty three"},
		{"1005", "one thousand and five"},
		{"1100", "one thousand one hundred"},
		{"123000", "one hundred and twenty three thousand"},
		{"007", "seven"},
		{"20000", "twenty thousand"},
		{"1000001", "one million and one"},
		{"18446744073709551615", "eighteen quintillion four hundred and forty six quadrillion seven hundred and forty four trillion seventy three billion seven hundred and nine million five hundred and fifty one thousand six hundred and fifteen"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Cardinal(tt.in)
			if err != nil {
				t.Fatalf("Cardinal(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Cardinal(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "first"},
		{"2", "second"},
		{"3", "third"},
		{"4", "fourth"},
		{"9", "ninth"},
		{"12", "twelfth"},
		{"20", "twentieth"},
		{"21", "twenty first"},
		{"100", "one hundredth"},
		{"101", "one hundred and first"},
		{"0", "zeroth"},
	}
	for _, tt := range tests {
		got, err := Ordinal(tt.in)
		if err != nil {
			t.Fatalf("Ordinal(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Ordinal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2019", "twenty nineteen"},
		{"1984", "nineteen eighty four"},
		{"1905", "nineteen oh five"},
		{"1900", "nineteen hundred"},
		{"2005", "two thousand and five"},
		{"2000", "two thousand"},
		{"1000", "one thousand"},
		{"0042", "forty two"},
	}
	for _, tt := range tests {
		got, err := Year(tt.in)
		if err != nil {
			t.Fatalf("Year(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Year(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRejectsBadInput(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrMalformed},
		{"12a", ErrMalformed},
		{"-5", ErrMalformed},
		{"٣", ErrMalformed},
		{"99999999999999999999", ErrOutOfRange},
	}
	for _, tt := range tests {
		if _, err := Cardinal(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("Cardinal(%q) error = %v, want %v", tt.in, err, tt.want)
		}
		if _, err := Ordinal(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("Ordinal(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}
