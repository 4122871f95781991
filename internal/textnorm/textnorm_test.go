package textnorm

import "testing"

func TestCleanStr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "fooBar123", "fooBar123"},
		{"brackets removed", "Hello ([world])", "Hello world"},
		{"hyphen split", "{hello-world}", "hello world"},
		{"separators removed", "St. Mary's Church, Oxford: a history; vol.", "St Mary's Church Oxford a history vol"},
		{"deletion before swap", "a.-b", "a b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanStr(tt.in); got != tt.want {
				t.Fatalf("CleanStr(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanStrIdempotent(t *testing.T) {
	for _, in := range []string{"Hello ([world])", "{hello-world}", "U.S. Route 66"} {
		once := CleanStr(in)
		if twice := CleanStr(once); twice != once {
			t.Fatalf("CleanStr not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNumbersToWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9th", "ninth"},
		{"18", "eighteen"},
		{"2019", "twenty nineteen"},
		{"1905", "nineteen oh five"},
		{"21st", "twenty first"},
		{"3rd", "third"},
		{"22nd", "twenty second"},
		{"123", "one hundred and twenty three"},
		{"turtle", "turtle"},
		{"th", "th"},
		{"4x4", "4x4"},
		{"9TH", "9TH"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NumbersToWords(tt.in); got != tt.want {
			t.Errorf("NumbersToWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumbersToWordsFailureYieldsSentinel(t *testing.T) {
	for _, in := range []string{"99999999999999999999", "٣", "٣rd"} {
		got := NumbersToWords(in)
		if got != InvalidStresses {
			t.Fatalf("NumbersToWords(%q) = %q, want sentinel", in, got)
		}
		if len(got) <= 8 {
			t.Fatalf("sentinel must be longer than 8 symbols, got %d", len(got))
		}
	}
}

func TestExpandNumeralReportsNumeric(t *testing.T) {
	if _, numeric, err := ExpandNumeral("Ninja"); numeric || err != nil {
		t.Fatalf("expected plain word to pass through, numeric=%v err=%v", numeric, err)
	}
	words, numeric, err := ExpandNumeral("1984")
	if err != nil || !numeric {
		t.Fatalf("expected numeric conversion, numeric=%v err=%v", numeric, err)
	}
	if words != "nineteen eighty four" {
		t.Fatalf("unexpected words %q", words)
	}
	if _, numeric, err := ExpandNumeral("99999999999999999999"); !numeric || err == nil {
		t.Fatalf("expected numeric failure, numeric=%v err=%v", numeric, err)
	}
}
