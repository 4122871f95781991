package meter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"wikiturtles/internal/meter"
)

func TestNewRulesRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		set  meter.RuleSet
	}{
		{"banned word without letters", meter.RuleSet{BannedWords: []string{"123"}}},
		{"blank phrase", meter.RuleSet{BannedPhrases: []string{"   "}}},
		{"override without word", meter.RuleSet{Overrides: []meter.Override{{Stresses: "10"}}}},
		{"override with bad stresses", meter.RuleSet{Overrides: []meter.Override{{Word: "HD", Stresses: "1x"}}}},
		{"override with empty stresses", meter.RuleSet{Overrides: []meter.Override{{Word: "HD"}}}},
		{"bad pattern", meter.RuleSet{AcceptedPattern: "[10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := meter.NewRules(tt.set); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRulesAccepts(t *testing.T) {
	rules := meter.MustDefaultRules()
	for _, stresses := range []string{"12101010", "10101010", "20101010", "22101010", "22202020"} {
		if !rules.Accepts(stresses) {
			t.Errorf("expected %q to be accepted", stresses)
		}
	}
	for _, stresses := range []string{"", "1010", "101010101", "01010101", "11101010", "10111010", "10101011", "12101210", "1111111111"} {
		if rules.Accepts(stresses) {
			t.Errorf("expected %q to be rejected", stresses)
		}
	}
}

func TestRulesDefaults(t *testing.T) {
	rules := meter.MustDefaultRules()
	if rules.AcceptedPattern() != meter.DefaultAcceptedPattern {
		t.Fatalf("unexpected pattern %q", rules.AcceptedPattern())
	}
	want := []meter.Override{{Word: "HD", Stresses: "10"}, {Word: "U.S.", Stresses: "10"}}
	if diff := cmp.Diff(want, rules.Overrides()); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRulesKeepsFirstDuplicateOverride(t *testing.T) {
	rules, err := meter.NewRules(meter.RuleSet{Overrides: []meter.Override{
		{Word: "HD", Stresses: "10"},
		{Word: "hd", Stresses: "01"},
	}})
	if err != nil {
		t.Fatalf("NewRules failed: %v", err)
	}
	if got := rules.Overrides(); len(got) != 1 || got[0].Stresses != "10" {
		t.Fatalf("unexpected overrides %+v", got)
	}
}
