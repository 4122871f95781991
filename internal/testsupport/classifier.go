package testsupport

import (
	"testing"

	"wikiturtles/internal/meter"
	"wikiturtles/internal/phonetic"
)

// Classifier returns a classifier over the default rules and the embedded
// seed dictionary.
func Classifier(t testing.TB) *meter.Classifier {
	t.Helper()

	dict, err := phonetic.Embedded()
	if err != nil {
		t.Fatalf("phonetic.Embedded: %v", err)
	}
	return meter.NewClassifier(meter.MustDefaultRules(), dict)
}
