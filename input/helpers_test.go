package input

import (
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// assertEvents fails the test when got and want differ, dumping both.
func assertEvents(t *testing.T, got, want []Event) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("events mismatch\ngot:  %v\nwant: %v\n%s", got, want, spew.Sdump(got))
	}
}

func batch(events ...Event) []Event { return events }
