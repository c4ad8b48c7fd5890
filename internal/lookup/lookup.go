// Package lookup holds the industry classification table: industry codes
// mapped to a classification label and a baseline risk weight. The table is
// externally edited and re-loaded on every pipeline run.
package lookup

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Synthetic entries that must exist regardless of source data.
const (
	ClassExcluded        = "분류제외"
	ClassLateNightClosed = "심야/폐업"
)

var (
	weightExcluded        = decimal.New(1, -1) // 0.1
	weightLateNightClosed = decimal.New(5, -1) // 0.5
)

// Entry is one row of the industry lookup table.
type Entry struct {
	Class    string          // industry classification label
	Weight   decimal.Decimal // baseline risk weight, one fraction digit
	Code     string          // slash-delimited list of numeric industry codes
	SubClass string          // industry sub-classification label
}

// EnsureDefaults inserts or repairs the two synthetic entries. Entries whose
// class matches but whose weight drifted are rewritten; missing entries are
// appended. The input order is otherwise preserved.
func EnsureDefaults(entries []Entry) []Entry {
	defaults := []Entry{
		{Class: ClassExcluded, Weight: weightExcluded},
		{Class: ClassLateNightClosed, Weight: weightLateNightClosed},
	}

	for _, d := range defaults {
		found := false

		for i := range entries {
			if entries[i].Class == d.Class {
				entries[i].Weight = d.Weight
				found = true
			}
		}

		if !found {
			entries = append(entries, d)
		}
	}

	return entries
}

// Index maps a single industry code to its lookup entry.
type Index map[string]Entry

// BuildIndex explodes each entry's slash-delimited code list into individual
// code associations. The first association for a given code wins. Codes are
// trimmed and stripped of a trailing ".0" left behind by spreadsheet floats.
func BuildIndex(entries []Entry) Index {
	idx := make(Index)

	for _, e := range entries {
		for _, code := range strings.Split(e.Code, "/") {
			code = strings.TrimSuffix(strings.TrimSpace(code), ".0")
			if code == "" {
				continue
			}

			if _, ok := idx[code]; !ok {
				idx[code] = e
			}
		}
	}

	return idx
}
