// Package risk evaluates the eight-tier risk indicator cascade over a batch
// of classified records. Tiers run strictly in order 1→8; each hit
// unconditionally overwrites the risk keyword, classification, and score
// set by any earlier tier. There is no "higher score wins" comparison.
package risk

import (
	"strings"

	"github.com/jkweon/txscreen/internal/record"
	"github.com/jkweon/txscreen/internal/textnorm"
)

// Apply scores every record in place. Scores below the floor are lifted to
// 0.1 before tier evaluation, which preserves the industry-code sentinel a
// previous stage may have set; tiers then overwrite whatever they hit. The
// closing pass re-applies the floor so no record leaves below 0.1.
func Apply(records []*record.Record) {
	for _, rec := range records {
		clampFloor(rec)
	}

	counts := repeatCounts(records)

	for _, rec := range records {
		text := searchText(rec)

		for i := range tiers {
			t := &tiers[i]

			kw, hit := evaluate(t, rec, text, counts)
			if hit {
				rec.RiskKeyword = kw
				rec.RiskClass = t.label
				rec.RiskScore = t.score
			}
		}
	}

	for _, rec := range records {
		clampFloor(rec)
	}
}

func clampFloor(rec *record.Record) {
	if rec.RiskScore.LessThan(record.ScoreFloor) {
		rec.RiskScore = record.ScoreFloor
	}
}

// repeatCounts groups withdrawal-only records at the tier-2 threshold by
// their matched keyword. An empty keyword is not a usable counterparty
// signal and never groups.
func repeatCounts(records []*record.Record) map[string]int {
	threshold := tiers[1].threshold

	counts := make(map[string]int)

	for _, rec := range records {
		if rec.Keyword == "" {
			continue
		}

		if rec.Deposit <= 0 && rec.Withdrawal >= threshold {
			counts[rec.Keyword]++
		}
	}

	return counts
}

// searchText builds the text tiers 2–8 search: category, matched keyword,
// and description concatenated, normalized, with repeated whitespace tokens
// dropped so a term appearing in both category and description is stored
// once in the risk keyword.
func searchText(rec *record.Record) string {
	norm := textnorm.Normalize(rec.Category + " " + rec.Keyword + " " + rec.Description)

	seen := make(map[string]struct{})

	var tokens []string

	for _, tok := range strings.Fields(norm) {
		if _, ok := seen[tok]; ok {
			continue
		}

		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	return strings.Join(tokens, " ")
}

func evaluate(t *tier, rec *record.Record, text string, counts map[string]int) (string, bool) {
	if !amountMatch(t, rec) {
		return "", false
	}

	switch t.number {
	case 1:
		// Threshold alone, no keyword list.
		return "", true
	case 2:
		if rec.Keyword != "" && counts[rec.Keyword] >= tier2MinCount {
			return rec.Keyword, true
		}

		return "", false
	}

	if t.category != "" && strings.Contains(rec.Category, t.category) {
		return t.category, true
	}

	return keywordMatch(t.keywords, text)
}

func amountMatch(t *tier, rec *record.Record) bool {
	switch t.direction {
	case eitherSide:
		return rec.Deposit >= t.threshold || rec.Withdrawal >= t.threshold
	case withdrawalAny:
		return rec.Withdrawal >= t.threshold
	case withdrawalOnly:
		return rec.Withdrawal >= t.threshold && rec.Deposit <= 0
	}

	return false
}

// keywordMatch returns the first term occurring in the text whose exclusion
// list does not also occur there.
func keywordMatch(keywords []keyword, text string) (string, bool) {
	for _, kw := range keywords {
		if !strings.Contains(text, kw.term) {
			continue
		}

		if excluded(kw.exclusions, text) {
			continue
		}

		return kw.term, true
	}

	return "", false
}

func excluded(exclusions []string, text string) bool {
	for _, ex := range exclusions {
		if strings.Contains(text, ex) {
			return true
		}
	}

	return false
}
