// Package classify assigns categories to canonical records: first by
// user-edited account-category keyword rules, then by exact industry-code
// lookup. Both passes mutate the records in place and never fail; missing
// rules simply leave records at their defaults.
package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/jkweon/txscreen/internal/record"
	"github.com/jkweon/txscreen/internal/rule"
	"github.com/jkweon/txscreen/internal/textnorm"
)

// ByKeyword applies account-category rules to every record. Among all rule
// keywords occurring in the record's normalized description, the longest
// individual keyword determines the category, so the result does not depend
// on rule order. Records no rule matches keep the default category.
func ByKeyword(records []*record.Record, rules []rule.Rule) {
	accountRules := rule.FilterByClass(rules, rule.ClassAccountCategory)

	type match struct {
		keyword  string
		category string
		length   int
	}

	for _, rec := range records {
		rec.Category = record.CategoryOther
		rec.Keyword = ""

		text := textnorm.Normalize(rec.Description)
		if text == "" {
			continue
		}

		var best match

		for _, r := range accountRules {
			for _, kw := range r.KeywordList() {
				kw = textnorm.Normalize(kw)
				if kw == "" || !strings.Contains(text, kw) {
					continue
				}

				// Strictly longer wins; ties keep the earlier match.
				if n := utf8.RuneCountInString(kw); n > best.length {
					best = match{keyword: kw, category: r.Category, length: n}
				}
			}
		}

		if best.length > 0 {
			rec.Category = best.category
			rec.Keyword = best.keyword
		}
	}
}
