// Package rule models the user-editable classification rule table.
// Rules carry a fixed rule-class tag, a slash-delimited keyword set, and a
// resulting category. The table is externally edited and re-loaded fresh on
// every pipeline run; a rule is identified by its full (class, keywords,
// category) triple, there is no surrogate id.
package rule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Class is the fixed category tag of a classification rule.
type Class string

const (
	ClassPreprocess       Class = "preprocess"
	ClassPostprocess      Class = "postprocess"
	ClassAccountCategory  Class = "account_category"
	ClassIndustryCategory Class = "industry_category"
	ClassVirtualAsset     Class = "virtual_asset"
	ClassSecurities       Class = "securities"
	ClassOverseasRemit    Class = "overseas_remit"
	ClassLateNight        Class = "late_night"
	ClassLoanBroker       Class = "loan_broker"
	ClassCashHandling     Class = "cash_handling"
)

var validClasses = map[Class]struct{}{
	ClassPreprocess:       {},
	ClassPostprocess:      {},
	ClassAccountCategory:  {},
	ClassIndustryCategory: {},
	ClassVirtualAsset:     {},
	ClassSecurities:       {},
	ClassOverseasRemit:    {},
	ClassLateNight:        {},
	ClassLoanBroker:       {},
	ClassCashHandling:     {},
}

var (
	ErrInvalidClass = errors.New("invalid rule class")
	ErrNotFound     = errors.New("rule not found")
)

// ParseClass validates s against the closed rule-class enum. Validation
// happens at the edit boundary only; the pipeline assumes pre-validated
// classes and silently ignores anything it does not filter for.
func ParseClass(s string) (Class, error) {
	c := Class(strings.TrimSpace(s))
	if _, ok := validClasses[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidClass, s)
	}

	return c, nil
}

// Rule is one row of the classification table.
type Rule struct {
	Class     Class
	Keywords  string // one or more keywords joined by "/"
	Category  string
	CreatedAt time.Time
}

// Key identifies a rule for update and delete.
type Key struct {
	Class    Class
	Keywords string
	Category string
}

// Key returns the identity triple of the rule.
func (r Rule) Key() Key {
	return Key{Class: r.Class, Keywords: r.Keywords, Category: r.Category}
}

// KeywordList splits the slash-delimited keyword set into individual
// keywords. Empty segments are dropped, so a rule with an empty keyword set
// yields no keywords and acts as a no-op.
func (r Rule) KeywordList() []string {
	parts := strings.Split(r.Keywords, "/")

	kws := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kws = append(kws, p)
		}
	}

	return kws
}

// FilterByClass returns the rules carrying the given class tag, preserving
// table order. Unrecognized classes are simply left out.
func FilterByClass(rules []Rule, class Class) []Rule {
	var out []Rule

	for _, r := range rules {
		if r.Class == class {
			out = append(out, r)
		}
	}

	return out
}
