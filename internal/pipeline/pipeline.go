// Package pipeline runs the full screening pass: schema merge, keyword
// classification, industry-code classification, and the risk cascade, in
// that order. Each stage reads fields the previous stage wrote, so the
// order is fixed. The pass is a single-threaded batch transform with no
// caching: the rule and lookup tables are externally edited, so they are
// re-loaded fresh on every run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/jkweon/txscreen/internal/classify"
	"github.com/jkweon/txscreen/internal/lookup"
	"github.com/jkweon/txscreen/internal/merge"
	"github.com/jkweon/txscreen/internal/record"
	"github.com/jkweon/txscreen/internal/risk"
	"github.com/jkweon/txscreen/internal/rule"
)

// RuleSource provides the classification rule table.
type RuleSource interface {
	ListRules(ctx context.Context) ([]rule.Rule, error)
}

// LookupSource provides the industry lookup table, synthetic entries
// included.
type LookupSource interface {
	LoadEntries(ctx context.Context) ([]lookup.Entry, error)
}

type Pipeline struct {
	rules  RuleSource
	lookup LookupSource
}

func New(rules RuleSource, lookupSrc LookupSource) *Pipeline {
	return &Pipeline{rules: rules, lookup: lookupSrc}
}

// Run merges the source batches into canonical records and enriches them in
// place. The returned records are not re-read as input; callers own them.
func (p *Pipeline) Run(ctx context.Context, banks []merge.BankRow, cards []merge.CardRow) ([]*record.Record, error) {
	rules, err := p.rules.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	entries, err := p.lookup.LoadEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading industry entries: %w", err)
	}

	entries = lookup.EnsureDefaults(entries)

	records := merge.Merge(banks, cards)

	classify.ByKeyword(records, rules)
	classify.ByIndustryCode(records, lookup.BuildIndex(entries))
	risk.Apply(records)

	return records, nil
}
