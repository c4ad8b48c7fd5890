package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkweon/txscreen/internal/lookup"
	"github.com/jkweon/txscreen/internal/merge"
	"github.com/jkweon/txscreen/internal/pipeline"
	"github.com/jkweon/txscreen/internal/record"
	"github.com/jkweon/txscreen/internal/rule"
)

type staticRules struct {
	rules []rule.Rule
	err   error
	calls int
}

func (s *staticRules) ListRules(context.Context) ([]rule.Rule, error) {
	s.calls++
	return s.rules, s.err
}

type staticLookup struct {
	entries []lookup.Entry
	err     error
	calls   int
}

func (s *staticLookup) LoadEntries(context.Context) ([]lookup.Entry, error) {
	s.calls++
	return s.entries, s.err
}

func TestPipeline_Run(t *testing.T) {
	rules := &staticRules{rules: []rule.Rule{
		{Class: rule.ClassAccountCategory, Keywords: "증권/증권입금", Category: "투기성"},
		{Class: rule.ClassAccountCategory, Keywords: "업비트", Category: "가상자산"},
	}}

	lookups := &staticLookup{entries: []lookup.Entry{
		{Class: "일반음식점", Weight: decimal.RequireFromString("5.0"), Code: "552201"},
	}}

	p := pipeline.New(rules, lookups)

	banks := []merge.BankRow{
		{BankName: "국민은행", AccountNo: "110-234", Date: "2025-03-02",
			Withdrawal: 12_000_000, Memo: "현금인출"},
		{BankName: "국민은행", AccountNo: "110-234", Date: "2025-03-03",
			Deposit: 700_000, Memo: "업비트 입금"},
	}

	cards := []merge.CardRow{
		{Issuer: "신한카드", CardNo: "9410-11", Date: "2025-03-04",
			Amount: 50_000, Category: "현금처리", Merchant: "현금서비스"},
		{Issuer: "신한카드", CardNo: "9410-11", Date: "2025-03-05",
			Amount: 12_000, Merchant: "김밥천국", IndustryCode: "552201"},
	}

	records, err := p.Run(context.Background(), banks, cards)
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Large withdrawal: tier 1.
	assert.True(t, records[0].RiskScore.Equal(decimal.RequireFromString("1.0")))
	assert.Equal(t, "고액출금", records[0].RiskClass)

	// Virtual-asset exchange deposit: classified by keyword, then tier 5.
	assert.Equal(t, "가상자산", records[1].Category)
	assert.Equal(t, "업비트", records[1].Keyword)
	assert.True(t, records[1].RiskScore.Equal(decimal.RequireFromString("3.0")))

	// Cash-handling card row routes to deposit and stays low risk.
	assert.Equal(t, int64(50_000), records[2].Deposit)
	assert.Equal(t, int64(0), records[2].Withdrawal)

	// Industry-coded card row keeps the sentinel: no tier hits it.
	assert.Equal(t, "일반음식점", records[3].IndustryClass)
	assert.True(t, records[3].RiskScore.Equal(decimal.RequireFromString("5.0")))

	// Floor invariant over the whole batch.
	for _, rec := range records {
		assert.True(t, rec.RiskScore.GreaterThanOrEqual(record.ScoreFloor))
	}
}

func TestPipeline_Run_ReloadsTablesEveryRun(t *testing.T) {
	rules := &staticRules{}
	lookups := &staticLookup{}
	p := pipeline.New(rules, lookups)

	for i := 0; i < 3; i++ {
		_, err := p.Run(context.Background(), nil, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, rules.calls, "rule table is re-read on every run")
	assert.Equal(t, 3, lookups.calls)
}

func TestPipeline_Run_NoRulesDegradesToDefaults(t *testing.T) {
	p := pipeline.New(&staticRules{}, &staticLookup{})

	banks := []merge.BankRow{{Memo: "아무거래", Deposit: 1_000}}

	records, err := p.Run(context.Background(), banks, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, record.CategoryOther, records[0].Category)
	assert.True(t, records[0].RiskScore.Equal(record.ScoreFloor))
}

func TestPipeline_Run_RuleSourceError(t *testing.T) {
	p := pipeline.New(&staticRules{err: errors.New("table locked")}, &staticLookup{})

	_, err := p.Run(context.Background(), nil, nil)
	assert.Error(t, err)
}
