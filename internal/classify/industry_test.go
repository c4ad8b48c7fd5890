package classify_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jkweon/txscreen/internal/classify"
	"github.com/jkweon/txscreen/internal/lookup"
	"github.com/jkweon/txscreen/internal/record"
)

func TestByIndustryCode(t *testing.T) {
	idx := lookup.BuildIndex([]lookup.Entry{
		{Class: "일반음식점", Weight: decimal.RequireFromString("5.0"), Code: "552201"},
	})

	records := []*record.Record{
		{IndustryCode: "552201"},
		{IndustryCode: "999999"},
		{IndustryCode: ""},
	}

	classify.ByIndustryCode(records, idx)

	assert.Equal(t, "일반음식점", records[0].IndustryClass)
	assert.True(t, records[0].RiskScore.Equal(decimal.NewFromInt(5)),
		"matched industry code flags the record with the sentinel score")

	assert.Empty(t, records[1].IndustryClass)
	assert.True(t, records[1].RiskScore.IsZero(),
		"miss scores 0, the floor is applied later by the cascade")

	assert.Empty(t, records[2].IndustryClass)
	assert.True(t, records[2].RiskScore.IsZero())
}

func TestByIndustryCode_ExactMatchOnly(t *testing.T) {
	idx := lookup.BuildIndex([]lookup.Entry{
		{Class: "일반음식점", Code: "552201"},
	})

	records := []*record.Record{{IndustryCode: "55220"}}
	classify.ByIndustryCode(records, idx)

	assert.Empty(t, records[0].IndustryClass, "prefix of a known code must not match")
	assert.True(t, records[0].RiskScore.IsZero())
}
