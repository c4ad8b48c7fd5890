package lookup_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkweon/txscreen/internal/lookup"
)

func TestEnsureDefaults_Appended(t *testing.T) {
	entries := lookup.EnsureDefaults(nil)
	require.Len(t, entries, 2)

	assert.Equal(t, lookup.ClassExcluded, entries[0].Class)
	assert.True(t, entries[0].Weight.Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, lookup.ClassLateNightClosed, entries[1].Class)
	assert.True(t, entries[1].Weight.Equal(decimal.RequireFromString("0.5")))
}

func TestEnsureDefaults_RepairsDriftedWeight(t *testing.T) {
	entries := []lookup.Entry{
		{Class: "일반음식점", Weight: decimal.RequireFromString("5.0"), Code: "552201"},
		{Class: lookup.ClassExcluded, Weight: decimal.RequireFromString("9.9")},
	}

	entries = lookup.EnsureDefaults(entries)
	require.Len(t, entries, 3)

	assert.True(t, entries[1].Weight.Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, lookup.ClassLateNightClosed, entries[2].Class)
}

func TestBuildIndex(t *testing.T) {
	entries := []lookup.Entry{
		{Class: "일반음식점", Code: "552201/552202"},
		{Class: "유흥주점", Code: "552203"},
		{Class: "중복시도", Code: "552201"}, // first association wins
		{Class: "소매업", Code: " 521001.0 "},
	}

	idx := lookup.BuildIndex(entries)

	assert.Equal(t, "일반음식점", idx["552201"].Class)
	assert.Equal(t, "일반음식점", idx["552202"].Class)
	assert.Equal(t, "유흥주점", idx["552203"].Class)
	assert.Equal(t, "소매업", idx["521001"].Class)

	_, ok := idx[""]
	assert.False(t, ok)
}
