package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkweon/txscreen/internal/merge"
	"github.com/jkweon/txscreen/internal/record"
)

func TestMerge_BankRow(t *testing.T) {
	banks := []merge.BankRow{
		{
			BankName:     "국민은행",
			AccountNo:    "123-45-6789",
			Date:         "2025-03-02",
			Time:         "14:05:33",
			Deposit:      0,
			Withdrawal:   250_000,
			Cancel:       record.CancelCancelled,
			Memo:         "이체 김철수",
			Counterparty: "강남지점",
		},
	}

	records := merge.Merge(banks, nil)
	require.Len(t, records, 1)

	r := records[0]
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "국민은행", r.Institution)
	assert.Equal(t, "123-45-6789", r.AccountNo)
	assert.Equal(t, int64(0), r.Deposit)
	assert.Equal(t, int64(250_000), r.Withdrawal)
	assert.Equal(t, record.CancelCancelled, r.Cancel)
	assert.Equal(t, "이체 김철수", r.Description, "memo outranks counterparty")
	assert.Equal(t, record.CategoryUncategorized, r.Category)
}

func TestMerge_BankDescriptionFallsBackToCounterparty(t *testing.T) {
	banks := []merge.BankRow{
		{BankName: "국민은행", Memo: "  ", Counterparty: "강남지점"},
	}

	records := merge.Merge(banks, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "강남지점", records[0].Description)
}

func TestMerge_CardSignSplit(t *testing.T) {
	type testCase struct {
		name           string
		row            merge.CardRow
		wantDeposit    int64
		wantWithdrawal int64
	}

	tests := []testCase{
		{
			name:           "ChargeRoutesToWithdrawal",
			row:            merge.CardRow{Amount: 30_000},
			wantWithdrawal: 30_000,
		},
		{
			name:        "RefundRoutesToDeposit",
			row:         merge.CardRow{Amount: -30_000},
			wantDeposit: 30_000,
		},
		{
			name: "ZeroAmount",
			row:  merge.CardRow{Amount: 0},
		},
		{
			name:        "CashHandlingPositiveRoutesToDeposit",
			row:         merge.CardRow{Amount: 50_000, Category: "현금처리"},
			wantDeposit: 50_000,
		},
		{
			name:        "CashHandlingNegativeRoutesToDeposit",
			row:         merge.CardRow{Amount: -50_000, Category: "현금처리"},
			wantDeposit: 50_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := merge.Merge(nil, []merge.CardRow{tt.row})
			require.Len(t, records, 1)

			assert.Equal(t, tt.wantDeposit, records[0].Deposit)
			assert.Equal(t, tt.wantWithdrawal, records[0].Withdrawal)
			assert.False(t, records[0].Deposit > 0 && records[0].Withdrawal > 0,
				"deposit and withdrawal must never both be positive")
		})
	}
}

func TestMerge_CardDescriptionChain(t *testing.T) {
	cards := []merge.CardRow{
		{Merchant: "스타벅스 역삼점", Note: "비고", Branch: "역삼동"},
		{Merchant: "", Note: "비고", Branch: "역삼동"},
		{Merchant: "", Note: "", Branch: "역삼동"},
		{Merchant: "", Note: "", Branch: ""},
	}

	records := merge.Merge(nil, cards)
	require.Len(t, records, 4)

	assert.Equal(t, "스타벅스 역삼점", records[0].Description)
	assert.Equal(t, "비고", records[1].Description)
	assert.Equal(t, "역삼동", records[2].Description)
	assert.Equal(t, "", records[3].Description, "missing fields become empty, never absent")
}

func TestMerge_NothingDropped(t *testing.T) {
	banks := []merge.BankRow{{}, {}}
	cards := []merge.CardRow{{}}

	records := merge.Merge(banks, cards)
	assert.Len(t, records, 3, "merger never filters records")
}

func TestMerge_CardCarriesIndustryFields(t *testing.T) {
	cards := []merge.CardRow{
		{BizRegNo: "123-45-67890", IndustryCode: " 552201 ", Category: "일시불"},
	}

	records := merge.Merge(nil, cards)
	require.Len(t, records, 1)

	assert.Equal(t, "123-45-67890", records[0].BizRegNo)
	assert.Equal(t, "552201", records[0].IndustryCode)
	assert.Equal(t, "일시불", records[0].Category)
}
