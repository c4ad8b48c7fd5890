package bank_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkweon/txscreen/internal/importer/bank"
	"github.com/jkweon/txscreen/internal/record"
)

func TestParse_FullProfile(t *testing.T) {
	input := strings.Join([]string{
		"거래내역 조회 결과",
		"은행명,계좌번호,거래일자,거래시간,입금액,출금액,적요,거래점,취소여부",
		"국민은행,110-234-567890,2025-03-02,14:05:33,0,\"1,200,000\",이체 김철수,강남지점,",
		"국민은행,110-234-567890,2025.03.03,09:12:00,\"50,000\",0,급여,본점,취소",
		"합계,,,,,,,,",
	}, "\n")

	p := bank.NewParser()
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2, "footer and preamble rows are skipped")

	assert.Equal(t, "국민은행", rows[0].BankName)
	assert.Equal(t, "110-234-567890", rows[0].AccountNo)
	assert.Equal(t, "2025-03-02", rows[0].Date)
	assert.Equal(t, "14:05:33", rows[0].Time)
	assert.Equal(t, int64(0), rows[0].Deposit)
	assert.Equal(t, int64(1_200_000), rows[0].Withdrawal)
	assert.Equal(t, "이체 김철수", rows[0].Memo)
	assert.Equal(t, "강남지점", rows[0].Counterparty)
	assert.Equal(t, record.CancelNone, rows[0].Cancel)

	assert.Equal(t, "2025-03-03", rows[1].Date, "dotted dates are normalized")
	assert.Equal(t, int64(50_000), rows[1].Deposit)
	assert.Equal(t, record.CancelCancelled, rows[1].Cancel)
}

func TestParse_SimpleProfile(t *testing.T) {
	input := strings.Join([]string{
		"계좌번호,거래일,맡기신금액,찾으신금액,내용,거래점명",
		"352-1111,20250302,0,300000,ATM출금,서초지점",
	}, "\n")

	p := bank.NewParser()
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Empty(t, rows[0].BankName, "profile without a bank column yields empty")
	assert.Equal(t, "2025-03-02", rows[0].Date)
	assert.Equal(t, int64(300_000), rows[0].Withdrawal)
	assert.Equal(t, "ATM출금", rows[0].Memo)
}

func TestParse_MalformedAmountBecomesZero(t *testing.T) {
	input := strings.Join([]string{
		"은행명,계좌번호,거래일자,거래시간,입금액,출금액,적요,거래점,취소여부",
		"국민은행,110-234,2025-03-02,,없음,500000원,수수료,,",
	}, "\n")

	p := bank.NewParser()
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(0), rows[0].Deposit, "non-numeric amount degrades to zero")
	assert.Equal(t, int64(500_000), rows[0].Withdrawal, "trailing 원 suffix is accepted")
}

func TestParse_NoMatchingFormat(t *testing.T) {
	input := "foo,bar\n1,2\n"

	p := bank.NewParser()
	_, err := p.Parse(strings.NewReader(input))
	assert.Error(t, err)
}
