package card_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkweon/txscreen/internal/importer/card"
)

func TestParse_UsageProfile(t *testing.T) {
	input := strings.Join([]string{
		"카드사,카드번호,이용일자,이용시간,이용금액,이용구분,이용가맹점,비고,가맹점주소,사업자번호,업종코드",
		"신한카드,9410-11**,2025-03-04,21:40:00,\"45,000\",일시불,스타벅스 역삼점,,서울 강남구,123-45-67890,552201",
		"신한카드,9410-11**,2025-03-05,01:02:03,\"500,000\",현금서비스,,,,,",
		"신한카드,9410-11**,2025-03-06,,\"-45,000\",일시불,스타벅스 역삼점,취소환불,,,",
	}, "\n")

	p := card.NewParser()
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "신한카드", rows[0].Issuer)
	assert.Equal(t, "2025-03-04", rows[0].Date)
	assert.Equal(t, int64(45_000), rows[0].Amount)
	assert.Equal(t, "일시불", rows[0].Category)
	assert.Equal(t, "스타벅스 역삼점", rows[0].Merchant)
	assert.Equal(t, "123-45-67890", rows[0].BizRegNo)
	assert.Equal(t, "552201", rows[0].IndustryCode)

	assert.Equal(t, "현금처리", rows[1].Category, "cash advances map to cash-handling")

	assert.Equal(t, int64(-45_000), rows[2].Amount, "refunds keep their sign")
}

func TestParse_ApprovalProfile(t *testing.T) {
	input := strings.Join([]string{
		"승인일자,승인시간,승인금액,가맹점명,카드번호",
		"20250304,214000,45000,스타벅스 역삼점,9410-11**",
	}, "\n")

	p := card.NewParser()
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Empty(t, rows[0].Issuer)
	assert.Equal(t, "2025-03-04", rows[0].Date)
	assert.Equal(t, "21:40:00", rows[0].Time)
	assert.Equal(t, int64(45_000), rows[0].Amount)
	assert.Empty(t, rows[0].Category)
}

func TestParse_NoMatchingFormat(t *testing.T) {
	p := card.NewParser()
	_, err := p.Parse(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.Error(t, err)
}
