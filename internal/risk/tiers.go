package risk

import "github.com/shopspring/decimal"

// direction qualifies which amount side a tier's threshold applies to.
type direction int

const (
	// eitherSide matches when the deposit or the withdrawal reaches the threshold.
	eitherSide direction = iota
	// withdrawalAny matches on the withdrawal alone, deposit ignored.
	withdrawalAny
	// withdrawalOnly matches on the withdrawal when there is no deposit.
	withdrawalOnly
)

// keyword is one searchable term with its exclusion list. An exclusion
// suppresses the match when it also occurs in the search text, so one-off
// institution carve-outs stay configuration instead of code.
type keyword struct {
	term       string
	exclusions []string
}

// tier is one severity check of the cascade. Tiers run in ascending order
// and a later hit unconditionally overwrites an earlier one.
type tier struct {
	number    int
	label     string
	threshold int64
	direction direction
	category  string // category substring checked before the keyword list
	keywords  []keyword
	score     decimal.Decimal
}

// tier2MinCount is the minimum matched-keyword frequency for the repeated
// counterparty tier.
const tier2MinCount = 5

var tiers = []tier{
	{
		number:    1,
		label:     "고액출금",
		threshold: 10_000_000,
		direction: withdrawalAny,
		score:     decimal.New(10, -1),
	},
	{
		number:    2,
		label:     "특정인반복거래",
		threshold: 1_000_000,
		direction: withdrawalOnly,
		score:     decimal.New(15, -1),
	},
	{
		number:    3,
		label:     "증권투자",
		threshold: 500_000,
		direction: eitherSide,
		keywords: []keyword{
			{term: "증권", exclusions: []string{"한국증권금융"}},
			{term: "선물"},
			{term: "자산운용"},
			{term: "투자자문"},
			{term: "종합금융"},
		},
		score: decimal.New(20, -1),
	},
	{
		number:    4,
		label:     "대출중개",
		threshold: 500_000,
		direction: eitherSide,
		keywords: []keyword{
			{term: "대출"},
			{term: "대부"},
			{term: "P2P"},
			{term: "피투피"},
			{term: "카드깡"},
			{term: "원리금"},
			{term: "할부금융"},
		},
		score: decimal.New(25, -1),
	},
	{
		number:    5,
		label:     "가상자산",
		threshold: 500_000,
		direction: eitherSide,
		category:  "가상자산",
		keywords: []keyword{
			{term: "업비트"},
			{term: "빗썸"},
			{term: "코인원"},
			{term: "코빗"},
			{term: "고팍스"},
			{term: "바이낸스"},
			{term: "두나무"},
		},
		score: decimal.New(30, -1),
	},
	{
		number:    6,
		label:     "해외송금",
		threshold: 500_000,
		direction: withdrawalOnly,
		keywords: []keyword{
			{term: "해외송금"},
			{term: "외화"},
			{term: "외환"},
			{term: "환전"},
			{term: "거액인출"},
			{term: "머니그램"},
			{term: "웨스턴유니온"},
		},
		score: decimal.New(35, -1),
	},
	{
		number:    7,
		label:     "사치성소비",
		threshold: 300_000,
		direction: withdrawalOnly,
		keywords: []keyword{
			{term: "백화점"},
			{term: "명품"},
			{term: "면세점"},
			{term: "귀금속"},
			{term: "보석"},
			{term: "골프"},
			{term: "호텔"},
			{term: "피부관리"},
		},
		score: decimal.New(40, -1),
	},
	{
		number:    8,
		label:     "사행성업종",
		threshold: 100_000,
		direction: withdrawalOnly,
		keywords: []keyword{
			{term: "카지노"},
			{term: "경마"},
			{term: "경륜"},
			{term: "경정"},
			{term: "복권"},
			{term: "토토"},
			{term: "배팅"},
			{term: "베팅"},
			{term: "성인용품"},
			{term: "유흥주점"},
			{term: "단란주점"},
		},
		score: decimal.New(50, -1),
	},
}
