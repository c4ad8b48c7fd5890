package card

// Profile describes the column layout of a card-issuer CSV export.
type Profile struct {
	Name        string
	IssuerCol   string
	CardCol     string
	DateCol     string
	TimeCol     string
	AmountCol   string
	CategoryCol string
	MerchantCol string
	NoteCol     string
	BranchCol   string
	BizRegCol   string
	IndustryCol string
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.DateCol, p.AmountCol, p.MerchantCol}
}

// profiles is the ordered list of card export formats to try during
// auto-detection. More specific profiles should come first.
var profiles = []Profile{
	{
		Name:        "이용내역",
		IssuerCol:   "카드사",
		CardCol:     "카드번호",
		DateCol:     "이용일자",
		TimeCol:     "이용시간",
		AmountCol:   "이용금액",
		CategoryCol: "이용구분",
		MerchantCol: "이용가맹점",
		NoteCol:     "비고",
		BranchCol:   "가맹점주소",
		BizRegCol:   "사업자번호",
		IndustryCol: "업종코드",
	},
	{
		Name:        "승인내역",
		CardCol:     "카드번호",
		DateCol:     "승인일자",
		TimeCol:     "승인시간",
		AmountCol:   "승인금액",
		MerchantCol: "가맹점명",
	},
}
