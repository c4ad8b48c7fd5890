package bank

// Profile describes the column layout of a bank CSV export. Adding support
// for a new bank format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name            string
	BankCol         string
	AccountCol      string
	DateCol         string
	TimeCol         string
	DepositCol      string
	WithdrawalCol   string
	MemoCol         string
	CounterpartyCol string
	CancelCol       string
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.DateCol, p.DepositCol, p.WithdrawalCol}
}

// profiles is the ordered list of bank export formats to try during
// auto-detection. More specific profiles should come first to avoid false
// matches.
var profiles = []Profile{
	{
		Name:            "통합거래내역",
		BankCol:         "은행명",
		AccountCol:      "계좌번호",
		DateCol:         "거래일자",
		TimeCol:         "거래시간",
		DepositCol:      "입금액",
		WithdrawalCol:   "출금액",
		MemoCol:         "적요",
		CounterpartyCol: "거래점",
		CancelCol:       "취소여부",
	},
	{
		Name:            "입출금내역",
		AccountCol:      "계좌번호",
		DateCol:         "거래일",
		DepositCol:      "맡기신금액",
		WithdrawalCol:   "찾으신금액",
		MemoCol:         "내용",
		CounterpartyCol: "거래점명",
	},
}
