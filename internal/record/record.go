// Package record defines the canonical transaction record shared by every
// pipeline stage. Records are created once by the schema merger, enriched
// in place by classification and risk scoring, and are read-only afterwards.
package record

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CancelState marks whether a transaction was cancelled at the source.
type CancelState string

const (
	CancelNone           CancelState = ""
	CancelCancelled      CancelState = "취소"
	CancelClosedBusiness CancelState = "폐업"
)

// Category labels used across the pipeline.
const (
	CategoryOther         = "기타거래"
	CategoryUncategorized = "미분류"
	CategoryCashHandling  = "현금처리"
	CategoryVirtualAsset  = "가상자산"
)

// ScoreFloor is the minimum risk score any record may carry after the
// cascade's final floor pass.
var ScoreFloor = decimal.New(1, -1) // 0.1

// Record is a transaction normalized into the common schema shared by all
// sources.
type Record struct {
	ID          uuid.UUID
	Institution string // source financial entity (bank or card issuer)
	AccountNo   string // account number or card number
	Date        string // YYYY-MM-DD
	Time        string // HH:MM:SS, may be empty
	Deposit     int64  // non-negative, KRW
	Withdrawal  int64  // non-negative, KRW
	Cancel      CancelState

	Description string // counterparty / merchant free text
	Keyword     string // keyword matched by the classification engine
	Category    string

	BizRegNo      string // NNN-NN-NNNNN, may be empty
	IndustryCode  string // fixed-width numeric code, may be empty
	IndustryClass string

	RiskKeyword string
	RiskClass   string
	RiskScore   decimal.Decimal
}
