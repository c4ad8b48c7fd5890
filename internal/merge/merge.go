// Package merge maps bank-origin and card-origin source rows into the
// canonical record shape. The merger never drops a record and fills missing
// optional fields with zero values, so downstream stages need no nil checks.
package merge

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jkweon/txscreen/internal/record"
)

// BankRow is a transaction as exported by a bank, already split into
// deposit and withdrawal amounts.
type BankRow struct {
	BankName     string
	AccountNo    string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM:SS, may be empty
	Deposit      int64
	Withdrawal   int64
	Cancel       record.CancelState
	Memo         string // dedicated note field (적요)
	Counterparty string // branch / location field (거래점)
}

// CardRow is a transaction as exported by a card issuer. The amount is a
// single signed usage amount; positive values are charges.
type CardRow struct {
	Issuer       string
	CardNo       string
	Date         string
	Time         string
	Amount       int64  // signed usage amount
	Category     string // usage-type category from the statement, may be empty
	Merchant     string
	Note         string
	Branch       string
	BizRegNo     string
	IndustryCode string
}

// descriptionChain returns the first non-empty value from an ordered list
// of field accessors. The fallback order is a named constant per record
// kind, not an inline conditional.
type descriptionChain []func() string

func (c descriptionChain) first() string {
	for _, f := range c {
		if v := strings.TrimSpace(f()); v != "" {
			return v
		}
	}

	return ""
}

func bankDescription(r BankRow) descriptionChain {
	return descriptionChain{
		func() string { return r.Memo },
		func() string { return r.Counterparty },
	}
}

func cardDescription(r CardRow) descriptionChain {
	return descriptionChain{
		func() string { return r.Merchant },
		func() string { return r.Note },
		func() string { return r.Branch },
	}
}

// Merge produces one canonical record per source row. Bank amounts are
// copied as-is; card usage amounts are split by sign, except that
// cash-handling rows always route to deposit regardless of sign.
func Merge(banks []BankRow, cards []CardRow) []*record.Record {
	records := make([]*record.Record, 0, len(banks)+len(cards))

	for _, b := range banks {
		records = append(records, &record.Record{
			ID:          uuid.New(),
			Institution: b.BankName,
			AccountNo:   b.AccountNo,
			Date:        b.Date,
			Time:        b.Time,
			Deposit:     b.Deposit,
			Withdrawal:  b.Withdrawal,
			Cancel:      b.Cancel,
			Description: bankDescription(b).first(),
			Category:    record.CategoryUncategorized,
			RiskScore:   decimal.Zero,
		})
	}

	for _, c := range cards {
		deposit, withdrawal := splitUsageAmount(c)

		category := strings.TrimSpace(c.Category)
		if category == "" {
			category = record.CategoryUncategorized
		}

		records = append(records, &record.Record{
			ID:           uuid.New(),
			Institution:  c.Issuer,
			AccountNo:    c.CardNo,
			Date:         c.Date,
			Time:         c.Time,
			Deposit:      deposit,
			Withdrawal:   withdrawal,
			Description:  cardDescription(c).first(),
			Category:     category,
			BizRegNo:     c.BizRegNo,
			IndustryCode: strings.TrimSpace(c.IndustryCode),
			RiskScore:    decimal.Zero,
		})
	}

	return records
}

// splitUsageAmount routes a signed card usage amount into deposit or
// withdrawal. Cash-handling is always treated as incoming, so its absolute
// value goes to deposit before any sign check.
func splitUsageAmount(c CardRow) (deposit, withdrawal int64) {
	amount := c.Amount

	if strings.TrimSpace(c.Category) == record.CategoryCashHandling {
		if amount < 0 {
			amount = -amount
		}

		return amount, 0
	}

	if amount > 0 {
		return 0, amount
	}

	return -amount, 0
}
