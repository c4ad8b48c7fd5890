package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/jkweon/txscreen/internal/encoding"
	"github.com/jkweon/txscreen/internal/merge"
	"github.com/jkweon/txscreen/internal/record"
)

// Parser reads bank CSV exports and produces bank source rows for the
// schema merger. It auto-detects which export format is being used by
// matching column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]merge.BankRow, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching bank format found")
	}

	return parseRows(profile, cols, rows[headerIdx+1:]), nil
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts bank rows from data rows using the matched profile.
// Rows without a parseable date (footers, totals) are skipped; malformed
// amounts become zero rather than failing the batch.
func parseRows(p *Profile, cols colIndex, rows [][]string) []merge.BankRow {
	var out []merge.BankRow

	for _, row := range rows {
		date, ok := parseDate(cell(row, cols, p.DateCol))
		if !ok {
			continue
		}

		out = append(out, merge.BankRow{
			BankName:     cell(row, cols, p.BankCol),
			AccountNo:    cell(row, cols, p.AccountCol),
			Date:         date,
			Time:         parseClock(cell(row, cols, p.TimeCol)),
			Deposit:      parseWon(cell(row, cols, p.DepositCol)),
			Withdrawal:   parseWon(cell(row, cols, p.WithdrawalCol)),
			Cancel:       parseCancel(cell(row, cols, p.CancelCol)),
			Memo:         cell(row, cols, p.MemoCol),
			Counterparty: cell(row, cols, p.CounterpartyCol),
		})
	}

	return out
}

// cell safely gets a trimmed cell value for a named column; columns the
// profile does not define yield an empty string.
func cell(row []string, cols colIndex, name string) string {
	if name == "" {
		return ""
	}

	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

var dateLayouts = []string{"2006-01-02", "2006.01.02", "2006/01/02", "20060102"}

// parseDate normalizes a source date cell to YYYY-MM-DD.
func parseDate(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly), true
		}
	}

	return "", false
}

var clockLayouts = []string{"15:04:05", "15:04", "150405"}

// parseClock normalizes a source time cell to HH:MM:SS; unparseable values
// become empty, the field is optional.
func parseClock(s string) string {
	if s == "" {
		return ""
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.TimeOnly)
		}
	}

	return ""
}

// parseWon parses a comma-grouped KRW amount ("1,234,567" or "50000원").
// Absent or non-numeric amounts are zero; a single malformed cell must not
// abort the batch.
func parseWon(s string) int64 {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.TrimSuffix(clean, "원")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return 0
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}

	return d.IntPart()
}

func parseCancel(s string) record.CancelState {
	switch {
	case strings.Contains(s, "폐업"):
		return record.CancelClosedBusiness
	case strings.Contains(s, "취소"):
		return record.CancelCancelled
	}

	return record.CancelNone
}
