package card

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

// Parser reads card-issuer CSV exports and produces card source rows for
// the schema merger, auto-detecting the export format from column headers.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]merge.CardRow, error) {
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
		return nil, fmt.Errorf("no matching card format found")
	}

	return parseRows(profile, cols, rows[headerIdx+1:]), nil
}

type colIndex map[string]int

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

func parseRows(p *Profile, cols colIndex, rows [][]string) []merge.CardRow {
	var out []merge.CardRow

	for _, row := range rows {
		date, ok := parseDate(cell(row, cols, p.DateCol))
		if !ok {
			continue
		}

		out = append(out, merge.CardRow{
			Issuer:       cell(row, cols, p.IssuerCol),
			CardNo:       cell(row, cols, p.CardCol),
			Date:         date,
			Time:         parseClock(cell(row, cols, p.TimeCol)),
			Amount:       parseWon(cell(row, cols, p.AmountCol)),
			Category:     usageCategory(cell(row, cols, p.CategoryCol)),
			Merchant:     cell(row, cols, p.MerchantCol),
			Note:         cell(row, cols, p.NoteCol),
			Branch:       cell(row, cols, p.BranchCol),
			BizRegNo:     cell(row, cols, p.BizRegCol),
			IndustryCode: cell(row, cols, p.IndustryCol),
		})
	}

	return out
}

// usageCategory maps the statement's usage-type column to pipeline
// categories. Cash advances are cash-handling; anything else passes
// through untouched.
func usageCategory(s string) string {
	if s == "현금서비스" || s == record.CategoryCashHandling {
		return record.CategoryCashHandling
	}

	return s
}

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

// parseWon parses a signed, comma-grouped KRW amount. Non-numeric values
// are zero; refunds arrive as negative amounts and keep their sign.
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
