package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jkweon/txscreen/internal/lookup"
	"github.com/jkweon/txscreen/internal/record"
)

// industryHitScore flags a record whose industry code appears in the lookup
// table. The risk cascade may still overwrite it.
var industryHitScore = decimal.NewFromInt(5)

// ByIndustryCode assigns industry classifications by exact code match
// against the lookup index. Hits are flagged with the sentinel score 5.0;
// misses get 0, not the global minimum; the cascade applies the floor
// later.
func ByIndustryCode(records []*record.Record, idx lookup.Index) {
	for _, rec := range records {
		code := strings.TrimSpace(rec.IndustryCode)
		if code != "" {
			if e, ok := idx[code]; ok {
				rec.IndustryClass = e.Class
				rec.RiskScore = industryHitScore

				continue
			}
		}

		rec.RiskScore = decimal.Zero
	}
}
