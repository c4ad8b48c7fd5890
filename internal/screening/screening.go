// Package screening persists the output of pipeline runs so the enriched
// record batches can be reviewed later. The pipeline itself stays pure;
// this is the boundary where results hit storage.
package screening

import (
	"time"

	"github.com/google/uuid"
)

// Run is one completed screening pass over a pair of source batches.
type Run struct {
	ID          uuid.UUID
	RecordCount int
	CreatedAt   time.Time
}
