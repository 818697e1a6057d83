package history

import (
	"context"
	"time"

	"github.com/naufalrizky/healthscan/internal/domain/diagnosis"
)

// Entry is one completed diagnosis captured in the log.
type Entry struct {
	ID        string              `json:"id"`
	Date      time.Time           `json:"date"`
	Symptoms  []string            `json:"symptoms"`
	Diagnosis diagnosis.Diagnosis `json:"diagnosis"`
}

// Filter narrows a query. A zero bound leaves that side unbounded; End
// is a calendar date and matches through the end of that day.
type Filter struct {
	Search string
	Start  time.Time
	End    time.Time
}

// Repository persists the full log snapshot. Every mutation rewrites
// the persisted representation in one call, so partially applied
// updates cannot be observed.
type Repository interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}
