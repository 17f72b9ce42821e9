package holiday

import (
	"context"
	"time"
)

// HolidayRepository reads the upstream holiday table. ListForRange returns
// one-off holidays inside the range plus every yearly holiday; projection
// onto concrete dates happens via ProjectInRange.
type HolidayRepository interface {
	ListForRange(ctx context.Context, from, until time.Time) ([]Holiday, error)
}
