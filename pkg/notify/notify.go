// Package notify dispatches alert summaries for stocks trading near their
// 200-day EMA.
package notify

import (
	"context"

	"emawatch/pkg/types"
)

// Notifier sends one batched alert message per run. Implementations must
// treat an empty alert set as a no-op.
type Notifier interface {
	Notify(ctx context.Context, alerts []types.ProximityVerdict) error
}
