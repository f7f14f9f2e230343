package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"emawatch/pkg/types"
)

// FormatAlertMessage renders the batched alert body: a title, one line per
// alert, and the run timestamp.
func FormatAlertMessage(alerts []types.ProximityVerdict, now time.Time) string {
	var b strings.Builder
	b.WriteString("🔔 Stock EMA Alert 🔔\n\n")
	b.WriteString("The following stocks are near their 200-day EMA:\n\n")

	for _, alert := range alerts {
		b.WriteString(fmt.Sprintf("📈 %s: $%s (%s%% %s 200 EMA: $%s)\n",
			alert.Symbol,
			formatPrice(alert.CurrentPrice),
			decimal.NewFromFloat(alert.PercentageDiff).String(),
			alert.Direction,
			formatPrice(alert.EMA),
		))
	}

	b.WriteString(fmt.Sprintf("\nTimestamp: %s UTC", now.UTC().Format("2006-01-02 15:04:05")))
	return b.String()
}

func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
