package exporter

import (
	"fmt"
)

// formatAmount formats a sales amount for CSV output with exactly 2 decimal
// places, so values like 13.4 appear as 13.40.
func formatAmount(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
