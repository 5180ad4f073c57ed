// Package report renders the console summary of a processing run.
// Presentation concerns live here: currency formatting with thousands
// separators and column alignment for the department and employee tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"salescli/pkg/contracts/domain"
)

const (
	bannerWidth     = 40
	deptColumnWidth = 12
	nameColumnWidth = 15
)

// Renderer writes the formatted sales analysis report.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a report renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render prints the full report: run counts, overall statistics, the
// per-department breakdown sorted by total descending, the top employees,
// and the covered date range.
func (r *Renderer) Render(stats domain.Statistics, totalProcessed, invalidCount int) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(r.w, banner)
	fmt.Fprintln(r.w, "SALES ANALYSIS REPORT")
	fmt.Fprintln(r.w, banner)
	fmt.Fprintf(r.w, "Total Records Processed: %d\n", totalProcessed)
	fmt.Fprintf(r.w, "Valid Records: %d\n", stats.RecordCount)
	fmt.Fprintf(r.w, "Invalid Records: %d\n\n", invalidCount)

	fmt.Fprintln(r.w, "OVERALL STATISTICS:")
	fmt.Fprintf(r.w, "Total Sales:     %s\n", FormatCurrency(stats.TotalSales))
	fmt.Fprintf(r.w, "Average Sale:    %s\n\n", FormatCurrency(stats.AvgSale))

	fmt.Fprintln(r.w, "SALES BY DEPARTMENT:")
	for _, dept := range sortedByTotal(stats.Departments) {
		total := stats.Departments[dept]
		count := stats.DeptCounts[dept]
		avg := 0.0
		if count > 0 {
			avg = total / float64(count)
		}
		fmt.Fprintf(r.w, "%s %s  (%d sales, avg %s)\n",
			runewidth.FillRight(dept, deptColumnWidth),
			FormatCurrency(total), count, FormatCurrency(avg))
	}

	fmt.Fprintf(r.w, "\nTOP %d EMPLOYEES:\n", len(stats.TopEmployees))
	for i, emp := range stats.TopEmployees {
		fmt.Fprintf(r.w, "%d. %s %s\n",
			i+1, runewidth.FillRight(emp.Name, nameColumnWidth), FormatCurrency(emp.Total))
	}

	fmt.Fprintf(r.w, "\nDate Range: %s\n", stats.DateRange())
	fmt.Fprintln(r.w, banner)
}

// sortedByTotal returns department names sorted by total descending,
// name ascending on ties.
func sortedByTotal(departments map[string]float64) []string {
	depts := make([]string, 0, len(departments))
	for dept := range departments {
		depts = append(depts, dept)
	}
	sort.Slice(depts, func(i, j int) bool {
		if departments[depts[i]] != departments[depts[j]] {
			return departments[depts[i]] > departments[depts[j]]
		}
		return depts[i] < depts[j]
	})
	return depts
}

// FormatCurrency renders an amount as dollars with thousands separators and
// exactly 2 decimal places, e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := "$" + b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
