package dataprocessing

import (
	"context"
	"log/slog"
	"sort"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

// Aggregator computes aggregate statistics over validated sales records.
// It is a single fold over the input with no external side effects and
// never fails, even on an empty input.
type Aggregator struct {
	logger       *slog.Logger
	topEmployees int
}

// AggregatorConfig holds configuration options for the Aggregator.
type AggregatorConfig struct {
	TopEmployees int // How many top earners to retain in the ranking
}

// DefaultAggregatorConfig returns the standard configuration.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{TopEmployees: config.TopEmployeeCount}
}

// NewAggregator creates a new statistics aggregator.
func NewAggregator(logger *slog.Logger, cfg AggregatorConfig) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TopEmployees <= 0 {
		cfg.TopEmployees = config.TopEmployeeCount
	}

	return &Aggregator{
		logger:       logger,
		topEmployees: cfg.TopEmployees,
	}
}

// Aggregate computes totals, per-department breakdowns, the top-earner
// ranking, and the covered date range in a single pass.
//
// Employee totals are keyed by display name: two employees sharing a name
// are merged. That matches the report's display semantics and is kept
// deliberately even though employee IDs would disambiguate.
func (a *Aggregator) Aggregate(ctx context.Context, records []domain.SalesRecord) domain.Statistics {
	a.logger.InfoContext(ctx, "aggregating sales statistics",
		slog.Int("record_count", len(records)))

	stats := domain.Statistics{
		Departments:  make(map[string]float64),
		DeptCounts:   make(map[string]int),
		TopEmployees: []domain.EmployeeTotal{},
		RecordCount:  len(records),
	}

	if len(records) == 0 {
		return stats
	}

	employeeTotals := make(map[string]float64)
	// first-seen order of employee names, so ranking ties break
	// deterministically on input order
	var employeeOrder []string

	for _, r := range records {
		stats.TotalSales += r.SalesAmount
		stats.Departments[r.Department] += r.SalesAmount
		stats.DeptCounts[r.Department]++

		if _, seen := employeeTotals[r.EmployeeName]; !seen {
			employeeOrder = append(employeeOrder, r.EmployeeName)
		}
		employeeTotals[r.EmployeeName] += r.SalesAmount

		if stats.MinDate == "" || r.Date < stats.MinDate {
			stats.MinDate = r.Date
		}
		if r.Date > stats.MaxDate {
			stats.MaxDate = r.Date
		}
	}

	stats.AvgSale = stats.TotalSales / float64(len(records))
	stats.TopEmployees = a.rankEmployees(employeeOrder, employeeTotals)

	a.logger.InfoContext(ctx, "aggregation complete",
		slog.Int("departments", len(stats.Departments)),
		slog.Int("employees", len(employeeTotals)),
		slog.String("date_range", stats.DateRange()))

	return stats
}

// rankEmployees sorts accumulated employee totals descending and keeps the
// leading entries. The sort is stable over first-seen order.
func (a *Aggregator) rankEmployees(order []string, totals map[string]float64) []domain.EmployeeTotal {
	ranked := make([]domain.EmployeeTotal, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, domain.EmployeeTotal{Name: name, Total: totals[name]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if len(ranked) > a.topEmployees {
		ranked = ranked[:a.topEmployees]
	}

	return ranked
}
