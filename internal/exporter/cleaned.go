package exporter

import (
	"context"
	"log/slog"
	"sort"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

// CleanedExporter writes the validated record set and the department
// summary as CSV files.
type CleanedExporter struct {
	csvWriter *CSVWriter
	paths     *config.Paths
	logger    *slog.Logger
}

// NewCleanedExporter creates a new cleaned-data exporter.
func NewCleanedExporter(paths *config.Paths, logger *slog.Logger) *CleanedExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CleanedExporter{
		csvWriter: NewCSVWriter(paths),
		paths:     paths,
		logger:    logger,
	}
}

// ExportCleaned writes the normalized records to cleaned_data.csv in their
// original order, with sales amounts serialized to exactly 2 decimals.
// Nothing is written for an empty record set.
func (e *CleanedExporter) ExportCleaned(ctx context.Context, records []domain.SalesRecord) error {
	if len(records) == 0 {
		e.logger.InfoContext(ctx, "no valid records, skipping cleaned data export")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.EmployeeID,
			r.EmployeeName,
			r.Department,
			formatAmount(r.SalesAmount),
			r.Date,
		})
	}

	if err := e.csvWriter.WriteSimpleCSV(e.paths.CleanedDataCSV, domain.FieldOrder, rows); err != nil {
		return err
	}

	e.logger.InfoContext(ctx, "exported cleaned data",
		slog.String("path", e.paths.CleanedDataCSV),
		slog.Int("records", len(records)))
	return nil
}

// ExportDepartmentSummary writes per-department totals to
// department_summary.csv, sorted by total sales descending.
func (e *CleanedExporter) ExportDepartmentSummary(ctx context.Context, departments map[string]float64) error {
	rows := make([][]string, 0, len(departments))
	for dept, total := range departments {
		rows = append(rows, []string{dept, formatAmount(total)})
	}

	// Descending by total; equal totals fall back to name so output is
	// deterministic across runs.
	sort.Slice(rows, func(i, j int) bool {
		if departments[rows[i][0]] != departments[rows[j][0]] {
			return departments[rows[i][0]] > departments[rows[j][0]]
		}
		return rows[i][0] < rows[j][0]
	})

	if err := e.csvWriter.WriteSimpleCSV(e.paths.DepartmentSummaryCSV,
		[]string{"department", "total_sales"}, rows); err != nil {
		return err
	}

	e.logger.InfoContext(ctx, "exported department summary",
		slog.String("path", e.paths.DepartmentSummaryCSV),
		slog.Int("departments", len(rows)))
	return nil
}
