package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

const (
	summarySheet     = "Summary"
	departmentsSheet = "Departments"
)

// ExcelExporter renders the statistics report as an .xlsx workbook with a
// summary sheet and a per-department breakdown sheet.
type ExcelExporter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewExcelExporter creates a new Excel report exporter.
func NewExcelExporter(paths *config.Paths, logger *slog.Logger) *ExcelExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelExporter{paths: paths, logger: logger}
}

// ExportReport writes sales_report.xlsx from the aggregated statistics and
// run counts.
func (e *ExcelExporter) ExportReport(ctx context.Context, stats domain.Statistics, totalProcessed, invalidCount int) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(departmentsSheet); err != nil {
		return apperrors.NewStorageError("failed to create departments sheet", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: numFmtPtr("#,##0.00")})
	if err != nil {
		return apperrors.NewStorageError("failed to create amount style", err)
	}

	e.writeSummarySheet(f, stats, totalProcessed, invalidCount, amountStyle)
	e.writeDepartmentsSheet(f, stats, amountStyle)

	if err := os.MkdirAll(filepath.Dir(e.paths.ExcelReport), 0755); err != nil {
		return apperrors.NewStorageError("failed to create reports directory", err)
	}
	if err := f.SaveAs(e.paths.ExcelReport); err != nil {
		return apperrors.NewStorageError("failed to save Excel report", err)
	}

	e.logger.InfoContext(ctx, "exported Excel report",
		slog.String("path", e.paths.ExcelReport))
	return nil
}

func (e *ExcelExporter) writeSummarySheet(f *excelize.File, stats domain.Statistics, totalProcessed, invalidCount int, amountStyle int) {
	f.SetCellValue(summarySheet, "A1", "Sales Analysis Report")

	f.SetCellValue(summarySheet, "A3", "Total Records Processed")
	f.SetCellValue(summarySheet, "B3", totalProcessed)
	f.SetCellValue(summarySheet, "A4", "Valid Records")
	f.SetCellValue(summarySheet, "B4", stats.RecordCount)
	f.SetCellValue(summarySheet, "A5", "Invalid Records")
	f.SetCellValue(summarySheet, "B5", invalidCount)

	f.SetCellValue(summarySheet, "A7", "Total Sales")
	f.SetCellValue(summarySheet, "B7", stats.TotalSales)
	f.SetCellValue(summarySheet, "A8", "Average Sale")
	f.SetCellValue(summarySheet, "B8", stats.AvgSale)
	f.SetCellStyle(summarySheet, "B7", "B8", amountStyle)

	f.SetCellValue(summarySheet, "A10", "Date Range")
	f.SetCellValue(summarySheet, "B10", stats.DateRange())

	f.SetCellValue(summarySheet, "A12", "Top Employees")
	f.SetCellValue(summarySheet, "A13", "Rank")
	f.SetCellValue(summarySheet, "B13", "Employee")
	f.SetCellValue(summarySheet, "C13", "Total Sales")
	for i, emp := range stats.TopEmployees {
		row := 14 + i
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), emp.Name)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), emp.Total)
		f.SetCellStyle(summarySheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), amountStyle)
	}
}

func (e *ExcelExporter) writeDepartmentsSheet(f *excelize.File, stats domain.Statistics, amountStyle int) {
	f.SetCellValue(departmentsSheet, "A1", "Department")
	f.SetCellValue(departmentsSheet, "B1", "Total Sales")
	f.SetCellValue(departmentsSheet, "C1", "Sales Count")
	f.SetCellValue(departmentsSheet, "D1", "Average Sale")

	// Same ordering as the CSV summary: total descending, name on ties
	depts := make([]string, 0, len(stats.Departments))
	for dept := range stats.Departments {
		depts = append(depts, dept)
	}
	sort.Slice(depts, func(i, j int) bool {
		if stats.Departments[depts[i]] != stats.Departments[depts[j]] {
			return stats.Departments[depts[i]] > stats.Departments[depts[j]]
		}
		return depts[i] < depts[j]
	})

	for i, dept := range depts {
		row := 2 + i
		total := stats.Departments[dept]
		count := stats.DeptCounts[dept]
		avg := 0.0
		if count > 0 {
			avg = total / float64(count)
		}

		f.SetCellValue(departmentsSheet, fmt.Sprintf("A%d", row), dept)
		f.SetCellValue(departmentsSheet, fmt.Sprintf("B%d", row), total)
		f.SetCellValue(departmentsSheet, fmt.Sprintf("C%d", row), count)
		f.SetCellValue(departmentsSheet, fmt.Sprintf("D%d", row), avg)
		f.SetCellStyle(departmentsSheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), amountStyle)
		f.SetCellStyle(departmentsSheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), amountStyle)
	}
}

func numFmtPtr(s string) *string {
	return &s
}
