// Package exporter writes the output artifacts of a processing run.
//
// This package contains four main components:
//
// CSVWriter: core CSV writing with headers, truncate/append modes, and an
// optional UTF-8 BOM for Excel compatibility.
//
// CleanedExporter: writes validated records to cleaned_data.csv and the
// per-department totals to department_summary.csv.
//
// ErrorLog: the append-only human-readable log of per-row validation
// failures (errors.txt).
//
// ExcelExporter: renders the full statistics report as an .xlsx workbook.
//
// Example usage:
//
//	cleaned := exporter.NewCleanedExporter(paths)
//	err := cleaned.ExportCleaned(ctx, records)
//	err = cleaned.ExportDepartmentSummary(ctx, stats.Departments)
package exporter
