package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	apperrors "salescli/internal/errors"
	"salescli/internal/exporter"
	"salescli/internal/files"
	"salescli/internal/infrastructure"
	"salescli/internal/report"
	"salescli/internal/validation"
	"salescli/pkg/contracts/domain"
)

func main() {
	inFile := flag.String("in", "", "input sales CSV file (prompted for interactively when omitted)")
	outDir := flag.String("out", "", "output directory for reports (defaults to data/reports relative to executable)")
	flag.Parse()

	// Initialize paths first to get default directories
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		paths = paths.WithReportsDir(*outDir)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: infrastructure.DefaultLoggingConfig(paths.GetLogPath("processor.log")),
			Report:  config.ReportConfig{TopEmployees: config.TopEmployeeCount, ExcelExport: true},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	banner := strings.Repeat("=", 40)
	fmt.Println(banner)
	fmt.Println("SALES DATA PROCESSING TOOL")
	fmt.Println(banner)
	fmt.Println()

	input := *inFile
	if input == "" {
		input = promptFilename(os.Stdin, os.Stdout)
	}
	if input == "" {
		fmt.Println("No filename entered. Exiting.")
		return
	}

	logger.InfoContext(ctx, "starting sales data processing",
		slog.String("input_file", input),
		slog.String("reports_dir", paths.ReportsDir),
		slog.Int("top_employees", cfg.Report.TopEmployees))

	fileValidator := validation.NewFileValidator(logger)
	if err := fileValidator.ValidateInputFile(input); err != nil {
		fmt.Printf("Error: %v\n", err)
		logger.ErrorContext(ctx, "input file validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := fileValidator.ValidateOutputDirectory(paths.ReportsDir); err != nil {
		logger.ErrorContext(ctx, "output directory validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Fresh error log for every run, before any rows are validated
	errorLog := exporter.NewErrorLog(paths, logger)
	if err := errorLog.Init(); err != nil {
		logger.ErrorContext(ctx, "failed to initialize error log", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("\nLoading data...")
	reader := files.NewReader(logger)
	rows, err := reader.ReadSalesFile(ctx, input)
	if err != nil {
		reportReadFailure(input, err)
		logger.ErrorContext(ctx, "failed to read input file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	totalProcessed := len(rows)
	if totalProcessed == 0 {
		fmt.Println("No records were processed. Check file and try again.")
		logger.WarnContext(ctx, "no records in input file", slog.String("input_file", input))
		return
	}

	validRecords, invalidCount := validateRows(ctx, logger, errorLog, rows)

	fmt.Printf("Valid records: %d\n", len(validRecords))
	fmt.Printf("Invalid records: %d (details in %s)\n", invalidCount, errorLog.Path())

	fmt.Println("\nCalculating statistics...")
	aggregator := dataprocessing.NewAggregator(logger, dataprocessing.AggregatorConfig{
		TopEmployees: cfg.Report.TopEmployees,
	})
	stats := aggregator.Aggregate(ctx, validRecords)

	report.NewRenderer(os.Stdout).Render(stats, totalProcessed, invalidCount)

	fmt.Println("\nExporting results...")
	cleaned := exporter.NewCleanedExporter(paths, logger)
	if err := cleaned.ExportCleaned(ctx, validRecords); err != nil {
		logger.ErrorContext(ctx, "failed to export cleaned data", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cleaned.ExportDepartmentSummary(ctx, stats.Departments); err != nil {
		logger.ErrorContext(ctx, "failed to export department summary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.Report.ExcelExport {
		excel := exporter.NewExcelExporter(paths, logger)
		if err := excel.ExportReport(ctx, stats, totalProcessed, invalidCount); err != nil {
			logger.ErrorContext(ctx, "failed to export Excel report", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("  Excel report → %s\n", paths.ExcelReport)
	}

	fmt.Printf("  Cleaned data → %s\n", paths.CleanedDataCSV)
	fmt.Printf("  Department summary → %s\n", paths.DepartmentSummaryCSV)
	fmt.Printf("  Errors logged to → %s\n", errorLog.Path())

	logger.InfoContext(ctx, "processing complete",
		slog.Int("total_processed", totalProcessed),
		slog.Int("valid", len(validRecords)),
		slog.Int("invalid", invalidCount))

	fmt.Println("\nProcessing complete!")
	fmt.Println(banner)
}

// validateRows runs every raw row through the validator, appending failures
// to the error log. Row failures never abort the run.
func validateRows(ctx context.Context, logger *slog.Logger, errorLog *exporter.ErrorLog, rows []files.Row) ([]domain.SalesRecord, int) {
	validator := dataprocessing.NewRowValidator(logger)

	var valid []domain.SalesRecord
	invalid := 0
	for _, row := range rows {
		record, rowErr := validator.Validate(row.Record, row.Line)
		if rowErr != nil {
			invalid++
			if err := errorLog.Append(rowErr); err != nil {
				logger.WarnContext(ctx, "failed to append to error log",
					slog.Int("line", rowErr.Line),
					slog.String("error", err.Error()))
			}
			continue
		}
		valid = append(valid, record)
	}

	return valid, invalid
}

// promptFilename asks for the input CSV path on the console.
func promptFilename(in io.Reader, out io.Writer) string {
	fmt.Fprint(out, "Enter CSV filename: ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// reportReadFailure prints a human-readable message for collaborator-level
// read failures, matched to the error taxonomy.
func reportReadFailure(path string, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		fmt.Printf("Unexpected error: %v\n", err)
		return
	}

	switch appErr.Type {
	case apperrors.ErrTypeNotFound:
		fmt.Printf("Error: File '%s' not found.\n", path)
	case apperrors.ErrTypePermission:
		fmt.Printf("Permission denied: Cannot read '%s'\n", path)
	case apperrors.ErrTypeParsing:
		fmt.Printf("CSV parsing error: %v\n", appErr.Cause)
	default:
		fmt.Printf("Unexpected error: %v\n", err)
	}
}
