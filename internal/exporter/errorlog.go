package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ErrorLog is the append-only, human-readable log of per-row validation
// failures. Init truncates the file for a fresh run; Append records one
// failure per line.
type ErrorLog struct {
	path   string
	logger *slog.Logger
}

// NewErrorLog creates an error log writer for the standard errors.txt
// location.
func NewErrorLog(paths *config.Paths, logger *slog.Logger) *ErrorLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorLog{
		path:   paths.ErrorLog,
		logger: logger,
	}
}

// Init truncates the log and writes the banner. Called once at the start of
// every run, before any rows are validated.
func (l *ErrorLog) Init() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create error log directory", err)
	}

	if err := os.WriteFile(l.path, []byte(config.ErrorLogBanner+"\n\n"), 0644); err != nil {
		return apperrors.NewStorageError("failed to initialize error log", err)
	}
	return nil
}

// Append writes one failed row to the log, with its line number, the
// failure reason, and the original raw record.
func (l *ErrorLog) Append(rowErr *domain.RowError) error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return apperrors.NewStorageError("failed to open error log", err)
	}
	defer file.Close()

	entry := fmt.Sprintf("Line %d: %s → %s\n", rowErr.Line, rowErr.Reason, rowErr.Raw)
	if _, err := file.WriteString(entry); err != nil {
		return apperrors.NewStorageError("failed to append to error log", err)
	}

	l.logger.Debug("logged row validation failure",
		slog.Int("line", rowErr.Line),
		slog.String("reason", rowErr.Reason))
	return nil
}

// Path returns the error log location for display in the run summary.
func (l *ErrorLog) Path() string {
	return l.path
}
