package files

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// Row is one raw data row paired with its 1-based line number in the file.
type Row struct {
	Line   int
	Record domain.RawRecord
}

// Reader loads sales CSV files into raw rows.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a new sales CSV reader.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadSalesFile reads the whole file into raw rows. The header row is
// consumed first; a header that does not exactly match the expected format
// is tolerated with a warning, and the actual header names become the
// record keys. Open and parse failures abort the run with a typed error
// and zero rows.
func (r *Reader) ReadSalesFile(ctx context.Context, path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, apperrors.NewAppError(apperrors.ErrTypeNotFound, "input file not found", err).
				WithContext("path", path)
		case os.IsPermission(err):
			return nil, apperrors.NewPermissionError("cannot read input file", err).
				WithContext("path", path)
		default:
			return nil, apperrors.NewStorageError("failed to open input file", err).
				WithContext("path", path)
		}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rows with missing trailing fields are validation failures, not file
	// failures, so field counts are not enforced here.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		r.logger.WarnContext(ctx, "input file is empty", slog.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read CSV header", err).
			WithContext("path", path)
	}

	if !headerMatches(header) {
		r.logger.WarnContext(ctx, "CSV headers do not exactly match expected format",
			slog.String("path", path),
			slog.Any("header", header),
			slog.Any("expected", domain.FieldOrder))
	}

	var rows []Row
	line := 1 // header consumed
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("CSV parsing error", err).
				WithContext("path", path)
		}
		line++

		record := make(domain.RawRecord, len(header))
		for i, name := range header {
			if i < len(fields) {
				record[name] = fields[i]
			}
		}
		rows = append(rows, Row{Line: line, Record: record})
	}

	r.logger.InfoContext(ctx, "read sales file",
		slog.String("path", path),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// headerMatches reports whether the header exactly matches the expected
// column names in order.
func headerMatches(header []string) bool {
	if len(header) != len(domain.FieldOrder) {
		return false
	}
	for i, name := range domain.FieldOrder {
		if header[i] != name {
			return false
		}
	}
	return true
}
