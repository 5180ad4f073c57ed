package dataprocessing

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

// RowValidator validates and normalizes raw sales rows one at a time.
// Each call is independent; a failed row never affects its siblings and
// never raises outward.
type RowValidator struct {
	logger  *slog.Logger
	deptSet map[string]bool
}

// NewRowValidator creates a new row validator.
func NewRowValidator(logger *slog.Logger) *RowValidator {
	if logger == nil {
		logger = slog.Default()
	}

	deptSet := make(map[string]bool, len(config.ValidDepartments))
	for _, dept := range config.ValidDepartments {
		deptSet[dept] = true
	}

	return &RowValidator{
		logger:  logger,
		deptSet: deptSet,
	}
}

// Validate checks one raw row and returns either the normalized record or a
// RowError carrying the 1-based line number, the reason, and the original
// row. Checks run in a fixed order and stop at the first failure.
// Any panic during validation is downgraded to a generic row failure.
func (v *RowValidator) Validate(raw domain.RawRecord, line int) (rec domain.SalesRecord, rowErr *domain.RowError) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Warn("row validation panicked",
				slog.Int("line", line),
				slog.Any("panic", r))
			rec = domain.SalesRecord{}
			rowErr = &domain.RowError{
				Line:   line,
				Reason: fmt.Sprintf("unexpected error: %v", r),
				Raw:    raw,
			}
		}
	}()

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		fields[key] = strings.TrimSpace(value)
	}

	fail := func(reason string) (domain.SalesRecord, *domain.RowError) {
		return domain.SalesRecord{}, &domain.RowError{Line: line, Reason: reason, Raw: raw}
	}

	// employee_id: positive integer, canonical decimal form strips leading zeros
	id, err := strconv.ParseInt(fields[domain.FieldEmployeeID], 10, 64)
	if err != nil || id <= 0 {
		return fail("employee_id must be a positive integer")
	}

	name := fields[domain.FieldEmployeeName]
	if name == "" {
		return fail("employee_name cannot be empty")
	}

	dept := titleCase(fields[domain.FieldDepartment])
	if !v.deptSet[dept] {
		return fail(fmt.Sprintf("department must be one of: %s",
			strings.Join(config.ValidDepartments, ", ")))
	}

	// sales_amount: currency symbol and thousands separators are cosmetic
	amountStr := strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(fields[domain.FieldSalesAmount]))
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount <= 0 {
		return fail("sales_amount must be a positive number")
	}

	// date: must be a real calendar date; re-serialize so output is always
	// zero-padded even when the parser accepted a lenient form
	date, err := time.Parse(config.DateFormat, fields[domain.FieldDate])
	if err != nil {
		return fail("date must be in YYYY-MM-DD format")
	}

	return domain.SalesRecord{
		EmployeeID:   strconv.FormatInt(id, 10),
		EmployeeName: name,
		Department:   dept,
		SalesAmount:  amount,
		Date:         date.Format(config.DateFormat),
	}, nil
}

// titleCase uppercases the first letter of every word and lowercases the
// rest. Word boundaries are non-letter runes, so "home & garden" becomes
// "Home & Garden".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}

	return b.String()
}
