package dataprocessing

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func goodRow(overrides map[string]string) domain.RawRecord {
	row := domain.RawRecord{
		domain.FieldEmployeeID:   "42",
		domain.FieldEmployeeName: "Alice Smith",
		domain.FieldDepartment:   "Electronics",
		domain.FieldSalesAmount:  "1500.00",
		domain.FieldDate:         "2024-01-05",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestRowValidator_Validate_Success(t *testing.T) {
	validator := NewRowValidator(slog.Default())

	tests := []struct {
		name string
		raw  domain.RawRecord
		want domain.SalesRecord
	}{
		{
			name: "clean row passes unchanged",
			raw:  goodRow(nil),
			want: domain.SalesRecord{
				EmployeeID:   "42",
				EmployeeName: "Alice Smith",
				Department:   "Electronics",
				SalesAmount:  1500.00,
				Date:         "2024-01-05",
			},
		},
		{
			name: "leading zeros stripped from employee_id",
			raw:  goodRow(map[string]string{domain.FieldEmployeeID: "007"}),
			want: domain.SalesRecord{
				EmployeeID:   "7",
				EmployeeName: "Alice Smith",
				Department:   "Electronics",
				SalesAmount:  1500.00,
				Date:         "2024-01-05",
			},
		},
		{
			name: "whitespace trimmed from every field",
			raw: goodRow(map[string]string{
				domain.FieldEmployeeID:   "  42  ",
				domain.FieldEmployeeName: "  Alice Smith ",
				domain.FieldDepartment:   " Electronics ",
				domain.FieldSalesAmount:  " 1500.00 ",
				domain.FieldDate:         " 2024-01-05 ",
			}),
			want: domain.SalesRecord{
				EmployeeID:   "42",
				EmployeeName: "Alice Smith",
				Department:   "Electronics",
				SalesAmount:  1500.00,
				Date:         "2024-01-05",
			},
		},
		{
			name: "lowercase department normalized",
			raw:  goodRow(map[string]string{domain.FieldDepartment: "electronics"}),
			want: domain.SalesRecord{
				EmployeeID:   "42",
				EmployeeName: "Alice Smith",
				Department:   "Electronics",
				SalesAmount:  1500.00,
				Date:         "2024-01-05",
			},
		},
		{
			name: "uppercase department normalized",
			raw:  goodRow(map[string]string{domain.FieldDepartment: "ELECTRONICS"}),
			want: domain.SalesRecord{
				EmployeeID:   "42",
				EmployeeName: "Alice Smith",
				Department:   "Electronics",
				SalesAmount:  1500.00,
				Date:         "2024-01-05",
			},
		},
		{
			name: "currency symbol and thousands separators stripped",
			raw:  goodRow(map[string]string{domain.FieldSalesAmount: "$1,234.50"}),
			want: domain.SalesRecord{
				EmployeeID:   "42",
				EmployeeName: "Alice Smith",
				Department:   "Electronics",
				SalesAmount:  1234.50,
				Date:         "2024-01-05",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, rowErr := validator.Validate(tt.raw, 2)

			require.Nil(t, rowErr)
			assert.Equal(t, tt.want, rec)
		})
	}
}

func TestRowValidator_Validate_Failures(t *testing.T) {
	validator := NewRowValidator(slog.Default())

	tests := []struct {
		name       string
		raw        domain.RawRecord
		wantReason string
	}{
		{
			name:       "employee_id zero",
			raw:        goodRow(map[string]string{domain.FieldEmployeeID: "0"}),
			wantReason: "employee_id must be a positive integer",
		},
		{
			name:       "employee_id negative",
			raw:        goodRow(map[string]string{domain.FieldEmployeeID: "-3"}),
			wantReason: "employee_id must be a positive integer",
		},
		{
			name:       "employee_id not a number",
			raw:        goodRow(map[string]string{domain.FieldEmployeeID: "abc"}),
			wantReason: "employee_id must be a positive integer",
		},
		{
			name:       "employee_id missing",
			raw:        goodRow(map[string]string{domain.FieldEmployeeID: ""}),
			wantReason: "employee_id must be a positive integer",
		},
		{
			name:       "employee_name empty",
			raw:        goodRow(map[string]string{domain.FieldEmployeeName: ""}),
			wantReason: "employee_name cannot be empty",
		},
		{
			name:       "employee_name only whitespace",
			raw:        goodRow(map[string]string{domain.FieldEmployeeName: "   "}),
			wantReason: "employee_name cannot be empty",
		},
		{
			name:       "unknown department enumerates the valid set",
			raw:        goodRow(map[string]string{domain.FieldDepartment: "Furniture"}),
			wantReason: "department must be one of: Electronics, Clothing, Home, Sports",
		},
		{
			name:       "sales_amount zero",
			raw:        goodRow(map[string]string{domain.FieldSalesAmount: "0"}),
			wantReason: "sales_amount must be a positive number",
		},
		{
			name:       "sales_amount negative",
			raw:        goodRow(map[string]string{domain.FieldSalesAmount: "-5"}),
			wantReason: "sales_amount must be a positive number",
		},
		{
			name:       "sales_amount not a number",
			raw:        goodRow(map[string]string{domain.FieldSalesAmount: "free"}),
			wantReason: "sales_amount must be a positive number",
		},
		{
			name:       "impossible calendar date",
			raw:        goodRow(map[string]string{domain.FieldDate: "2024-13-01"}),
			wantReason: "date must be in YYYY-MM-DD format",
		},
		{
			name:       "february 31st",
			raw:        goodRow(map[string]string{domain.FieldDate: "2024-02-31"}),
			wantReason: "date must be in YYYY-MM-DD format",
		},
		{
			name:       "date gibberish",
			raw:        goodRow(map[string]string{domain.FieldDate: "not-a-date"}),
			wantReason: "date must be in YYYY-MM-DD format",
		},
		{
			name:       "first failure wins over later ones",
			raw:        goodRow(map[string]string{domain.FieldEmployeeID: "abc", domain.FieldDepartment: "Furniture"}),
			wantReason: "employee_id must be a positive integer",
		},
		{
			name:       "nil raw record fails on employee_id",
			raw:        nil,
			wantReason: "employee_id must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, rowErr := validator.Validate(tt.raw, 7)

			require.NotNil(t, rowErr)
			assert.Equal(t, tt.wantReason, rowErr.Reason)
			assert.Equal(t, 7, rowErr.Line)
			assert.Equal(t, tt.raw, rowErr.Raw)
			assert.Equal(t, domain.SalesRecord{}, rec)
		})
	}
}

func TestRowValidator_Validate_Idempotent(t *testing.T) {
	validator := NewRowValidator(slog.Default())

	raw := goodRow(map[string]string{
		domain.FieldEmployeeID:  "007",
		domain.FieldDepartment:  "clothing",
		domain.FieldSalesAmount: "$2,500",
	})

	first, rowErr := validator.Validate(raw, 2)
	require.Nil(t, rowErr)

	second, rowErr := validator.Validate(first.ToRaw(), 2)
	require.Nil(t, rowErr)

	assert.Equal(t, first, second)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"electronics", "Electronics"},
		{"ELECTRONICS", "Electronics"},
		{"Electronics", "Electronics"},
		{"hoME", "Home"},
		{"home & garden", "Home & Garden"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, titleCase(tt.in))
		})
	}
}
