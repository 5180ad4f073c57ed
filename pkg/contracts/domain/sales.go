package domain

import (
	"fmt"
	"sort"
	"strings"
)

// CSV field names for sales records.
const (
	FieldEmployeeID   = "employee_id"
	FieldEmployeeName = "employee_name"
	FieldDepartment   = "department"
	FieldSalesAmount  = "sales_amount"
	FieldDate         = "date"
)

// FieldOrder is the canonical column order for input files and cleaned output.
var FieldOrder = []string{
	FieldEmployeeID,
	FieldEmployeeName,
	FieldDepartment,
	FieldSalesAmount,
	FieldDate,
}

// RawRecord is one unvalidated input row, every value as read from the file.
// Missing fields are represented as absent keys, not empty strings.
type RawRecord map[string]string

// String renders the record in canonical field order for error logging.
// Unknown extra keys are appended in sorted order so nothing is lost.
func (r RawRecord) String() string {
	known := make(map[string]bool, len(FieldOrder))
	parts := make([]string, 0, len(r))
	for _, field := range FieldOrder {
		known[field] = true
		if v, ok := r[field]; ok {
			parts = append(parts, fmt.Sprintf("%s=%q", field, v))
		}
	}
	var extras []string
	for k := range r {
		if !known[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		parts = append(parts, fmt.Sprintf("%s=%q", k, r[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SalesRecord is a validated, canonically formatted sales row.
// Once constructed by the validator its fields are always valid:
// EmployeeID is a positive integer in decimal form, EmployeeName is
// non-empty, Department is one of the fixed enumeration, SalesAmount is
// positive, and Date is a real calendar date in zero-padded YYYY-MM-DD form.
type SalesRecord struct {
	EmployeeID   string  `json:"employee_id" csv:"employee_id"`
	EmployeeName string  `json:"employee_name" csv:"employee_name"`
	Department   string  `json:"department" csv:"department"`
	SalesAmount  float64 `json:"sales_amount" csv:"sales_amount"`
	Date         string  `json:"date" csv:"date"`
}

// ToRaw converts a normalized record back to raw form. The validator is
// idempotent over records produced this way.
func (s SalesRecord) ToRaw() RawRecord {
	return RawRecord{
		FieldEmployeeID:   s.EmployeeID,
		FieldEmployeeName: s.EmployeeName,
		FieldDepartment:   s.Department,
		FieldSalesAmount:  fmt.Sprintf("%.2f", s.SalesAmount),
		FieldDate:         s.Date,
	}
}

// RowError reports a recoverable validation failure for a single input row.
// Line numbers are 1-based file positions, so the first data row is line 2.
type RowError struct {
	Line   int       `json:"line"`
	Reason string    `json:"reason"`
	Raw    RawRecord `json:"raw"`
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// EmployeeTotal pairs an employee display name with accumulated sales.
type EmployeeTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// Statistics holds aggregate metrics computed over validated records only.
type Statistics struct {
	TotalSales   float64            `json:"total_sales"`
	AvgSale      float64            `json:"avg_sale"`
	Departments  map[string]float64 `json:"departments"`
	DeptCounts   map[string]int     `json:"dept_counts"`
	TopEmployees []EmployeeTotal    `json:"top_employees"`
	MinDate      string             `json:"min_date,omitempty"`
	MaxDate      string             `json:"max_date,omitempty"`
	RecordCount  int                `json:"record_count"`
}

// DateRange renders the covered date span, or "N/A" when no records were
// aggregated. Lexicographic min/max are valid because dates are fixed-width
// and zero-padded.
func (s Statistics) DateRange() string {
	if s.MinDate == "" || s.MaxDate == "" {
		return "N/A"
	}
	return s.MinDate + " to " + s.MaxDate
}
