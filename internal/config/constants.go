package config

// Application constants - all hardcoded values for the sales processing tool.
const (
	// Application Info
	AppName    = "Sales Data Processing Tool"
	AppVersion = "1.0.0"

	// DateFormat is the canonical record date layout. All dates are
	// re-serialized through this layout so output is always zero-padded.
	DateFormat = "2006-01-02"

	// Output Files (relative to the reports directory)
	CleanedDataFile       = "cleaned_data.csv"
	DepartmentSummaryFile = "department_summary.csv"
	ExcelReportFile       = "sales_report.xlsx"
	ErrorLogFile          = "errors.txt"

	// ErrorLogBanner heads a freshly truncated error log.
	ErrorLogBanner = "=== Sales Data Validation Errors ==="

	// TopEmployeeCount is how many top earners the report retains.
	TopEmployeeCount = 3

	// File Paths (relative to executable)
	DefaultDataDir    = "data"
	DefaultReportsDir = "data/reports"
	DefaultLogsDir    = "logs"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ValidDepartments is the fixed department enumeration. Input matching is
// case-insensitive; normalized records always carry this exact casing.
// The slice order is the order failure messages enumerate the set in.
var ValidDepartments = []string{"Electronics", "Clothing", "Home", "Sports"}
