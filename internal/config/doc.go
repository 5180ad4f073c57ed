// Package config provides centralized configuration management for the
// sales processing tool. It handles loading configuration from multiple
// sources, validation, and path resolution relative to the executable.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. config.yaml next to the executable
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SALES_* for namespacing:
//
//	SALES_LOGGING_LEVEL=debug
//	SALES_LOGGING_OUTPUT=both
//	SALES_PATHS_REPORTS_DIR=data/reports
//	SALES_REPORT_TOP_EMPLOYEES=3
//
// # Constants
//
// The two process-wide domain constants live in constants.go and are never
// configurable at runtime: the fixed department enumeration
// (ValidDepartments) and the canonical date layout (DateFormat).
//
// # Path Management
//
// The Paths type resolves all file system paths relative to the executable
// location:
//
//	paths, err := config.GetPaths()
//	cleaned := paths.CleanedDataCSV
//	summary := paths.GetReportPath("department_summary.csv")
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
