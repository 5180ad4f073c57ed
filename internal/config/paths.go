package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: every path is
// resolved relative to the executable directory, never the working directory.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string

	// Well-known output files
	CleanedDataCSV       string
	DepartmentSummaryCSV string
	ExcelReport          string
	ErrorLog             string
}

// GetPaths returns the application paths relative to the executable location.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds the path set rooted at the given base directory.
// Split out from GetPaths so tests can root everything in a temp dir.
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, DefaultDataDir)
	reportsDir := filepath.Join(dataDir, "reports")
	logsDir := filepath.Join(baseDir, DefaultLogsDir)

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ReportsDir:    reportsDir,
		LogsDir:       logsDir,

		CleanedDataCSV:       filepath.Join(reportsDir, CleanedDataFile),
		DepartmentSummaryCSV: filepath.Join(reportsDir, DepartmentSummaryFile),
		ExcelReport:          filepath.Join(reportsDir, ExcelReportFile),
		ErrorLog:             filepath.Join(reportsDir, ErrorLogFile),
	}
}

// WithReportsDir returns a copy of the path set with every report file
// rehomed to the given directory. Used when the output directory is
// overridden on the command line.
func (p *Paths) WithReportsDir(dir string) *Paths {
	out := *p
	out.ReportsDir = dir
	out.CleanedDataCSV = filepath.Join(dir, CleanedDataFile)
	out.DepartmentSummaryCSV = filepath.Join(dir, DepartmentSummaryFile)
	out.ExcelReport = filepath.Join(dir, ExcelReportFile)
	out.ErrorLog = filepath.Join(dir, ErrorLogFile)
	return &out
}

// EnsureDirectories creates all required directories if they do not exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.ReportsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the full path for a file in the reports directory.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the full path for a file in the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
