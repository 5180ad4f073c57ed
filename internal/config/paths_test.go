package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(base)

	assert.Equal(t, base, paths.ExecutableDir)
	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "data", "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)

	assert.Equal(t, filepath.Join(paths.ReportsDir, CleanedDataFile), paths.CleanedDataCSV)
	assert.Equal(t, filepath.Join(paths.ReportsDir, DepartmentSummaryFile), paths.DepartmentSummaryCSV)
	assert.Equal(t, filepath.Join(paths.ReportsDir, ExcelReportFile), paths.ExcelReport)
	assert.Equal(t, filepath.Join(paths.ReportsDir, ErrorLogFile), paths.ErrorLog)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	paths := NewPaths(t.TempDir())

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestPaths_WithReportsDir(t *testing.T) {
	paths := NewPaths(t.TempDir())
	custom := t.TempDir()

	out := paths.WithReportsDir(custom)

	assert.Equal(t, custom, out.ReportsDir)
	assert.Equal(t, filepath.Join(custom, CleanedDataFile), out.CleanedDataCSV)
	assert.Equal(t, filepath.Join(custom, ErrorLogFile), out.ErrorLog)

	// Original is untouched
	assert.NotEqual(t, paths.ReportsDir, out.ReportsDir)
}

func TestPaths_GetReportPath(t *testing.T) {
	paths := NewPaths(t.TempDir())

	assert.Equal(t, filepath.Join(paths.ReportsDir, "extra.csv"), paths.GetReportPath("extra.csv"))
	assert.Equal(t, filepath.Join(paths.LogsDir, "run.log"), paths.GetLogPath("run.log"))
}
