package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDepartments(t *testing.T) {
	// The enumeration is fixed: exactly these four, in message order
	assert.Equal(t, []string{"Electronics", "Clothing", "Home", "Sports"}, ValidDepartments)
}

func TestConfig_Validate_AppliesDefaults(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.validate())

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.NotEmpty(t, cfg.Logging.FilePath)
	assert.Equal(t, TopEmployeeCount, cfg.Report.TopEmployees)
}

func TestConfig_Validate_RejectsBadLevel(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "yelling"},
	}

	assert.Error(t, cfg.validate())
}

func TestConfig_Validate_AcceptsKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error"} {
		cfg := &Config{Logging: LoggingConfig{Level: level}}
		assert.NoError(t, cfg.validate(), "level %s", level)
	}
}

func TestMergeConfigs_FileFillsUnsetEnv(t *testing.T) {
	fileCfg := Config{
		Logging: LoggingConfig{Level: "debug", FilePath: "custom/run.log"},
		Paths:   PathsConfig{ReportsDir: "out"},
		Report:  ReportConfig{TopEmployees: 5},
	}
	envCfg := Config{
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}

	merged := mergeConfigs(fileCfg, envCfg)

	assert.Equal(t, "debug", merged.Logging.Level)
	assert.Equal(t, "custom/run.log", merged.Logging.FilePath)
	assert.Equal(t, "out", merged.Paths.ReportsDir)
	assert.Equal(t, 5, merged.Report.TopEmployees)
}
