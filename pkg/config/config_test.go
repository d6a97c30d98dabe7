package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Namespace)
	assert.Equal(t, BackendPAPI, cfg.Backend)
	assert.Equal(t, []string{"PAPI_TOT_CYC", "PAPI_TOT_INS"}, cfg.Events)
	assert.Equal(t, 10*time.Second, cfg.Window)
	assert.Equal(t, time.Minute, cfg.Interval)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "/sys/fs/cgroup/kubepods.slice", cfg.CgroupRoot)
	assert.Equal(t, "perf_event", cfg.Component)
	assert.False(t, cfg.Multiplex)
}

func TestFromEnvironment(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"NODE_NAME":               "node-a",
		"PAPI_EXPORTER_BACKEND":   "perf",
		"PAPI_EXPORTER_EVENTS":    "PAPI_TOT_CYC,PAPI_BR_MSP,PAPI_L3_TCM",
		"PAPI_EXPORTER_WINDOW":    "5s",
		"PAPI_EXPORTER_MULTIPLEX": "true",
		"PAPI_EXPORTER_DEBUG":     "1",
		"PAPI_EVENTS":             "PAPI_TOT_INS",
	})
	require.NoError(t, err)

	assert.Equal(t, "node-a", cfg.NodeName)
	assert.Equal(t, BackendPerf, cfg.Backend)
	assert.Equal(t, []string{"PAPI_TOT_CYC", "PAPI_BR_MSP", "PAPI_L3_TCM"}, cfg.Events)
	assert.Equal(t, 5*time.Second, cfg.Window)
	assert.True(t, cfg.Multiplex)
	assert.Equal(t, 1, cfg.Debug)
	assert.Equal(t, "PAPI_TOT_INS", cfg.HLEvents)
	assert.NoError(t, cfg.Validate())
}

func TestBadDuration(t *testing.T) {
	_, err := LoadFrom(map[string]string{"PAPI_EXPORTER_WINDOW": "soon"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			NodeName: "node-a",
			Backend:  BackendPAPI,
			Events:   []string{"PAPI_TOT_CYC"},
			Window:   time.Second,
			Interval: time.Minute,
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Backend = "libpfm4" }},
		{"no events", func(c *Config) { c.Events = nil }},
		{"no node", func(c *Config) { c.NodeName = "" }},
		{"zero window", func(c *Config) { c.Window = 0 }},
		{"window too long", func(c *Config) { c.Window = 2 * time.Minute }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestExportHighLevel(t *testing.T) {
	t.Setenv("PAPI_EVENTS", "")
	t.Setenv("PAPI_OUTPUT_DIRECTORY", "")

	cfg := &Config{HLEvents: "PAPI_TOT_INS,PAPI_TOT_CYC", HLOutputDir: "/tmp/papi"}
	require.NoError(t, cfg.ExportHighLevel())
	assert.Equal(t, "PAPI_TOT_INS,PAPI_TOT_CYC", os.Getenv("PAPI_EVENTS"))
	assert.Equal(t, "/tmp/papi", os.Getenv("PAPI_OUTPUT_DIRECTORY"))
}
