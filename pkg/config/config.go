package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendPAPI = "papi"
	BackendPerf = "perf"
)

// Config drives the exporter. Every field can be set from the environment
// and overridden by a command line flag.
type Config struct {
	Kubeconfig string `env:"KUBECONFIG"`
	NodeName   string `env:"NODE_NAME"`
	Namespace  string `env:"PAPI_EXPORTER_NAMESPACE" envDefault:"default"`

	Backend    string        `env:"PAPI_EXPORTER_BACKEND" envDefault:"papi"`
	Events     []string      `env:"PAPI_EXPORTER_EVENTS" envSeparator:"," envDefault:"PAPI_TOT_CYC,PAPI_TOT_INS"`
	Window     time.Duration `env:"PAPI_EXPORTER_WINDOW" envDefault:"10s"`
	Interval   time.Duration `env:"PAPI_EXPORTER_INTERVAL" envDefault:"60s"`
	ListenAddr string        `env:"PAPI_EXPORTER_LISTEN" envDefault:":8080"`
	CgroupRoot string        `env:"PAPI_EXPORTER_CGROUP_ROOT" envDefault:"/sys/fs/cgroup/kubepods.slice"`

	// PAPI knobs
	Component string `env:"PAPI_EXPORTER_COMPONENT" envDefault:"perf_event"`
	Multiplex bool   `env:"PAPI_EXPORTER_MULTIPLEX"`
	Debug     int    `env:"PAPI_EXPORTER_DEBUG"`

	// Read by libpapi itself for the high level API.
	HLEvents    string `env:"PAPI_EVENTS"`
	HLOutputDir string `env:"PAPI_OUTPUT_DIRECTORY"`
}

// Load parses the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendPAPI, BackendPerf:
	default:
		return fmt.Errorf("unknown collector backend: %s", c.Backend)
	}
	if len(c.Events) == 0 {
		return fmt.Errorf("no events to collect")
	}
	if c.NodeName == "" {
		return fmt.Errorf("node name is required")
	}
	if c.Window <= 0 || c.Interval <= 0 {
		return fmt.Errorf("window and interval must be positive, got %s and %s", c.Window, c.Interval)
	}
	if c.Window >= c.Interval {
		return fmt.Errorf("window %s must be shorter than interval %s", c.Window, c.Interval)
	}
	return nil
}

// ExportHighLevel publishes the high level settings to the environment
// libpapi reads them from.
func (c *Config) ExportHighLevel() error {
	if c.HLEvents != "" {
		if err := os.Setenv("PAPI_EVENTS", c.HLEvents); err != nil {
			return err
		}
	}
	if c.HLOutputDir != "" {
		if err := os.Setenv("PAPI_OUTPUT_DIRECTORY", c.HLOutputDir); err != nil {
			return err
		}
	}
	return nil
}
