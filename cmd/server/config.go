package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DfltListenAddress    = ":8080"
	DfltReadTimeoutSecs  = 10
	DfltWriteTimeoutSecs = 30
	DfltLogLevel         = "info"
	DfltMaxBodyBytes     = 1 << 20
	DfltMaxSampleSize    = 100
	DfltMaxListSize      = 500
	DfltRenderWorkers    = 4
)

// Config is the server configuration file. Zero values are replaced by
// the Dflt* constants.
type Config struct {
	ListenAddress      string   `yaml:"listenAddress"`
	ReadTimeoutSecs    int      `yaml:"readTimeoutSecs"`
	WriteTimeoutSecs   int      `yaml:"writeTimeoutSecs"`
	LogPath            string   `yaml:"logPath"`
	LogLevel           string   `yaml:"logLevel"`
	CORSAllowedOrigins []string `yaml:"corsAllowedOrigins"`
	MaxBodyBytes       int64    `yaml:"maxBodyBytes"`
	MaxSampleSize      int      `yaml:"maxSampleSize"`
	MaxListSize        int      `yaml:"maxListSize"`
	RenderWorkers      int      `yaml:"renderWorkers"`
}

// LoadConfig reads a YAML configuration. An empty path yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	conf := &Config{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, conf); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	conf.applyDefaults()
	return conf, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = DfltListenAddress
	}
	if c.ReadTimeoutSecs == 0 {
		c.ReadTimeoutSecs = DfltReadTimeoutSecs
	}
	if c.WriteTimeoutSecs == 0 {
		c.WriteTimeoutSecs = DfltWriteTimeoutSecs
	}
	if c.LogLevel == "" {
		c.LogLevel = DfltLogLevel
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DfltMaxBodyBytes
	}
	if c.MaxSampleSize == 0 {
		c.MaxSampleSize = DfltMaxSampleSize
	}
	if c.MaxListSize == 0 {
		c.MaxListSize = DfltMaxListSize
	}
	if c.RenderWorkers == 0 {
		c.RenderWorkers = DfltRenderWorkers
	}
}

func (c *Config) Validate() error {
	if _, ok := levelMapping[c.LogLevel]; !ok {
		return fmt.Errorf("invalid logLevel %q", c.LogLevel)
	}
	if c.ReadTimeoutSecs < 0 || c.WriteTimeoutSecs < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("maxBodyBytes must not be negative")
	}
	if c.MaxSampleSize < 0 || c.MaxListSize < 0 {
		return fmt.Errorf("maxSampleSize and maxListSize must not be negative")
	}
	if c.RenderWorkers < 0 {
		return fmt.Errorf("renderWorkers must not be negative")
	}
	return nil
}
