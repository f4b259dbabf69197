package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DfltListenAddress, conf.ListenAddress)
	assert.Equal(t, DfltLogLevel, conf.LogLevel)
	assert.Equal(t, int64(DfltMaxBodyBytes), conf.MaxBodyBytes)
	assert.Equal(t, DfltRenderWorkers, conf.RenderWorkers)
	assert.NoError(t, conf.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	raw := "listenAddress: 127.0.0.1:9000\n" +
		"logLevel: debug\n" +
		"corsAllowedOrigins:\n  - https://example.org\n" +
		"maxSampleSize: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", conf.ListenAddress)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, []string{"https://example.org"}, conf.CORSAllowedOrigins)
	assert.Equal(t, 10, conf.MaxSampleSize)
	assert.Equal(t, DfltMaxListSize, conf.MaxListSize)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxSampleSize: [1, 2]\n"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	conf.LogLevel = "verbose"
	assert.Error(t, conf.Validate())

	conf.LogLevel = "warning"
	conf.RenderWorkers = -1
	assert.Error(t, conf.Validate())
}

func TestSetupLogFile(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	path := filepath.Join(t.TempDir(), "server.log")
	require.NoError(t, setupLog(path, "info"))
	_, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Error(t, setupLog("", "chatty"))
}
