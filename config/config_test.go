package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "google", cfg.Synthesizer)
	assert.Equal(t, time.Duration(0), cfg.IndexCacheTTL())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
listen: ":9000"
language: en
synthesizer: elevenlabs
voice: BreKkXSwy4hr1vgm7ZqX
synthesis_rate: 2
index_ttl: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "elevenlabs", cfg.Synthesizer)
	assert.Equal(t, "BreKkXSwy4hr1vgm7ZqX", cfg.Voice)
	assert.Equal(t, 2.0, cfg.SynthesisRate)
	assert.Equal(t, 30*time.Second, cfg.IndexCacheTTL())
}

func TestLoadBadTTL(t *testing.T) {
	_, err := Load(writeConfig(t, "index_ttl: soon\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "index_ttl: -5s\n"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "listen: [:::\n"))
	assert.Error(t, err)
}
