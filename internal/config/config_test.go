package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lauvinko.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
dictionary: other.json
server:
  addr: "localhost:9090"
log:
  level: debug
diffcheck:
  samples: 10
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.Dictionary)
	assert.Equal(t, "localhost:9090", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.DiffCheck.Samples)
	assert.Equal(t, 4, cfg.DiffCheck.Workers)
	assert.Equal(t, "paradigms.db", cfg.Store.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"level":   "log: {level: loud}",
		"addr":    "server: {addr: nowhere}",
		"rate":    "diffcheck: {max_mismatch_rate: 2}",
		"workers": "diffcheck: {workers: 0}",
		"yaml":    "server: [",
	}
	for name, body := range tests {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}

	_, err := Load(writeConfig(t, "log: {level: loud}"))
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Level", verrs[0].Field())
}
