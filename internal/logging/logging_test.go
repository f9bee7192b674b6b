package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/romatype/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	log, closer, err := New(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "romatype.log")
	log, closer, err := New(config.LogConfig{File: path, Level: "info"})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("session_id", "abc").Msg("session started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"session_id":"abc"`)
	assert.Contains(t, out, `"app":"romatype"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}
