package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	noDotenv(t)
	t.Setenv("DATABASE_URL", "sqlite://journal.db")
	t.Setenv("ADDRESS", "127.0.0.1:9000")
	t.Setenv("SUBMIT_DELAY", "0s")
	t.Setenv("STRICT_ENTRY_TYPES", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "sqlite://journal.db", c.DatabaseDSN)
	assert.Equal(t, "127.0.0.1:9000", c.EndpointAddrHTTP)
	assert.Equal(t, time.Duration(0), c.SubmitDelay)
	assert.True(t, c.StrictEntryTypes)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
}

func TestParseEnv_InvalidValuesPanic(t *testing.T) {
	noDotenv(t)

	t.Run("delay", func(t *testing.T) {
		t.Setenv("SUBMIT_DELAY", "soon")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("strict", func(t *testing.T) {
		t.Setenv("STRICT_ENTRY_TYPES", "maybe")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}

func TestParseEnv_ReadsDotenvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_URL=sqlite://from-dotenv.db\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// t.Setenv registers a restore of the original value; the unset below
	// lets godotenv fill the variable in.
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "sqlite://from-dotenv.db", c.DatabaseDSN)
}
