package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	assert.Equal(t, "", LoadEnv())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FINANCE_TEST_VALUE=from-dotenv\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("FINANCE_TEST_VALUE") })

	assert.Equal(t, ".env", LoadEnv())
	assert.Equal(t, "from-dotenv", os.Getenv("FINANCE_TEST_VALUE"))
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("FINANCE_TEST_KEEP", "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FINANCE_TEST_KEEP=from-dotenv\n"), 0600))

	LoadEnv()
	assert.Equal(t, "from-env", os.Getenv("FINANCE_TEST_KEEP"))
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.InfoLevel, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "DEBUG")
	assert.Equal(t, logrus.DebugLevel, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "loud")
	assert.Equal(t, logrus.InfoLevel, LevelFromEnv())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FINANCE_TEST_GETENV", "value")
	assert.Equal(t, "value", GetEnv("FINANCE_TEST_GETENV", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FINANCE_TEST_GETENV_MISSING_KEY", "fallback"))
}
