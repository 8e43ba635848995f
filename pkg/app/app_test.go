package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prepkit/pkg/catalog"
	"prepkit/pkg/config"
	"prepkit/pkg/drill"
)

// run isolates a call from the developer's environment and working directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"PREPKIT_LOG_LEVEL", "PREPKIT_FORMAT", "PREPKIT_CATALOG"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--env-file", filepath.Join(dir, "missing.env"),
	}

	var out bytes.Buffer
	err := Run(context.Background(), append(base, args...), &out, zap.NewNop())
	return out.String(), err
}

func TestRunDefaultPrintsEveryDrill(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Preparing for the interview\n"))
	assert.Contains(t, out, "[1 4 9 16 25 36 49 64 81]\n")
	assert.Contains(t, out, "[20 10]\n")
	assert.True(t, strings.HasSuffix(out, "Result received from A: 20\n50\n"))
}

func TestRunSelectedDrills(t *testing.T) {
	out, err := run(t, "--drill", "closure", "--drill", "filter")
	require.NoError(t, err)
	assert.Equal(t, "50\n[20 10]\n", out)

	out, err = run(t, "--drill", "greeting,closure")
	require.NoError(t, err)
	assert.Equal(t, "Preparing for the interview\n50\n", out)
}

func TestRunUnknownDrill(t *testing.T) {
	out, err := run(t, "--drill", "promises")
	assert.ErrorIs(t, err, drill.ErrUnknownDrill)
	assert.Empty(t, out)
}

func TestRunJSONFormat(t *testing.T) {
	out, err := run(t, "--format", "json", "--drill", "closure")
	require.NoError(t, err)
	assert.Equal(t, `{"drill":"closure","value":50}`+"\n", out)
}

func TestRunRejectsBadFormat(t *testing.T) {
	_, err := run(t, "--format", "xml")
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "prepkit version dev\n", out)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "greeting "))
	assert.True(t, strings.HasPrefix(lines[8], "prices "))
	assert.True(t, strings.HasSuffix(lines[8], "(run by name only)"))
}

func TestConfigFileAndCatalogOverride(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("books:\n  novel: 12\n"), 0o644))
	cfgPath := filepath.Join(dir, "prepkit.yaml")
	doc := "catalog_path: " + catalogPath + "\ndrills: [catalog, filter]\ninputs:\n  filter_threshold: 9\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o644))

	out, err := run(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "categories and items: {books: {novel: 12}}\n[20 10]\n", out)
}

func TestFlagLevelWinsOverBadEnvLevel(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PREPKIT_LOG_LEVEL=loud\n"), 0o644))

	out, err := run(t, "--env-file", envPath, "--log-level", "info", "--drill", "closure")
	require.NoError(t, err)
	assert.Equal(t, "50\n", out)

	_, err = run(t, "--env-file", envPath, "--drill", "closure")
	assert.ErrorContains(t, err, "invalid logging.level")
}

func TestRejectsOverflowingNumbers(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "prepkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("inputs:\n  numbers: [3, 9223372036854775807]\n"), 0o644))

	out, err := run(t, "--config", cfgPath)
	assert.ErrorContains(t, err, "overflows int")
	assert.Empty(t, out)
}

func TestPricesDrillFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "prepkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("inputs:\n  price_lookup: groceries/rice\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "--drill", "prices")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "groceries/wheat 25\nprice of groceries/rice: 30\n"))
}

func TestInitWritesDefaultConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "conf", "prepkit.yaml")

	out, err := run(t, "--config", cfgPath, "init")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+cfgPath+"\n", out)

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	_, err = run(t, "--config", cfgPath, "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "--config", cfgPath, "init", "--force")
	assert.NoError(t, err)

	out, err = run(t, "--config", cfgPath, "--drill", "closure")
	require.NoError(t, err)
	assert.Equal(t, "50\n", out)
}

func TestCatalogFlagWithBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	_, err := run(t, "--catalog", path)
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestEnvFileOverridesFormat(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PREPKIT_FORMAT=json\n"), 0o644))
	// run registers PREPKIT_FORMAT with t.Setenv, so the value godotenv sets is restored afterwards.
	out, err := run(t, "--env-file", envPath, "--drill", "closure")
	require.NoError(t, err)
	assert.Equal(t, `{"drill":"closure","value":50}`+"\n", out)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = newLogger("chatty")
	assert.Error(t, err)
}
