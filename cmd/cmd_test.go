package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"studycards.app/configs"
	"studycards.app/pkg/flashgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "import"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
	assert.NotNil(t, migrateCmd.Flags().Lookup("seed"))
	assert.NotNil(t, serveCmd.Flags().Lookup("migrate"))
}

func TestNewGenerator(t *testing.T) {
	gen := newGenerator(configs.AIConfig{})
	chain, ok := gen.(*flashgen.Chain)
	require.True(t, ok)
	assert.Nil(t, chain.Primary)

	gen = newGenerator(configs.AIConfig{APIKey: "sk-test", BaseURL: "http://localhost", Model: "m", MaxRetries: 1})
	chain, ok = gen.(*flashgen.Chain)
	require.True(t, ok)
	assert.NotNil(t, chain.Primary)
}

func TestDescribeDB(t *testing.T) {
	assert.Equal(t, "sqlite:cards.db", describeDB(configs.DBConfig{Driver: "sqlite", Path: "cards.db"}))
	assert.Equal(t, "postgres://app@db:5432/cards",
		describeDB(configs.DBConfig{Driver: "postgres", User: "app", Host: "db", Port: "5432", Name: "cards"}))
}

// Bağlantı paket düzeyinde bir kez kurulduğu için veritabanına dokunan tek test budur.
func TestImportCommand_CSV(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "cards.db"))
	t.Setenv("SCHEDULER_ENABLED", "false")

	csvPath := filepath.Join(dir, "deck.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("question,answer\nWhat is 2+2?,4\nCapital of Japan?,Tokyo\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"import", csvPath, "--env-file", filepath.Join(dir, "missing.env")})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Capital of Japan?")
	assert.Contains(t, out.String(), "2 cards imported from deck.csv")
}
