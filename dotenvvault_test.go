package dotenvvault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testVaultEntry = "DOTENV_VAULT_PRODUCTION=\"s7NYXa809k/bVSPwIAmJhPJmEGTtU0hG58hOZy7I0ix6y5HP8LsHBsZCYC/gw5DDFy5DgOcyd18R\"\n"
	testKeyURI     = "dotenv://:key_ddcaa26504cd70a6fef9801901c3981538563a1767c297cb8416e8a38c62fe00@dotenv.local/vault/.env.vault?environment=production"
)

func setupWorkDir(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	t.Chdir(dir)
}

func TestLoad(t *testing.T) {
	t.Run("loads from encrypted vault", func(t *testing.T) {
		setupWorkDir(t, map[string]string{".env.vault": testVaultEntry})
		t.Setenv("DOTENV_KEY", testKeyURI)
		require.NoError(t, os.Unsetenv("ALPHA"))
		defer func() { _ = os.Unsetenv("ALPHA") }()

		require.NoError(t, Load())

		assert.Equal(t, "zeta", os.Getenv("ALPHA"))
	})

	t.Run("falls back to .env without a key", func(t *testing.T) {
		setupWorkDir(t, map[string]string{".env": "TESTKEY=\"from .env\"\n"})
		t.Setenv("DOTENV_VAULT_DEBUG", "true")
		require.NoError(t, os.Unsetenv("DOTENV_KEY"))
		require.NoError(t, os.Unsetenv("TESTKEY"))
		defer func() { _ = os.Unsetenv("TESTKEY") }()

		require.NoError(t, Load())

		assert.Equal(t, "from .env", os.Getenv("TESTKEY"))
	})

	t.Run("preserves existing variables", func(t *testing.T) {
		setupWorkDir(t, map[string]string{".env.vault": testVaultEntry})
		t.Setenv("DOTENV_KEY", testKeyURI)
		t.Setenv("ALPHA", "beta")

		require.NoError(t, Load())

		assert.Equal(t, "beta", os.Getenv("ALPHA"))
	})
}

func TestOverload(t *testing.T) {
	t.Run("overrides existing variables from vault", func(t *testing.T) {
		setupWorkDir(t, map[string]string{".env.vault": testVaultEntry})
		t.Setenv("DOTENV_KEY", testKeyURI)
		t.Setenv("ALPHA", "beta")

		require.NoError(t, Overload())

		assert.Equal(t, "zeta", os.Getenv("ALPHA"))
	})

	t.Run("overrides existing variables from fallback .env", func(t *testing.T) {
		setupWorkDir(t, map[string]string{".env": "TESTKEY=\"from .env\"\n"})
		t.Setenv("DOTENV_VAULT_DEBUG", "true")
		require.NoError(t, os.Unsetenv("DOTENV_KEY"))
		t.Setenv("TESTKEY", "helloworld")

		require.NoError(t, Overload())

		assert.Equal(t, "from .env", os.Getenv("TESTKEY"))
	})
}
