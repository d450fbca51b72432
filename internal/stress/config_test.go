package stress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	require.NoError(t, c.validate())
	require.Equal(t, 80, c.ReadPercent)
	require.Equal(t, 10, c.AddPercent)
	require.Equal(t, 10, c.RemovePercent)
	require.Equal(t, DistributionUniform, c.Distribution)
}

func TestConfig_Validate(t *testing.T) {
	for _, test := range []struct {
		name string
		fn   func(c *Config)
	}{
		{"negative initial capacity", func(c *Config) { c.InitialCapacity = -1 }},
		{"negative max capacity", func(c *Config) { c.MaxCapacity = -1 }},
		{"negative lock stripes", func(c *Config) { c.LockStripes = -1 }},
		{"negative max kicks", func(c *Config) { c.MaxKicks = -1 }},
		{"negative prefill", func(c *Config) { c.Prefill = -1 }},
		{"zero operations", func(c *Config) { c.Operations = 0 }},
		{"zero goroutines", func(c *Config) { c.Goroutines = 0 }},
		{"negative percentage", func(c *Config) { c.ReadPercent = -10; c.AddPercent = 100; c.RemovePercent = 10 }},
		{"percentages above 100", func(c *Config) { c.ReadPercent = 90 }},
		{"zero key space", func(c *Config) { c.KeySpace = 0 }},
		{"key space below prefill", func(c *Config) { c.KeySpace = int64(c.Prefill) }},
		{"unknown distribution", func(c *Config) { c.Distribution = "pareto" }},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := DefaultConfig()
			test.fn(&c)
			require.Error(t, c.validate())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), c)
	})

	t.Run("file overrides a subset of fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stress.toml")
		content := []byte("goroutines = 4\noperations = 10000\ndistribution = \"zipfian\"\nseed = 42\n")
		require.NoError(t, os.WriteFile(path, content, 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 4, c.Goroutines)
		require.Equal(t, 10_000, c.Operations)
		require.Equal(t, DistributionZipfian, c.Distribution)
		require.Equal(t, int64(42), c.Seed)
		require.Equal(t, DefaultConfig().Prefill, c.Prefill)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stress.toml")
		require.NoError(t, os.WriteFile(path, []byte("goroutines = [,"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stress.toml")
		require.NoError(t, os.WriteFile(path, []byte("goroutines = 0\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})
}
