package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Output.Path != "../test/fixture/word34567.txt" {
		t.Errorf("expected default output path, got %s", cfg.Output.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected Level=warn, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("WORDFIXTURE_OUTPUT", "")
	t.Setenv("WORDFIXTURE_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	// Ensure no env vars interfere
	t.Setenv("WORDFIXTURE_OUTPUT", "")
	t.Setenv("WORDFIXTURE_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "wordfixture.yaml")

	cfg := DefaultConfig()
	cfg.Output.Path = "out/words.txt"
	cfg.Logging.Format = "json"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out/words.txt", loaded.Output.Path)
	assert.Equal(t, "json", loaded.Logging.Format)
	assert.Equal(t, "warn", loaded.Logging.Level)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("WORDFIXTURE_OUTPUT", "")
	t.Setenv("WORDFIXTURE_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "wordfixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, DefaultConfig().Output.Path, cfg.Output.Path)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordfixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unterminated\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("output path", func(t *testing.T) {
		t.Setenv("WORDFIXTURE_OUTPUT", "/tmp/words.txt")
		t.Setenv("WORDFIXTURE_LOG_LEVEL", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/words.txt", cfg.Output.Path)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv("WORDFIXTURE_OUTPUT", "")
		t.Setenv("WORDFIXTURE_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, DefaultConfig().Output.Path, cfg.Output.Path)
	})

	t.Run("env beats file", func(t *testing.T) {
		t.Setenv("WORDFIXTURE_OUTPUT", "from-env.txt")
		t.Setenv("WORDFIXTURE_LOG_LEVEL", "")

		path := filepath.Join(t.TempDir(), "wordfixture.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  path: from-file.txt\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env.txt", cfg.Output.Path)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty path", func(c *Config) { c.Output.Path = "" }, "output path not configured"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
		{"json debug", func(c *Config) { c.Logging.Level = "debug"; c.Logging.Format = "json" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
