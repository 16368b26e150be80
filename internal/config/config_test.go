package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultStressSize, cfg.Stress.Size)
	assert.Equal(t, DefaultStressRounds, cfg.Stress.Rounds)
	assert.Equal(t, int64(DefaultStressSeed), cfg.Stress.Seed)
	assert.Empty(t, cfg.Stress.Variants)
	assert.True(t, cfg.Color)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazyseg.yaml")
	content := "stress:\n  size: 50\n  rounds: 7\n  seed: 42\n  variants: [SumAdd, MinAdd]\ncolor: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Stress.Size)
	assert.Equal(t, 7, cfg.Stress.Rounds)
	assert.Equal(t, int64(42), cfg.Stress.Seed)
	assert.Equal(t, []string{"SumAdd", "MinAdd"}, cfg.Stress.Variants)
	assert.False(t, cfg.Color)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LAZYSEG_STRESS_SIZE", "123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 123, cfg.Stress.Size)
}

func TestLoadRejectsNegativeSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazyseg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stress:\n  size: -1\n"), 0o600))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
