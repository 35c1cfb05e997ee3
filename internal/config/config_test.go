package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "https://wger.de/api/v2", cfg.ReferenceAPI.BaseURL)
	assert.Equal(t, "exercisedb.p.rapidapi.com", cfg.ExerciseAPI.Host)
	assert.Equal(t, time.Duration(0), cfg.HTTP.Timeout)
	assert.Equal(t, "config", cfg.Catalog.Source)
	assert.Len(t, cfg.Catalog.BodyParts, 20)
	assert.Len(t, cfg.Catalog.Equipment, 24)
	assert.Equal(t, CategoryConfig{ID: 1, Name: "Chest"}, cfg.Catalog.BodyParts[0])
	assert.Contains(t, cfg.Media.Animations, "default")
	assert.Contains(t, cfg.Media.Images, "default")
	assert.Equal(t, []string{"chest"}, cfg.UI.FilterableCategories)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
http:
  timeout: 5s
media:
  images:
    chest: https://img.example/chest.jpg
    default: https://img.example/default.jpg
catalog:
  body_parts:
    - id: 7
      name: Neck
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("EXERCISE_API_HOST", "exercises.internal")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "exercises.internal", cfg.ExerciseAPI.Host)
	assert.Equal(t, map[string]string{
		"chest":   "https://img.example/chest.jpg",
		"default": "https://img.example/default.jpg",
	}, cfg.Media.Images)
	// Animations were not configured, so the built-in table applies.
	assert.Equal(t, DefaultAnimations(), cfg.Media.Animations)
	assert.Equal(t, []CategoryConfig{{ID: 7, Name: "Neck"}}, cfg.Catalog.BodyParts)
	assert.Len(t, cfg.Catalog.Equipment, 24)
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [::"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
