package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 25.0, cfg.Search.DefaultRadiusKm)
	assert.Equal(t, 4, cfg.Search.PageSizeNarrow)
	assert.Equal(t, 8, cfg.Search.PageSizeWide)
	assert.Equal(t, 10, cfg.Dedup.Candidates)
	assert.Equal(t, 0.92, cfg.Dedup.JWThreshold)
	assert.Equal(t, 1, cfg.Dedup.MaxPhoneEdits)
	assert.Equal(t, "firms", cfg.Meili.FirmIndex)
	assert.Equal(t, "partner_applications", cfg.Meili.ApplicationIndex)
}

func TestPageSizeTiers(t *testing.T) {
	s := Defaults().Search

	assert.Equal(t, 8, s.PageSize(0), "missing hint falls back to the wide tier")
	assert.Equal(t, 8, s.PageSize(-1))
	assert.Equal(t, 4, s.PageSize(1))
	assert.Equal(t, 4, s.PageSize(4))
	assert.Equal(t, 8, s.PageSize(5))
	assert.Equal(t, 8, s.PageSize(100))
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "directory.yaml")

	yaml := "search:\n  default_radius_km: 40\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	old := C
	defer func() { C = old }()

	require.NoError(t, Load(path))
	assert.Equal(t, 40.0, C.Search.DefaultRadiusKm)
	// Untouched sections keep their defaults.
	assert.Equal(t, 8, C.Search.PageSizeWide)
	assert.Equal(t, 0.92, C.Dedup.JWThreshold)
}

func TestLoadMissingFile(t *testing.T) {
	assert.Error(t, Load("/nonexistent/directory.yaml"))
}
