package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wrp/internal/core/domain"
)

func TestColorCacheEntry_ValidFor(t *testing.T) {
	entry := &domain.ColorCacheEntry{WallpaperPath: "/w/a.png", WallpaperMtime: 100}

	assert.True(t, entry.ValidFor("/w/a.png", 100))
	assert.False(t, entry.ValidFor("/w/a.png", 101), "mtime changed")
	assert.False(t, entry.ValidFor("/w/b.png", 100), "path changed")
	assert.False(t, entry.ValidFor("/w/a.png/", 100), "path compared exactly")

	var nilEntry *domain.ColorCacheEntry
	assert.False(t, nilEntry.ValidFor("/w/a.png", 100))
}

func TestMonitor_LogicalSize(t *testing.T) {
	tests := []struct {
		transform int
		wantW     int
		wantH     int
	}{
		{transform: 0, wantW: 2560, wantH: 1440},
		{transform: 1, wantW: 1440, wantH: 2560},
		{transform: 2, wantW: 2560, wantH: 1440},
		{transform: 3, wantW: 1440, wantH: 2560},
		{transform: 4, wantW: 2560, wantH: 1440},
		{transform: 5, wantW: 1440, wantH: 2560},
		{transform: 7, wantW: 1440, wantH: 2560},
	}

	for _, tt := range tests {
		m := domain.Monitor{Width: 2560, Height: 1440, Transform: tt.transform}
		w, h := m.LogicalSize()
		assert.Equal(t, tt.wantW, w, "transform %d", tt.transform)
		assert.Equal(t, tt.wantH, h, "transform %d", tt.transform)
	}
}

func TestTransformLabel(t *testing.T) {
	assert.Equal(t, "none", domain.TransformLabel(0))
	assert.Equal(t, "90°", domain.TransformLabel(1))
	assert.Equal(t, "flipped 270°", domain.TransformLabel(7))
	assert.Equal(t, "unknown", domain.TransformLabel(8))
}

func TestMemoryInfo_UsedPercent(t *testing.T) {
	assert.InDelta(t, 25.0, domain.MemoryInfo{Total: 400, Used: 100}.UsedPercent(), 1e-9)
	assert.Zero(t, domain.MemoryInfo{}.UsedPercent())
}

func TestDefaultColorCachePath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache-home")

	p, err := domain.DefaultColorCachePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/cache-home", "matuwrap", "colors.json"), p)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("WRP_CONFIG", "/etc/wrp.yaml")
	p, err := domain.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/wrp.yaml", p)

	t.Setenv("WRP_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/config-home")
	p, err = domain.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/config-home", "matuwrap", "config.yaml"), p)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/user")

	assert.Equal(t, "/home/user/.current.wall", domain.ExpandHome("~/.current.wall"))
	assert.Equal(t, "/home/user", domain.ExpandHome("~"))
	assert.Equal(t, "/abs/path", domain.ExpandHome("/abs/path"))
	assert.Equal(t, "~other/x", domain.ExpandHome("~other/x"))
}
