package colors_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wrp/internal/adapters/matugen"
	"go.trai.ch/wrp/internal/adapters/store"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/wrp/internal/core/ports/mocks"
	"go.trai.ch/wrp/internal/engine/colors"
	"go.uber.org/mock/gomock"
)

var (
	baseTime = time.Unix(1_700_000_000, 0)
	palette  = map[string]string{"primary": "#112233", "tertiary": "#445566"}
)

func writeWallpaper(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("image"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func TestManager_SecondCallIsCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil).Times(1)

	m := colors.NewManager(store.NewMemoryStore(), extractor, quietLogger(ctrl))

	got, ok := m.Get(context.Background(), wall)
	require.True(t, ok)
	assert.Equal(t, palette, got)

	got, ok = m.Get(context.Background(), wall)
	require.True(t, ok)
	assert.Equal(t, palette, got)
}

func TestManager_PersistsPathAndMtime(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)
	cache := store.NewMemoryStore()

	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil)

	m := colors.NewManager(cache, extractor, quietLogger(ctrl))
	_, ok := m.Get(context.Background(), wall)
	require.True(t, ok)

	entry, err := cache.Load()
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, wall, entry.WallpaperPath)
	assert.Equal(t, uint64(baseTime.Unix()), entry.WallpaperMtime)
	assert.Equal(t, palette, entry.Colors)
}

func TestManager_MtimeChangeReextracts(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	updated := map[string]string{"primary": "#aabbcc"}
	gomock.InOrder(
		extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil),
		extractor.EXPECT().Extract(gomock.Any(), wall).Return(updated, nil),
	)

	m := colors.NewManager(store.NewMemoryStore(), extractor, quietLogger(ctrl))

	_, ok := m.Get(context.Background(), wall)
	require.True(t, ok)

	later := baseTime.Add(time.Second)
	require.NoError(t, os.Chtimes(wall, later, later))

	got, ok := m.Get(context.Background(), wall)
	require.True(t, ok)
	assert.Equal(t, updated, got)
}

func TestManager_SubSecondChangeStillHits(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil).Times(1)

	m := colors.NewManager(store.NewMemoryStore(), extractor, quietLogger(ctrl))
	_, ok := m.Get(context.Background(), wall)
	require.True(t, ok)

	// Same whole second: accepted as unchanged.
	sameSecond := baseTime.Add(400 * time.Millisecond)
	require.NoError(t, os.Chtimes(wall, sameSecond, sameSecond))

	_, ok = m.Get(context.Background(), wall)
	require.True(t, ok)
}

func TestManager_PathChangeReextracts(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	dir := t.TempDir()
	first := writeWallpaper(t, dir, "first.png", baseTime)
	second := writeWallpaper(t, dir, "second.png", baseTime)

	extractor.EXPECT().Extract(gomock.Any(), first).Return(palette, nil).Times(1)
	extractor.EXPECT().Extract(gomock.Any(), second).Return(palette, nil).Times(1)

	m := colors.NewManager(store.NewMemoryStore(), extractor, quietLogger(ctrl))

	_, ok := m.Get(context.Background(), first)
	require.True(t, ok)
	_, ok = m.Get(context.Background(), second)
	require.True(t, ok)
}

func TestManager_PathComparedExactly(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	dir := t.TempDir()
	wall := writeWallpaper(t, dir, "wall.png", baseTime)
	alias := dir + "/./wall.png"

	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil).Times(1)
	extractor.EXPECT().Extract(gomock.Any(), alias).Return(palette, nil).Times(1)

	m := colors.NewManager(store.NewMemoryStore(), extractor, quietLogger(ctrl))

	_, ok := m.Get(context.Background(), wall)
	require.True(t, ok)
	_, ok = m.Get(context.Background(), alias)
	require.True(t, ok)
}

func TestManager_InvalidateForcesMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil).Times(2)

	m := colors.NewManager(store.NewMemoryStore(), extractor, quietLogger(ctrl))

	_, ok := m.Get(context.Background(), wall)
	require.True(t, ok)

	m.Invalidate()

	_, ok = m.Get(context.Background(), wall)
	require.True(t, ok)
}

func TestManager_InvalidateOnEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := store.NewFileStore(filepath.Join(t.TempDir(), "matuwrap", "colors.json"))

	m := colors.NewManager(cache, mocks.NewMockColorExtractor(ctrl), quietLogger(ctrl))

	assert.NotPanics(t, m.Invalidate)
	assert.NotPanics(t, m.Invalidate)
}

func TestManager_InvalidateSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockColorCacheStore(ctrl)
	log := mocks.NewMockLogger(ctrl)

	cache.EXPECT().Delete().Return(domain.ErrStoreDeleteFailed)
	log.EXPECT().Debug(gomock.Any()).Times(1)

	m := colors.NewManager(cache, mocks.NewMockColorExtractor(ctrl), log)
	m.Invalidate()
}

func TestManager_ExtractionFailureMeansNoColors(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)
	cache := store.NewMemoryStore()

	extractor.EXPECT().Extract(gomock.Any(), wall).Return(nil, domain.ErrProcessFailed)

	m := colors.NewManager(cache, extractor, quietLogger(ctrl))

	got, ok := m.Get(context.Background(), wall)
	assert.False(t, ok)
	assert.Nil(t, got)

	entry, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestManager_MissingWallpaperIsMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	missing := filepath.Join(t.TempDir(), "gone.png")
	cache := store.NewMemoryStore()

	// A stale entry for the same path must not be served.
	require.NoError(t, cache.Save(&domain.ColorCacheEntry{
		WallpaperPath:  missing,
		WallpaperMtime: uint64(baseTime.Unix()),
		Colors:         palette,
	}))
	extractor.EXPECT().Extract(gomock.Any(), missing).Return(nil, domain.ErrSpawnFailed)

	m := colors.NewManager(cache, extractor, quietLogger(ctrl))

	_, ok := m.Get(context.Background(), missing)
	assert.False(t, ok)
}

func TestManager_SaveFailureStillReturnsColors(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	cache := mocks.NewMockColorCacheStore(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	cache.EXPECT().Load().Return(nil, nil)
	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil)
	cache.EXPECT().Save(gomock.Any()).Return(domain.ErrStoreWriteFailed)

	m := colors.NewManager(cache, extractor, quietLogger(ctrl))

	got, ok := m.Get(context.Background(), wall)
	require.True(t, ok)
	assert.Equal(t, palette, got)
}

func TestManager_UnreadableCacheIsMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	cache := mocks.NewMockColorCacheStore(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	cache.EXPECT().Load().Return(nil, domain.ErrStoreReadFailed)
	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil)
	cache.EXPECT().Save(gomock.Any()).Return(nil)

	m := colors.NewManager(cache, extractor, quietLogger(ctrl))

	got, ok := m.Get(context.Background(), wall)
	require.True(t, ok)
	assert.Equal(t, palette, got)
}

func TestManager_CorruptCacheFileIsMiss(t *testing.T) {
	for _, content := range []string{
		`{"wallpaper_path": "/x", "wallpaper_mt`,
		`not json at all`,
		``,
		`{"wallpaper_path": 12}`,
	} {
		t.Run(content, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			extractor := mocks.NewMockColorExtractor(ctrl)
			dir := t.TempDir()
			wall := writeWallpaper(t, dir, "wall.png", baseTime)
			cachePath := filepath.Join(dir, "cache", "colors.json")
			require.NoError(t, os.MkdirAll(filepath.Dir(cachePath), 0o750))
			require.NoError(t, os.WriteFile(cachePath, []byte(content), 0o644))

			extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil).Times(1)

			m := colors.NewManager(store.NewFileStore(cachePath), extractor, quietLogger(ctrl))

			got, ok := m.Get(context.Background(), wall)
			require.True(t, ok)
			assert.Equal(t, palette, got)

			// The corrupt file was overwritten with a valid entry.
			_, ok = m.Get(context.Background(), wall)
			require.True(t, ok)
		})
	}
}

func TestManager_IncompleteCacheEntryIsMiss(t *testing.T) {
	tests := []struct {
		name   string
		colors string
	}{
		{name: "missing colors", colors: ""},
		{name: "null colors", colors: `,"colors":null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			extractor := mocks.NewMockColorExtractor(ctrl)
			dir := t.TempDir()
			wall := writeWallpaper(t, dir, "wall.png", baseTime)
			cachePath := filepath.Join(dir, "colors.json")
			body := fmt.Sprintf(`{"wallpaper_path":%s,"wallpaper_mtime":%d%s}`,
				strconv.Quote(wall), baseTime.Unix(), tt.colors)
			require.NoError(t, os.WriteFile(cachePath, []byte(body), 0o644))

			extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil).Times(1)

			m := colors.NewManager(store.NewFileStore(cachePath), extractor, quietLogger(ctrl))

			got, ok := m.Get(context.Background(), wall)
			require.True(t, ok)
			assert.Equal(t, palette, got)

			got, ok = m.Get(context.Background(), wall)
			require.True(t, ok)
			assert.Equal(t, palette, got)
		})
	}
}

func TestManager_NegativeMtimeIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	cache := store.NewMemoryStore()
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	stat := func(string) (os.FileInfo, error) {
		return fakeInfo{mod: time.Unix(-5, 0)}, nil
	}
	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil).Times(2)

	m := colors.NewManager(cache, extractor, quietLogger(ctrl), colors.WithStat(stat))

	_, ok := m.Get(context.Background(), wall)
	require.True(t, ok)
	_, ok = m.Get(context.Background(), wall)
	require.True(t, ok)

	entry, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestManager_TracesLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockColorExtractor(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	tracer.EXPECT().Start(gomock.Any(), "colors.get").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().SetAttribute("wallpaper", wall)
	span.EXPECT().End()
	extractor.EXPECT().Extract(gomock.Any(), wall).Return(palette, nil)

	m := colors.NewManager(store.NewMemoryStore(), extractor, quietLogger(ctrl), colors.WithTracer(tracer))

	_, ok := m.Get(context.Background(), wall)
	require.True(t, ok)
}

// Drives the real extractor so the process runner itself is the thing
// asserted not to be re-invoked.
func TestManager_RunnerInvokedOnceWithMatugen(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	output := []byte(`{"colors":{"primary":{"dark":"#112233","default":"#000000"},"surface":"#0a0b0c","bogus":{"light":"#ffffff"}}}`)
	runner.EXPECT().
		Run(gomock.Any(), "matugen", []string{
			"image", wall, "--dry-run", "--json", "hex", "--type", "scheme-tonal-spot", "--mode", "dark",
		}).
		Return(output, nil).
		Times(1)

	extractor := matugen.NewExtractor(runner, "matugen", "scheme-tonal-spot")
	m := colors.NewManager(store.NewMemoryStore(), extractor, quietLogger(ctrl))

	want := map[string]string{"primary": "#112233", "surface": "#0a0b0c"}
	for range 3 {
		got, ok := m.Get(context.Background(), wall)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestManager_RunnerFailureMeansNoColors(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	wall := writeWallpaper(t, t.TempDir(), "wall.png", baseTime)

	runner.EXPECT().Run(gomock.Any(), "matugen", gomock.Any()).
		Return(nil, errors.Join(domain.ErrProcessFailed, errors.New("exit status 1")))

	m := colors.NewManager(store.NewMemoryStore(), matugen.NewExtractor(runner, "matugen", "scheme-tonal-spot"), quietLogger(ctrl))

	got, ok := m.Get(context.Background(), wall)
	assert.False(t, ok)
	assert.Nil(t, got)
}

type fakeInfo struct {
	os.FileInfo
	mod time.Time
}

func (f fakeInfo) ModTime() time.Time { return f.mod }
