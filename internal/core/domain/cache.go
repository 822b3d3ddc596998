package domain

// ColorCacheEntry is the single persisted result of a color extraction.
// It is valid for a wallpaper only while both the path and the whole-second
// modification time still match.
type ColorCacheEntry struct {
	WallpaperPath  string            `json:"wallpaper_path"`
	WallpaperMtime uint64            `json:"wallpaper_mtime"`
	Colors         map[string]string `json:"colors"`
}

// ValidFor reports whether the entry describes the wallpaper at path with the given mtime.
func (e *ColorCacheEntry) ValidFor(path string, mtime uint64) bool {
	return e != nil && e.WallpaperPath == path && e.WallpaperMtime == mtime
}
