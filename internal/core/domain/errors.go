package domain

import "go.trai.ch/zerr"

var (
	// ErrSpawnFailed is returned when an external program cannot be launched at all.
	ErrSpawnFailed = zerr.New("failed to spawn process")

	// ErrProcessFailed is returned when an external program exits with a nonzero status.
	// The captured stderr is attached as the "stderr" metadata key.
	ErrProcessFailed = zerr.New("process exited with nonzero status")

	// ErrConnectionFailed is returned when the window manager socket cannot be reached.
	ErrConnectionFailed = zerr.New("failed to connect to window manager socket")

	// ErrMissingInstanceSignature is returned when HYPRLAND_INSTANCE_SIGNATURE is not set.
	ErrMissingInstanceSignature = zerr.New("HYPRLAND_INSTANCE_SIGNATURE is not set")

	// ErrIOFailed is returned when reading from or writing to a file or socket fails.
	ErrIOFailed = zerr.New("i/o failure")

	// ErrCacheDirUnavailable is returned when the platform cache directory cannot be determined.
	ErrCacheDirUnavailable = zerr.New("cache directory unavailable")

	// ErrStoreReadFailed is returned when the color cache file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read color cache")

	// ErrStoreWriteFailed is returned when the color cache file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write color cache")

	// ErrStoreDeleteFailed is returned when the color cache file cannot be removed.
	ErrStoreDeleteFailed = zerr.New("failed to delete color cache")

	// ErrStoreDecodeFailed is returned when the color cache file holds malformed JSON.
	ErrStoreDecodeFailed = zerr.New("failed to decode color cache")

	// ErrColorsMissing is returned when the extraction output has no top-level colors object.
	ErrColorsMissing = zerr.New("extraction output has no colors")

	// ErrInvalidExtractionOutput is returned when the extraction output is not a JSON object.
	ErrInvalidExtractionOutput = zerr.New("invalid extraction output")

	// ErrNoColors is returned when no palette could be produced for the wallpaper.
	ErrNoColors = zerr.New("no colors available")

	// ErrInvalidHexColor is returned when a color string is not #rrggbb.
	ErrInvalidHexColor = zerr.New("invalid hex color")

	// ErrSinkNotFound is returned when no audio sink matches the requested pattern.
	ErrSinkNotFound = zerr.New("audio sink not found")

	// ErrInvalidSinkID is returned when a sink id argument is not a non-negative integer.
	ErrInvalidSinkID = zerr.New("invalid sink id")

	// ErrInvalidResponse is returned when the window manager answers with malformed JSON.
	ErrInvalidResponse = zerr.New("invalid window manager response")

	// ErrNoMonitors is returned when the window manager reports no outputs.
	ErrNoMonitors = zerr.New("no monitors found")

	// ErrEmptyCommand is returned when no IPC command words were given.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidPattern is returned when a configured sink pattern is not a valid regular expression.
	ErrInvalidPattern = zerr.New("invalid sink pattern")

	// ErrWatchFailed is returned when the wallpaper cannot be watched for changes.
	ErrWatchFailed = zerr.New("failed to watch wallpaper")

	// ErrMetricUnavailable is returned when a system metric source has no usable data.
	ErrMetricUnavailable = zerr.New("metric unavailable")
)
