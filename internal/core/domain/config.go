package domain

// Config is the resolved helper configuration.
type Config struct {
	Wallpaper string
	Colors    ColorsConfig
	Audio     AudioConfig
	Notify    NotifyConfig
}

// ColorsConfig selects the extraction tool and scheme.
type ColorsConfig struct {
	Tool   string
	Scheme string
}

// AudioConfig selects the audio tool and the patterns used by toggle.
type AudioConfig struct {
	Tool    string
	HDMI    string
	Headset string
}

// NotifyConfig controls desktop notifications.
type NotifyConfig struct {
	Enabled   bool
	AppName   string
	TimeoutMS int
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Wallpaper: DefaultWallpaper,
		Colors: ColorsConfig{
			Tool:   "matugen",
			Scheme: "scheme-tonal-spot",
		},
		Audio: AudioConfig{
			Tool:    "wpctl",
			HDMI:    "HDMI|AD103",
			Headset: "HyperX|Headset",
		},
		Notify: NotifyConfig{
			Enabled:   true,
			AppName:   AppDirName,
			TimeoutMS: 2000,
		},
	}
}
