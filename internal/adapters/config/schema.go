package config

import "go.trai.ch/wrp/internal/core/domain"

// Configfile represents the structure of config.yaml.
type Configfile struct {
	Wallpaper string    `yaml:"wallpaper"`
	Colors    ColorsDTO `yaml:"colors"`
	Audio     AudioDTO  `yaml:"audio"`
	Notify    NotifyDTO `yaml:"notify"`
}

// ColorsDTO configures color extraction.
type ColorsDTO struct {
	Tool   string `yaml:"tool"`
	Scheme string `yaml:"scheme"`
}

// AudioDTO configures the audio tool and toggle patterns.
type AudioDTO struct {
	Tool    string `yaml:"tool"`
	HDMI    string `yaml:"hdmi"`
	Headset string `yaml:"headset"`
}

// NotifyDTO configures desktop notifications.
type NotifyDTO struct {
	Enabled   bool   `yaml:"enabled"`
	AppName   string `yaml:"app_name"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

func fromDomain(c *domain.Config) Configfile {
	return Configfile{
		Wallpaper: c.Wallpaper,
		Colors:    ColorsDTO{Tool: c.Colors.Tool, Scheme: c.Colors.Scheme},
		Audio:     AudioDTO{Tool: c.Audio.Tool, HDMI: c.Audio.HDMI, Headset: c.Audio.Headset},
		Notify: NotifyDTO{
			Enabled:   c.Notify.Enabled,
			AppName:   c.Notify.AppName,
			TimeoutMS: c.Notify.TimeoutMS,
		},
	}
}

func (f *Configfile) toDomain() *domain.Config {
	return &domain.Config{
		Wallpaper: domain.ExpandHome(f.Wallpaper),
		Colors:    domain.ColorsConfig{Tool: f.Colors.Tool, Scheme: f.Colors.Scheme},
		Audio:     domain.AudioConfig{Tool: f.Audio.Tool, HDMI: f.Audio.HDMI, Headset: f.Audio.Headset},
		Notify: domain.NotifyConfig{
			Enabled:   f.Notify.Enabled,
			AppName:   f.Notify.AppName,
			TimeoutMS: f.Notify.TimeoutMS,
		},
	}
}
