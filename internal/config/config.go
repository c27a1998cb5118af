// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	TexturesDir    string `yaml:"textures_dir"`
	ShowBackground bool   `yaml:"show_background"`
	ShowPickBounds bool   `yaml:"show_pick_bounds"` // wireframe over the selected object
	ScreenshotDir  string `yaml:"screenshot_dir"`
}

// AudioConfig holds ambient audio settings.
type AudioConfig struct {
	CrackleEnabled bool    `yaml:"crackle_enabled"`
	CrackleVolume  float64 `yaml:"crackle_volume"`
	Muted          bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 80,
		},
		Scene: SceneConfig{
			TexturesDir:    "textures",
			ShowBackground: true,
			ShowPickBounds: true,
			ScreenshotDir:  "screenshots",
		},
		Audio: AudioConfig{
			CrackleEnabled: true,
			CrackleVolume:  0.6,
			Muted:          false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
