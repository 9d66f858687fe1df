// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	IBL      IBLConfig      `yaml:"ibl"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical field of view in degrees
}

// IBLConfig holds image-based-lighting bake settings.
type IBLConfig struct {
	CubemapSize     int    `yaml:"cubemap_size"`     // equirectangular conversion output
	PrefilterSize   int    `yaml:"prefilter_size"`   // specular prefilter base level
	PrefilterLevels int    `yaml:"prefilter_levels"` // max mip levels for the prefilter map
	Extension       string `yaml:"extension"`        // face file extension
	BundleDir       string `yaml:"bundle_dir"`       // where baked bundles live
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
			FOV:        60,
		},
		IBL: IBLConfig{
			CubemapSize:     1024,
			PrefilterSize:   128,
			PrefilterLevels: 5,
			Extension:       "png",
			BundleDir:       "ibl",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
