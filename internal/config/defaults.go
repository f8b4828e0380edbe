package config

import "time"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			StaticDir:       "public",
			Index:           "public/index.html",
			CVPath:          "CV.pdf",
			CVFilename:      "Victor_CV.pdf",
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Analytics: AnalyticsConfig{
			Enabled:   true,
			DSN:       "file:portfolio?mode=memory&cache=shared",
			Retention: 365 * 24 * time.Hour,
			QueueSize: 256,
		},
		Background: BackgroundConfig{
			Particles:    200,
			LinkDistance: 100,
			Primary:      "#23aeb3",
			Accent:       "#02385c",
		},
	}
}
