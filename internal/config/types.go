package config

import "time"

// Config is the full runtime configuration of the portfolio binary.
type Config struct {
	Server     ServerConfig     `koanf:"server" yaml:"server"`
	Log        LogConfig        `koanf:"log" yaml:"log"`
	Analytics  AnalyticsConfig  `koanf:"analytics" yaml:"analytics"`
	Background BackgroundConfig `koanf:"background" yaml:"background"`
}

// ServerConfig controls the HTTP listener and the files it serves.
type ServerConfig struct {
	Host            string        `koanf:"host" yaml:"host"`
	Port            int           `koanf:"port" yaml:"port"`
	StaticDir       string        `koanf:"static_dir" yaml:"static_dir"`
	Index           string        `koanf:"index" yaml:"index"`
	CVPath          string        `koanf:"cv_path" yaml:"cv_path"`
	CVFilename      string        `koanf:"cv_filename" yaml:"cv_filename"`
	Mode            string        `koanf:"mode" yaml:"mode"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// AnalyticsConfig controls visit counting.
type AnalyticsConfig struct {
	Enabled   bool          `koanf:"enabled" yaml:"enabled"`
	DSN       string        `koanf:"dsn" yaml:"dsn"`
	Retention time.Duration `koanf:"retention" yaml:"retention"`
	QueueSize int           `koanf:"queue_size" yaml:"queue_size"`
}

// BackgroundConfig tunes the particle field for the terminal preview.
type BackgroundConfig struct {
	Particles     int     `koanf:"particles" yaml:"particles"`
	LinkDistance  float64 `koanf:"link_distance" yaml:"link_distance"`
	ReducedMotion bool    `koanf:"reduced_motion" yaml:"reduced_motion"`
	Primary       string  `koanf:"primary" yaml:"primary"`
	Accent        string  `koanf:"accent" yaml:"accent"`
}
