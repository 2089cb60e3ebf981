package toast

import "time"

// Config holds environment-driven settings for a toast manager.
type Config struct {
	MaxActive       int           `env:"TOAST_MAX_ACTIVE" envDefault:"5"`
	DefaultDuration time.Duration `env:"TOAST_DEFAULT_DURATION" envDefault:"5s"`
	ErrorDuration   time.Duration `env:"TOAST_ERROR_DURATION" envDefault:"8s"`
	WarningDuration time.Duration `env:"TOAST_WARNING_DURATION" envDefault:"6s"`
	StreamBuffer    int           `env:"TOAST_STREAM_BUFFER" envDefault:"1"`
}

// NewManagerFromConfig creates a manager from env-driven settings.
// Additional options are applied after the config and may override it.
func NewManagerFromConfig(cfg Config, opts ...Option) *Manager {
	base := []Option{
		WithMaxActive(cfg.MaxActive),
		WithDefaultDuration(cfg.DefaultDuration),
		WithKindDuration(KindError, cfg.ErrorDuration),
		WithKindDuration(KindWarning, cfg.WarningDuration),
		WithStreamBuffer(cfg.StreamBuffer),
	}
	return NewManager(append(base, opts...)...)
}
