package lineid

import "io"

type config struct {
	redshift    bool
	estimator   Config
	diagnostics io.Writer
}

func defaultConfig() config {
	return config{
		redshift:  false,
		estimator: DefaultConfig(),
	}
}

// Option configures an [Identify] run.
type Option func(*config)

// WithRedshift enables or disables the redshift estimation stage.
// It is disabled by default.
func WithRedshift(enabled bool) Option {
	return func(cfg *config) {
		cfg.redshift = enabled
	}
}

// WithZRange sets the acceptable redshift range for the rejection pass.
func WithZRange(zMin, zMax float64) Option {
	return func(cfg *config) {
		cfg.estimator.ZMin = zMin
		cfg.estimator.ZMax = zMax
	}
}

// WithClip sets the median-clip radius for the rejection pass.
func WithClip(clip float64) Option {
	return func(cfg *config) {
		cfg.estimator.Clip = clip
	}
}

// WithDiagnostics streams the ordered diagnostic text to w.
// No diagnostics are emitted by default.
func WithDiagnostics(w io.Writer) Option {
	return func(cfg *config) {
		cfg.diagnostics = w
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
