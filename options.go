package extsvc

import "log/slog"

// validatorOptions hold optional Validator settings.
type validatorOptions struct {
	catalog *Catalog
	decoder Decoder
	logger  *slog.Logger
}

// Option configures a Validator (e.g. WithCatalog, WithLogger).
type Option func(*validatorOptions)

// WithCatalog replaces DefaultCatalog. A nil catalog is ignored.
func WithCatalog(c *Catalog) Option {
	return func(o *validatorOptions) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithDecoder replaces the JSON decoding collaborator. A nil decoder is ignored.
func WithDecoder(d Decoder) Option {
	return func(o *validatorOptions) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithLogger sets the logger used for rejection diagnostics (Debug level).
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *validatorOptions) {
		o.logger = logger
	}
}
