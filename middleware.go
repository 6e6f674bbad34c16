package extsvc

import (
	"fmt"
	"log/slog"
	"time"
)

// Middleware wraps a ConfigValidator with cross-cutting behavior (logging, recovery).
type Middleware func(ConfigValidator) ConfigValidator

// Chain applies middlewares to v in onion order: the first middleware is outermost.
func Chain(v ConfigValidator, middlewares ...Middleware) ConfigValidator {
	for i := len(middlewares) - 1; i >= 0; i-- {
		v = middlewares[i](v)
	}
	return v
}

// WithLogging returns a middleware that logs start, end, duration, and errors.
// Rejections are logged at Warn; system errors at Error.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ConfigValidator) ConfigValidator {
		return &loggingValidator{next: next, logger: logger}
	}
}

// WithRecovery returns a middleware that recovers panics (e.g. from a custom Decoder)
// and returns SystemError.
func WithRecovery() Middleware {
	return func(next ConfigValidator) ConfigValidator {
		return &recoveryValidator{next: next}
	}
}

type loggingValidator struct {
	next   ConfigValidator
	logger *slog.Logger
}

func (l *loggingValidator) ValidateForUpdate(json, serviceName string) error {
	l.logger.Debug("validate start", "service", serviceName, "bytes", len(json))
	start := time.Now()
	err := l.next.ValidateForUpdate(json, serviceName)
	l.logResult("validate", err, time.Since(start), "service", serviceName)
	return err
}

func (l *loggingValidator) ExtractTopLevelKeys(json string) ([]string, error) {
	l.logger.Debug("extract start", "bytes", len(json))
	start := time.Now()
	keys, err := l.next.ExtractTopLevelKeys(json)
	l.logResult("extract", err, time.Since(start), "keys", len(keys))
	return keys, err
}

func (l *loggingValidator) logResult(op string, err error, dur time.Duration, args ...any) {
	args = append(args, "duration", dur)
	switch {
	case err == nil:
		l.logger.Debug(op+" end", args...)
	case IsClientError(err):
		l.logger.Warn(op+" rejected", append(args, "kind", KindOf(err).String(), "error", err)...)
	default:
		l.logger.Error(op+" error", append(args, "error", err)...)
	}
}

type recoveryValidator struct{ next ConfigValidator }

func (r *recoveryValidator) ValidateForUpdate(json, serviceName string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &SystemError{Err: &panicError{p: p}}
		}
	}()
	return r.next.ValidateForUpdate(json, serviceName)
}

func (r *recoveryValidator) ExtractTopLevelKeys(json string) (keys []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			keys = nil
			err = &SystemError{Err: &panicError{p: p}}
		}
	}()
	return r.next.ExtractTopLevelKeys(json)
}

// panicError wraps a recovered panic value for SystemError.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
