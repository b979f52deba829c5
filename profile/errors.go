package profile

import (
	"fmt"

	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-multierror"
)

// ConfigError reports that a profile (or an override applied to one)
// violates one of its own invariants. It is always produced synchronously
// at build/apply time, never at emission time.
type ConfigError struct {
	multi *multierror.Error
}

func (e *ConfigError) Error() string {
	if e.multi == nil || len(e.multi.Errors) == 0 {
		return "config error"
	}
	return e.multi.Error()
}

// Unwrap lets errors.Is/errors.As reach the individual violations.
func (e *ConfigError) Unwrap() error {
	if e.multi == nil {
		return nil
	}
	return e.multi.ErrorOrNil()
}

// newConfigError builds a ConfigError out of zero or more violation
// messages, returning nil when there are none — the caller's usual
// pattern is `if err := validate(...); err != nil { return err }`.
func newConfigError(violations ...error) error {
	var merr *multierror.Error
	for _, v := range violations {
		if v != nil {
			merr = multierror.Append(merr, v)
		}
	}
	if merr == nil {
		return nil
	}
	return &ConfigError{multi: merr}
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// NewConfigError is the exported form of newConfigError, for callers
// outside this package (e.g. engine) that need to report a profile
// precondition failure using the same error type Validate returns.
func NewConfigError(violations ...error) error {
	return newConfigError(violations...)
}

// BuilderError reports that the impersonate registry failed to resolve
// an identity — only reachable when an identity value was constructed
// outside the enumerated set.
type BuilderError struct {
	Identity string
	Cause    error
}

func (e *BuilderError) Error() string {
	return fmt.Sprintf("resolve identity %q: %v", e.Identity, e.Cause)
}

func (e *BuilderError) Unwrap() error { return e.Cause }

// EngineError wraps a diagnostic surfaced by the downstream TLS or
// HTTP/2 engine when it rejects a profile this module considered
// internally consistent.
type EngineError struct {
	Op    string
	Cause error
}

func (e *EngineError) Error() string {
	return errwrap.Wrapf(fmt.Sprintf("%s: {{err}}", e.Op), e.Cause).Error()
}

func (e *EngineError) Unwrap() error { return e.Cause }

// NewEngineError wraps cause as an EngineError produced during op.
func NewEngineError(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &EngineError{Op: op, Cause: cause}
}
