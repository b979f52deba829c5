// Package engine is the emission contract: the narrow surface by which
// the outer HTTP client consumes a frozen profile.ImpersonateProfile,
// without the core touching a socket.
package engine

import "github.com/veilwire/impersonate/profile"

// HeaderComposer is executed once per outgoing request.
type HeaderComposer func(caller []profile.HeaderPair) []profile.HeaderPair

// NewHeaderComposer binds a frozen header profile into a HeaderComposer.
func NewHeaderComposer(h *profile.HeaderProfile) HeaderComposer {
	return func(caller []profile.HeaderPair) []profile.HeaderPair {
		return h.Compose(caller)
	}
}
