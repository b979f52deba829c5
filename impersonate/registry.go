package impersonate

import (
	"github.com/sirupsen/logrus"

	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/profiles/chrome"
	"github.com/veilwire/impersonate/profiles/edge"
	"github.com/veilwire/impersonate/profiles/firefox"
	"github.com/veilwire/impersonate/profiles/okhttp"
	"github.com/veilwire/impersonate/profiles/safari"
	"github.com/veilwire/impersonate/wireid"
)

// templates is the static mapping from identity tokens to template
// functions. Resolution is total: every constant in identity.go has an
// entry here.
var templates = map[Identity]profile.Template{
	Chrome100: chrome.V100,
	Chrome104: chrome.V104,
	Chrome110: chrome.V110,
	Chrome116: chrome.V116,
	Chrome120: chrome.V120,
	Chrome124: chrome.V124,
	Chrome130: chrome.V130,

	Firefox102: firefox.V102,
	Firefox109: firefox.V109,
	Firefox117: firefox.V117,
	Firefox120: firefox.V120,
	Firefox133: firefox.V133,

	Safari15_6_1: safari.V15_6_1,
	Safari16_0:   safari.V16_0,
	Safari17_0:   safari.V17_0,
	Safari17_2_1: safari.V17_2_1,
	Safari17_4_1: safari.V17_4_1,
	Safari18_0:   safari.V18_0,

	Edge101: edge.V101,
	Edge127: edge.V127,

	OkHttp4_9: okhttp.V4_9_Android11,
	OkHttp5_0: okhttp.V5_0_Android13,
}

// Overrides carries the build-time options a caller can apply on top of
// a resolved identity: a preconfigured profile bypass, a header-order
// override, TLS field overrides, and the boolean toggles they compose
// from.
type Overrides struct {
	// Preconfigured, when non-nil, bypasses the registry entirely — the
	// caller supplies an already-built profile.
	Preconfigured *profile.ImpersonateProfile

	// HeaderOrder, when non-nil, replaces HeaderProfile.Order after the
	// template resolves.
	HeaderOrder []string

	Tls profile.TlsOverrides

	// Interface names a network interface for the outer client's socket
	// binding to use. The core never reads this field; it exists only so
	// overrides built here round-trip back out to the collaborator that
	// does — interface binding belongs to the connection layer, not the
	// impersonation core.
	Interface string
}

var log = logrus.WithField("component", "impersonate")

// Resolve composes, overrides, and freezes the profile for identity. It
// is the single entry point from identity to a frozen ImpersonateProfile.
func Resolve(identity Identity, overrides Overrides) (*profile.ImpersonateProfile, error) {
	var base *profile.ImpersonateProfile

	if overrides.Preconfigured != nil {
		log.WithField("mode", "preconfigured").Debug("resolving impersonate profile")
		base = overrides.Preconfigured
	} else {
		tmpl, ok := templates[identity]
		if !ok {
			return nil, &profile.BuilderError{Identity: string(identity), Cause: errUnknownIdentity}
		}
		log.WithField("identity", identity.String()).Debug("resolving impersonate profile")
		p, err := tmpl()
		if err != nil {
			return nil, &profile.BuilderError{Identity: string(identity), Cause: err}
		}
		base = p
	}

	result := &profile.ImpersonateProfile{Tls: base.Tls, Http2: base.Http2, Headers: base.Headers}
	if result.Tls != nil {
		result.Tls = profile.ApplyTlsOverrides(result.Tls, overrides.Tls)
	}
	if overrides.HeaderOrder != nil && result.Headers != nil {
		h := *result.Headers
		h.Order = append([]string(nil), overrides.HeaderOrder...)
		result.Headers = &h
	}

	return result.Freeze()
}

// errUnknownIdentity is only reachable when an Identity value was built
// outside this package's enumerated constants.
var errUnknownIdentity = unknownIdentityError{}

type unknownIdentityError struct{}

func (unknownIdentityError) Error() string { return "identity is not registered" }

// PseudoHeaderOrderOf returns the pseudo-header order of a resolved
// profile, or wireid.DefaultPseudoHeaderOrder when p or its HTTP/2
// component is nil.
func PseudoHeaderOrderOf(p *profile.ImpersonateProfile) []wireid.PseudoHeader {
	if p == nil || p.Http2 == nil {
		return wireid.DefaultPseudoHeaderOrder
	}
	return p.Http2.PseudoHeaderOrder
}
