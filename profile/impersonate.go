package profile

// ImpersonateProfile composes a TLS profile, an optional HTTP/2 profile,
// and a header profile into the complete fingerprint this module emits
// for one identity. Http2 is required when Tls.ALPN advertises h2.
type ImpersonateProfile struct {
	Tls     *TlsProfile
	Http2   *Http2Profile
	Headers *HeaderProfile
}

// Validate checks every component and the cross-component invariant: if
// alpn advertises h2, an HTTP/2 profile must be present.
func (p *ImpersonateProfile) Validate() error {
	var violations []error

	if p.Tls == nil {
		violations = append(violations, configErrorf("impersonate: tls profile is required"))
	} else if err := p.Tls.Validate(); err != nil {
		violations = append(violations, err)
	}

	if p.Headers == nil {
		violations = append(violations, configErrorf("impersonate: header profile is required"))
	}

	if p.Tls != nil && p.Tls.ALPN.IncludesH2() && p.Http2 == nil {
		violations = append(violations, configErrorf("impersonate: alpn advertises h2 but no http2 profile was supplied"))
	}
	if p.Http2 != nil {
		if err := p.Http2.Validate(); err != nil {
			violations = append(violations, err)
		}
	}

	return newConfigError(violations...)
}

// Freeze validates p, then returns a deep, immutable copy safe to share
// by reference across concurrent connections.
func (p *ImpersonateProfile) Freeze() (*ImpersonateProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cp := &ImpersonateProfile{
		Tls:     p.Tls.Freeze(),
		Headers: p.Headers.Freeze(),
	}
	if p.Http2 != nil {
		cp.Http2 = p.Http2.Freeze()
	}
	return cp, nil
}

// Frozen reports whether every component of p has been frozen.
func (p *ImpersonateProfile) Frozen() bool {
	if p.Tls == nil || !p.Tls.Frozen() {
		return false
	}
	if p.Headers == nil || !p.Headers.Frozen() {
		return false
	}
	if p.Http2 != nil && !p.Http2.Frozen() {
		return false
	}
	return true
}

// Template is the signature every profile-template function in package
// profiles implements: a pure (fallible) function returning a fully
// composed, not-yet-frozen profile for one (browser, version) identity.
type Template func() (*ImpersonateProfile, error)
