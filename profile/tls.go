package profile

import (
	"github.com/veilwire/impersonate/wireid"
)

// TlsProfile is an immutable description of one ClientHello. Build it
// through a profile template (package profiles) or by hand for a
// preconfigured/custom identity, then Freeze it before handing it to
// engine.BuildConnectorFactory.
//
// Field order throughout (Curves, SigAlgs, Ciphers, CertCompressionAlgs)
// is significant: it is the order emitted on the wire.
type TlsProfile struct {
	MinVersion wireid.TLSVersion
	MaxVersion wireid.TLSVersion

	Curves  []wireid.CurveID
	SigAlgs []wireid.SignatureScheme
	Ciphers []wireid.CipherSuite

	ALPN wireid.ALPNPolicy

	SNI                   bool
	GREASE                bool
	ECHGrease             bool
	PreSharedKey          bool
	ApplicationSettings   bool
	OCSPStapling          bool
	SignedCertTimestamps  bool
	SessionTicket         bool
	PermuteExtensions     bool

	CertCompressionAlgs []wireid.CertCompressionAlgorithm

	frozen bool
}

// Freeze marks p immutable. Calling any setter on a frozen profile is a
// programmer error; the exported surface has none — overrides always go
// through ApplyTlsOverrides, which copies first.
func (p *TlsProfile) Freeze() *TlsProfile {
	cp := *p
	cp.Curves = append([]wireid.CurveID(nil), p.Curves...)
	cp.SigAlgs = append([]wireid.SignatureScheme(nil), p.SigAlgs...)
	cp.Ciphers = append([]wireid.CipherSuite(nil), p.Ciphers...)
	cp.CertCompressionAlgs = append([]wireid.CertCompressionAlgorithm(nil), p.CertCompressionAlgs...)
	cp.frozen = true
	return &cp
}

// Frozen reports whether p has been through Freeze.
func (p *TlsProfile) Frozen() bool { return p.frozen }

// Validate checks the profile's invariants. It never mutates p.
func (p *TlsProfile) Validate() error {
	var violations []error

	if p.MinVersion > p.MaxVersion {
		violations = append(violations, configErrorf("tls: min_version %s > max_version %s", p.MinVersion, p.MaxVersion))
	}
	if len(p.Curves) == 0 {
		violations = append(violations, configErrorf("tls: curves must be non-empty"))
	}
	if dup := firstDuplicateCurve(p.Curves); dup != 0 {
		violations = append(violations, configErrorf("tls: duplicate curve %#04x", uint16(dup)))
	}
	if len(p.Ciphers) == 0 {
		violations = append(violations, configErrorf("tls: ciphers must be non-empty"))
	}
	if len(p.SigAlgs) == 0 {
		violations = append(violations, configErrorf("tls: sigalgs must be non-empty"))
	}
	if p.MaxVersion < wireid.TLS1_3 {
		if p.ECHGrease {
			violations = append(violations, configErrorf("tls: ech_grease requires max_version >= TLS1.3"))
		}
		if p.PreSharedKey {
			violations = append(violations, configErrorf("tls: pre_shared_key requires max_version >= TLS1.3"))
		}
	}
	for _, alg := range p.CertCompressionAlgs {
		switch alg {
		case wireid.CertCompressionZlib, wireid.CertCompressionBrotli, wireid.CertCompressionZstd:
		default:
			violations = append(violations, configErrorf("tls: unknown cert compression algorithm %d", alg))
		}
	}

	return newConfigError(violations...)
}

func firstDuplicateCurve(curves []wireid.CurveID) wireid.CurveID {
	seen := make(map[wireid.CurveID]bool, len(curves))
	for _, c := range curves {
		if seen[c] {
			return c
		}
		seen[c] = true
	}
	return 0
}

// TlsOverrides carries the subset of TlsProfile fields that can be
// replaced at build time without re-templating the whole profile.
type TlsOverrides struct {
	Curves              []wireid.CurveID
	MinVersion          *wireid.TLSVersion
	MaxVersion          *wireid.TLSVersion
	EnableECHGrease     *bool
	PermuteExtensions   *bool
	PreSharedKey        *bool
	SessionTicket       *bool
}

// ApplyTlsOverrides returns a new, unfrozen TlsProfile with the specified
// fields replaced. base is never mutated.
func ApplyTlsOverrides(base *TlsProfile, o TlsOverrides) *TlsProfile {
	cp := *base
	cp.frozen = false
	cp.Curves = append([]wireid.CurveID(nil), base.Curves...)
	cp.SigAlgs = append([]wireid.SignatureScheme(nil), base.SigAlgs...)
	cp.Ciphers = append([]wireid.CipherSuite(nil), base.Ciphers...)
	cp.CertCompressionAlgs = append([]wireid.CertCompressionAlgorithm(nil), base.CertCompressionAlgs...)

	if o.Curves != nil {
		cp.Curves = append([]wireid.CurveID(nil), o.Curves...)
	}
	if o.MinVersion != nil {
		cp.MinVersion = *o.MinVersion
	}
	if o.MaxVersion != nil {
		cp.MaxVersion = *o.MaxVersion
	}
	if o.EnableECHGrease != nil {
		cp.ECHGrease = *o.EnableECHGrease
	}
	if o.PermuteExtensions != nil {
		cp.PermuteExtensions = *o.PermuteExtensions
	}
	if o.PreSharedKey != nil {
		cp.PreSharedKey = *o.PreSharedKey
	}
	if o.SessionTicket != nil {
		cp.SessionTicket = *o.SessionTicket
	}
	return &cp
}
