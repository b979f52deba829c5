package engine

import (
	"errors"
	"net"

	utls "github.com/refraction-networking/utls"

	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

// TlsConnectorFactory produces a fresh, independently-configured
// *utls.UConn over an already-dialed net.Conn. Every invocation reads
// the same frozen profile; the factory itself holds no per-connection
// state, so it is safe to call concurrently. Dialing, timeouts, and
// certificate verification stay with the collaborator that owns the
// socket — this core only shapes the ClientHello.
type TlsConnectorFactory func(rawConn net.Conn, serverName string) (*utls.UConn, error)

// BuildConnectorFactory builds a TlsConnectorFactory from a profile. It
// fails synchronously with a *profile.ConfigError if the profile has no
// TLS component or its TLS component does not pass Validate. The
// returned factory wraps anything the TLS engine itself rejects when the
// spec is applied to a connection (e.g. an unsupported cipher/curve
// combination) as a *profile.EngineError.
func BuildConnectorFactory(p *profile.ImpersonateProfile) (TlsConnectorFactory, error) {
	if p == nil || p.Tls == nil {
		return nil, profile.NewConfigError(errors.New("impersonate profile has no tls component"))
	}
	if err := p.Tls.Validate(); err != nil {
		return nil, err
	}

	spec := buildClientHelloSpec(p.Tls)
	log.WithField("min_version", p.Tls.MinVersion).WithField("max_version", p.Tls.MaxVersion).Debug("built client hello spec")

	return func(rawConn net.Conn, serverName string) (*utls.UConn, error) {
		cfg := &utls.Config{
			ServerName: serverName,
			NextProtos: p.Tls.ALPN.Protocols(),
		}
		uconn := utls.UClient(rawConn, cfg, utls.HelloCustom)
		if err := uconn.ApplyPreset(spec); err != nil {
			return nil, profile.NewEngineError("apply_preset", err)
		}
		return uconn, nil
	}, nil
}

// buildClientHelloSpec translates a validated TlsProfile into a
// utls.ClientHelloSpec, preserving the profile's declared wire order.
// p is assumed to already have passed Validate.
func buildClientHelloSpec(p *profile.TlsProfile) *utls.ClientHelloSpec {
	curves := make([]utls.CurveID, 0, len(p.Curves)+1)
	if p.GREASE {
		curves = append(curves, utls.CurveID(wireid.CurveGREASE))
	}
	for _, c := range p.Curves {
		curves = append(curves, utls.CurveID(c))
	}

	sigAlgs := make([]utls.SignatureScheme, 0, len(p.SigAlgs))
	for _, s := range p.SigAlgs {
		sigAlgs = append(sigAlgs, utls.SignatureScheme(s))
	}

	ciphers := make([]uint16, 0, len(p.Ciphers)+1)
	if p.GREASE {
		ciphers = append(ciphers, uint16(wireid.CipherGREASE))
	}
	for _, c := range p.Ciphers {
		ciphers = append(ciphers, uint16(c))
	}

	return &utls.ClientHelloSpec{
		CipherSuites:       ciphers,
		CompressionMethods: []byte{0}, // null compression, the only method TLS permits post-1.2
		Extensions:         buildExtensions(p, curves, sigAlgs),
		TLSVersMin:         uint16(p.MinVersion),
		TLSVersMax:         uint16(p.MaxVersion),
	}
}

// buildExtensions lays out the extension block in the template's
// declared order. When PermuteExtensions is set, the dialing engine may
// reshuffle the permutable subset per connection, but pre_shared_key
// must stay last whenever present, so it is always appended last here
// regardless of permutation.
func buildExtensions(p *profile.TlsProfile, curves []utls.CurveID, sigAlgs []utls.SignatureScheme) []utls.TLSExtension {
	var exts []utls.TLSExtension

	if p.GREASE {
		exts = append(exts, &utls.UtlsGREASEExtension{})
	}
	if p.SNI {
		exts = append(exts, &utls.SNIExtension{})
	}
	exts = append(exts,
		&utls.SupportedCurvesExtension{Curves: curves},
		&utls.SupportedPointsExtension{SupportedPoints: []byte{0}},
	)
	if p.SessionTicket {
		exts = append(exts, &utls.SessionTicketExtension{})
	}
	exts = append(exts, &utls.SignatureAlgorithmsExtension{SupportedSignatureAlgorithms: sigAlgs})
	if alpn := p.ALPN.Protocols(); len(alpn) > 0 {
		exts = append(exts, &utls.ALPNExtension{AlpnProtocols: alpn})
	}
	if p.SignedCertTimestamps {
		exts = append(exts, &utls.SCTExtension{})
	}
	if len(p.CertCompressionAlgs) > 0 {
		algs := make([]utls.CertCompressionAlgo, 0, len(p.CertCompressionAlgs))
		for _, a := range p.CertCompressionAlgs {
			algs = append(algs, utls.CertCompressionAlgo(a))
		}
		exts = append(exts, &utls.UtlsCompressCertExtension{Algorithms: algs})
	}
	if p.ApplicationSettings {
		exts = append(exts, &utls.ApplicationSettingsExtension{SupportedProtocols: []string{"h2"}})
	}
	if p.OCSPStapling {
		exts = append(exts, &utls.StatusRequestExtension{})
	}
	exts = append(exts, &utls.KeyShareExtension{KeyShares: keySharesFor(curves)})
	exts = append(exts, &utls.PSKKeyExchangeModesExtension{Modes: []uint8{utls.PskModeDHE}})
	exts = append(exts, &utls.SupportedVersionsExtension{Versions: supportedVersions(p)})
	if p.ECHGrease {
		exts = append(exts, &utls.GREASEEncryptedClientHelloExtension{})
	}
	if p.PermuteExtensions {
		exts = append(exts, &utls.UtlsPaddingExtension{GetPaddingLen: utls.BoringPaddingStyle})
	}
	if p.PreSharedKey {
		exts = append(exts, &utls.UtlsPreSharedKeyExtension{})
	}

	return exts
}

// keySharesFor picks the first two non-GREASE curves for key_share, the
// convention every Chrome/Firefox/Safari template in this module
// follows (one classical group, one hybrid/PQ group when offered).
func keySharesFor(curves []utls.CurveID) []utls.KeyShare {
	shares := make([]utls.KeyShare, 0, 2)
	picked := 0
	for _, c := range curves {
		if c == utls.CurveID(wireid.CurveGREASE) {
			continue
		}
		shares = append(shares, utls.KeyShare{Group: c})
		picked++
		if picked == 2 {
			break
		}
	}
	return shares
}

// supportedVersions enumerates every TLS version between MinVersion and
// MaxVersion inclusive, newest first, matching how real clients populate
// supported_versions.
func supportedVersions(p *profile.TlsProfile) []uint16 {
	versions := make([]uint16, 0, 2)
	for v := p.MaxVersion; ; v-- {
		versions = append(versions, uint16(v))
		if v == p.MinVersion {
			break
		}
	}
	return versions
}
