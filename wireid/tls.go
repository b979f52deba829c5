// Package wireid holds the stable symbolic identifiers this module emits
// on the wire: TLS versions, curves, signature schemes, cipher suites,
// cert-compression algorithms, and HTTP/2 pseudo-headers/settings IDs.
//
// These are plain value types with fixed numeric encodings, not opaque
// strings, so that a profile can be serialized, compared, and replayed
// without reference to any particular TLS engine. Conversion to the TLS
// engine's own types (utls.CurveID, ...) happens only in package engine.
// SettingID is the one exception: it is an alias of
// golang.org/x/net/http2's SettingID, so it needs no conversion.
package wireid

// TLSVersion is a TLS protocol version, encoded as the wire's two-byte
// version number (e.g. TLS 1.2 is 0x0303).
type TLSVersion uint16

const (
	TLS1_0 TLSVersion = 0x0301
	TLS1_1 TLSVersion = 0x0302
	TLS1_2 TLSVersion = 0x0303
	TLS1_3 TLSVersion = 0x0304
)

func (v TLSVersion) String() string {
	switch v {
	case TLS1_0:
		return "TLS1.0"
	case TLS1_1:
		return "TLS1.1"
	case TLS1_2:
		return "TLS1.2"
	case TLS1_3:
		return "TLS1.3"
	default:
		return "TLS(unknown)"
	}
}

// CurveID is a named/supported-group identifier from the TLS
// supported_groups registry, plus the experimental post-quantum hybrid
// groups browsers have started shipping ahead of IANA allocation.
type CurveID uint16

const (
	CurveSECP224R1 CurveID = 21
	CurveSECP256R1 CurveID = 23
	CurveSECP384R1 CurveID = 24
	CurveSECP521R1 CurveID = 25
	CurveX25519    CurveID = 29

	// CurveX25519Kyber768Draft00 pins Chrome's draft00 code point for the
	// hybrid X25519+Kyber768 post-quantum key exchange. This draft's wire
	// code has shifted across revisions upstream, so one code point is
	// pinned per identity rather than tracking the draft. Adding a later
	// revision means a new constant and a new identity, never mutating
	// this one.
	CurveX25519Kyber768Draft00 CurveID = 0x6399

	// CurveGREASE is not a real curve; it is the placeholder value the
	// GREASE toggle injects into supported_groups (one of the 0x?A?A
	// reserved code points, per RFC 8701).
	CurveGREASE CurveID = 0x0A0A
)

// SignatureScheme is a TLS 1.2+ signature_algorithms identifier.
type SignatureScheme uint16

const (
	SigSchemeECDSAWithP256AndSHA256 SignatureScheme = 0x0403
	SigSchemePSSWithSHA256          SignatureScheme = 0x0804
	SigSchemePKCS1WithSHA256        SignatureScheme = 0x0401
	SigSchemeECDSAWithP384AndSHA384 SignatureScheme = 0x0503
	SigSchemePSSWithSHA384          SignatureScheme = 0x0805
	SigSchemePKCS1WithSHA384        SignatureScheme = 0x0501
	SigSchemePSSWithSHA512          SignatureScheme = 0x0806
	SigSchemePKCS1WithSHA512        SignatureScheme = 0x0601
)

// CipherSuite is a TLS cipher-suite identifier.
type CipherSuite uint16

const (
	CipherAES128GCMSHA256            CipherSuite = 0x1301
	CipherAES256GCMSHA384            CipherSuite = 0x1302
	CipherCHACHA20POLY1305SHA256     CipherSuite = 0x1303
	CipherECDHEECDSAAES128GCMSHA256  CipherSuite = 0xc02b
	CipherECDHERSAAES128GCMSHA256    CipherSuite = 0xc02f
	CipherECDHEECDSAAES256GCMSHA384  CipherSuite = 0xc02c
	CipherECDHERSAAES256GCMSHA384    CipherSuite = 0xc030
	CipherECDHEECDSACHACHA20POLY1305 CipherSuite = 0xcca9
	CipherECDHERSACHACHA20POLY1305   CipherSuite = 0xcca8
	CipherECDHERSAAES128CBCSHA       CipherSuite = 0xc013
	CipherECDHERSAAES256CBCSHA       CipherSuite = 0xc014
	CipherRSAAES128GCMSHA256         CipherSuite = 0x009c
	CipherRSAAES256GCMSHA384         CipherSuite = 0x009d
	CipherRSAAES128CBCSHA            CipherSuite = 0x002f
	CipherRSAAES256CBCSHA            CipherSuite = 0x0035
	CipherGREASE                     CipherSuite = 0x0a0a
)

// CertCompressionAlgorithm names a certificate-compression algorithm
// advertisable in the cert_compression extension.
type CertCompressionAlgorithm uint16

const (
	CertCompressionZlib   CertCompressionAlgorithm = 1
	CertCompressionBrotli CertCompressionAlgorithm = 2
	CertCompressionZstd   CertCompressionAlgorithm = 3
)

func (a CertCompressionAlgorithm) String() string {
	switch a {
	case CertCompressionZlib:
		return "zlib"
	case CertCompressionBrotli:
		return "brotli"
	case CertCompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ExtensionID is a TLS ClientHello extension identifier. Only the
// identifiers the profile layer needs to reason about explicitly
// (permutability, PSK/padding pinning) are named here; the rest travel
// opaquely through the engine's own extension-ordering table.
type ExtensionID uint16

const (
	ExtServerName           ExtensionID = 0
	ExtStatusRequest        ExtensionID = 5
	ExtSupportedGroups      ExtensionID = 10
	ExtECPointFormats       ExtensionID = 11
	ExtSignatureAlgorithms  ExtensionID = 13
	ExtALPN                 ExtensionID = 16
	ExtSCT                  ExtensionID = 18
	ExtCertCompression      ExtensionID = 27
	ExtSessionTicket        ExtensionID = 35
	ExtPreSharedKey         ExtensionID = 41
	ExtSupportedVersions    ExtensionID = 43
	ExtPSKKeyExchangeModes  ExtensionID = 45
	ExtKeyShare             ExtensionID = 51
	ExtApplicationSettings  ExtensionID = 17513
	ExtEncryptedClientHello ExtensionID = 65037
	ExtPadding              ExtensionID = 21
	ExtGREASE               ExtensionID = 0x0a0a
)

// ALPNPolicy describes which protocols a profile advertises via ALPN and
// in what order.
type ALPNPolicy int

const (
	ALPNNone ALPNPolicy = iota
	ALPNH2Only
	ALPNHTTP11Only
	ALPNH2ThenHTTP11
	ALPNHTTP11ThenH2
)

// Protocols returns the ALPN protocol list in wire order for the policy.
func (p ALPNPolicy) Protocols() []string {
	switch p {
	case ALPNH2Only:
		return []string{"h2"}
	case ALPNHTTP11Only:
		return []string{"http/1.1"}
	case ALPNH2ThenHTTP11:
		return []string{"h2", "http/1.1"}
	case ALPNHTTP11ThenH2:
		return []string{"http/1.1", "h2"}
	default:
		return nil
	}
}

// IncludesH2 reports whether the policy advertises h2 at all.
func (p ALPNPolicy) IncludesH2() bool {
	return p == ALPNH2Only || p == ALPNH2ThenHTTP11 || p == ALPNHTTP11ThenH2
}
