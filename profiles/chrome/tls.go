// Package chrome holds the TLS/HTTP2/header templates for Chromium-based
// Chrome releases, factored into numbered template functions the way a
// production impersonation client groups its cipher/curve/settings
// tables under one function per browser family.
package chrome

import (
	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

// cipherList is the 15-entry Chrome cipher suite list, translated to
// numeric IDs; this is also the exact list the "Chrome130, no
// overrides" scenario names.
var cipherList = []wireid.CipherSuite{
	wireid.CipherAES128GCMSHA256,
	wireid.CipherAES256GCMSHA384,
	wireid.CipherCHACHA20POLY1305SHA256,
	wireid.CipherECDHEECDSAAES128GCMSHA256,
	wireid.CipherECDHERSAAES128GCMSHA256,
	wireid.CipherECDHEECDSAAES256GCMSHA384,
	wireid.CipherECDHERSAAES256GCMSHA384,
	wireid.CipherECDHEECDSACHACHA20POLY1305,
	wireid.CipherECDHERSACHACHA20POLY1305,
	wireid.CipherECDHERSAAES128CBCSHA,
	wireid.CipherECDHERSAAES256CBCSHA,
	wireid.CipherRSAAES128GCMSHA256,
	wireid.CipherRSAAES256GCMSHA384,
	wireid.CipherRSAAES128CBCSHA,
	wireid.CipherRSAAES256CBCSHA,
}

// sigAlgsList is the signature_algorithms list Chrome advertises.
var sigAlgsList = []wireid.SignatureScheme{
	wireid.SigSchemeECDSAWithP256AndSHA256,
	wireid.SigSchemePSSWithSHA256,
	wireid.SigSchemePKCS1WithSHA256,
	wireid.SigSchemeECDSAWithP384AndSHA384,
	wireid.SigSchemePSSWithSHA384,
	wireid.SigSchemePKCS1WithSHA384,
	wireid.SigSchemePSSWithSHA512,
	wireid.SigSchemePKCS1WithSHA512,
}

// legacyCurves is used by Chrome releases before the Kyber768 hybrid
// group shipped; pqCurves is used from the release that adds it onward.
var legacyCurves = []wireid.CurveID{wireid.CurveX25519, wireid.CurveSECP256R1, wireid.CurveSECP384R1}
var pqCurves = []wireid.CurveID{wireid.CurveX25519Kyber768Draft00, wireid.CurveX25519, wireid.CurveSECP256R1, wireid.CurveSECP384R1}

// tlsTemplateOptions collects the fields that vary between Chrome TLS templates.
type tlsTemplateOptions struct {
	curves              []wireid.CurveID
	applicationSettings bool
	echGrease           bool
	permuteExtensions   bool
	preSharedKey        bool
}

func tlsTemplate(o tlsTemplateOptions) *profile.TlsProfile {
	curves := o.curves
	if curves == nil {
		curves = legacyCurves
	}
	return &profile.TlsProfile{
		MinVersion:           wireid.TLS1_2,
		MaxVersion:           wireid.TLS1_3,
		Curves:               curves,
		SigAlgs:              sigAlgsList,
		Ciphers:              cipherList,
		ALPN:                 wireid.ALPNH2ThenHTTP11,
		SNI:                  true,
		GREASE:               true,
		ECHGrease:            o.echGrease,
		PreSharedKey:         o.preSharedKey,
		ApplicationSettings:  o.applicationSettings,
		OCSPStapling:         true,
		SignedCertTimestamps: true,
		SessionTicket:        true,
		PermuteExtensions:    o.permuteExtensions,
		CertCompressionAlgs:  []wireid.CertCompressionAlgorithm{wireid.CertCompressionBrotli},
	}
}

// TlsTemplate1 is the baseline Chrome TLS shape used by every Chrome
// release before the PQ key-share rollout, with ALPS enabled and no
// extension permutation.
func TlsTemplate1() *profile.TlsProfile {
	return tlsTemplate(tlsTemplateOptions{applicationSettings: true})
}

// TlsTemplate6 adds the post-quantum hybrid curve and ECH GREASE on top
// of TlsTemplate1, the shape Chrome 130 advertises.
func TlsTemplate6() *profile.TlsProfile {
	return tlsTemplate(tlsTemplateOptions{curves: pqCurves, applicationSettings: true, echGrease: true})
}
