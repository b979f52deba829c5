// Package safari holds the TLS/HTTP2/header templates for Safari
// releases.
package safari

import (
	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

// cipherList mirrors CIPHER_LIST referenced from safari17_2_1.rs (shared
// with the Chrome list in the original; WebKit and Blink agree on this
// table upstream in BoringSSL).
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

var curves = []wireid.CurveID{wireid.CurveX25519, wireid.CurveSECP256R1, wireid.CurveSECP384R1, wireid.CurveSECP521R1}

func tlsTemplate1() *profile.TlsProfile {
	return &profile.TlsProfile{
		MinVersion:           wireid.TLS1_0,
		MaxVersion:           wireid.TLS1_3,
		Curves:               curves,
		SigAlgs:              sigAlgsList,
		Ciphers:              cipherList,
		ALPN:                 wireid.ALPNH2ThenHTTP11,
		SNI:                  true,
		GREASE:               true,
		OCSPStapling:         true,
		SignedCertTimestamps: false,
		SessionTicket:        true,
		CertCompressionAlgs:  nil,
	}
}
