// Package firefox holds the TLS/HTTP2/header templates for Firefox
// releases.
package firefox

import (
	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

var cipherList = []wireid.CipherSuite{
	wireid.CipherAES128GCMSHA256,
	wireid.CipherCHACHA20POLY1305SHA256,
	wireid.CipherAES256GCMSHA384,
	wireid.CipherECDHEECDSAAES128GCMSHA256,
	wireid.CipherECDHEECDSACHACHA20POLY1305,
	wireid.CipherECDHERSAAES128GCMSHA256,
	wireid.CipherECDHERSACHACHA20POLY1305,
	wireid.CipherECDHEECDSAAES256GCMSHA384,
	wireid.CipherECDHERSAAES256GCMSHA384,
	wireid.CipherECDHERSAAES128CBCSHA,
	wireid.CipherECDHERSAAES256CBCSHA,
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
		MinVersion:           wireid.TLS1_2,
		MaxVersion:           wireid.TLS1_3,
		Curves:               curves,
		SigAlgs:              sigAlgsList,
		Ciphers:              cipherList,
		ALPN:                 wireid.ALPNH2ThenHTTP11,
		SNI:                  true,
		GREASE:               false,
		ApplicationSettings:  false,
		OCSPStapling:         true,
		SignedCertTimestamps: true,
		SessionTicket:        true,
		CertCompressionAlgs:  []wireid.CertCompressionAlgorithm{wireid.CertCompressionZlib},
	}
}
