// Package okhttp holds the templates for the Android OkHttp client,
// grounded on other_examples' enetx/surf ja.go Android() entry
// (HelloAndroid_11_OkHttp) and rquest's OkHttp{...} identity family.
// OkHttp is HTTP/1.1-and-h2-capable but, unlike a browser, sends no
// sec-ch-ua/sec-fetch-* client-hint headers and no pseudo-header
// permutation quirks — its header profile is intentionally small.
package okhttp

import (
	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

var cipherList = []wireid.CipherSuite{
	wireid.CipherAES128GCMSHA256,
	wireid.CipherAES256GCMSHA384,
	wireid.CipherECDHEECDSAAES128GCMSHA256,
	wireid.CipherECDHERSAAES128GCMSHA256,
	wireid.CipherECDHEECDSAAES256GCMSHA384,
	wireid.CipherECDHERSAAES256GCMSHA384,
	wireid.CipherECDHEECDSACHACHA20POLY1305,
	wireid.CipherECDHERSACHACHA20POLY1305,
	wireid.CipherRSAAES128GCMSHA256,
	wireid.CipherRSAAES256GCMSHA384,
}

var sigAlgsList = []wireid.SignatureScheme{
	wireid.SigSchemeECDSAWithP256AndSHA256,
	wireid.SigSchemePSSWithSHA256,
	wireid.SigSchemePKCS1WithSHA256,
	wireid.SigSchemeECDSAWithP384AndSHA384,
	wireid.SigSchemePSSWithSHA384,
	wireid.SigSchemePKCS1WithSHA384,
}

var curves = []wireid.CurveID{wireid.CurveX25519, wireid.CurveSECP256R1, wireid.CurveSECP384R1}

var pseudoHeaderOrder = []wireid.PseudoHeader{wireid.PseudoMethod, wireid.PseudoScheme, wireid.PseudoAuthority, wireid.PseudoPath}

func tlsTemplate() *profile.TlsProfile {
	return &profile.TlsProfile{
		MinVersion:    wireid.TLS1_2,
		MaxVersion:    wireid.TLS1_3,
		Curves:        curves,
		SigAlgs:       sigAlgsList,
		Ciphers:       cipherList,
		ALPN:          wireid.ALPNH2ThenHTTP11,
		SNI:           true,
		GREASE:        false,
		SessionTicket: true,
	}
}

func http2Template() *profile.Http2Profile {
	return &profile.Http2Profile{
		Settings: []profile.Http2Setting{
			{ID: wireid.SettingMaxConcurrentStreams, Val: 100},
			{ID: wireid.SettingInitialWindowSize, Val: 65535},
		},
		PseudoHeaderOrder: pseudoHeaderOrder,
		EnablePush:        false,
	}
}

func headerSet(userAgent string) *profile.HeaderProfile {
	return &profile.HeaderProfile{
		Order: []string{"host", "connection", "accept-encoding", "user-agent"},
		Defaults: []profile.HeaderPair{
			{Name: "accept-encoding", Value: "gzip"},
			{Name: "user-agent", Value: userAgent},
		},
	}
}

func V4_9_Android11() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate(), Http2: http2Template(), Headers: headerSet("okhttp/4.9.0")}, nil
}

func V5_0_Android13() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate(), Http2: http2Template(), Headers: headerSet("okhttp/5.0.0-alpha.11")}, nil
}
