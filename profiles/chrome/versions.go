package chrome

import "github.com/veilwire/impersonate/profile"

// Each version function is a profile.Template: a pure function with no
// side effects returning a composed ImpersonateProfile. Versions that
// differ only in headers share the same TLS/HTTP2 templates verbatim.

func V100() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{
		Tls:     TlsTemplate1(),
		Http2:   Http2Template1(),
		Headers: headerSet("100.0.4896.127", `"Chromium";v="100", "Google Chrome";v="100", "Not)A;Brand";v="24"`),
	}, nil
}

func V104() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{
		Tls:     TlsTemplate1(),
		Http2:   Http2Template1(),
		Headers: headerSet("104.0.5112.102", `"Chromium";v="104", "Google Chrome";v="104", "Not)A;Brand";v="24"`),
	}, nil
}

func V110() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{
		Tls:     TlsTemplate1(),
		Http2:   Http2Template1(),
		Headers: headerSet("110.0.5481.178", `"Chromium";v="110", "Not A(Brand";v="24", "Google Chrome";v="110"`),
	}, nil
}

func V116() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{
		Tls:     TlsTemplate1(),
		Http2:   Http2Template1(),
		Headers: headerSet("116.0.5845.188", `"Chromium";v="116", "Not)A;Brand";v="24", "Google Chrome";v="116"`),
	}, nil
}

func V120() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{
		Tls:     TlsTemplate1(),
		Http2:   Http2Template1(),
		Headers: headerSet("120.0.0.0", `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`),
	}, nil
}

func V124() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{
		Tls:     TlsTemplate6(),
		Http2:   Http2Template1(),
		Headers: headerSet("124.0.0.0", `"Chromium";v="124", "Not-A.Brand";v="99", "Google Chrome";v="124"`),
	}, nil
}

// V130 pins Chrome 130's concrete fingerprint: the 15-entry cipher list
// beginning TLS_AES_128_GCM_SHA256 and ending
// TLS_RSA_WITH_AES_256_CBC_SHA, supported_groups beginning with
// X25519Kyber768Draft00, and its settings/headers.
func V130() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{
		Tls:     TlsTemplate6(),
		Http2:   Http2Template3(),
		Headers: headerSet("130.0.0.0", `"Chromium";v="130", "Google Chrome";v="130", "Not?A_Brand";v="99"`),
	}, nil
}
