package safari

import "github.com/veilwire/impersonate/profile"

func V15_6_1() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("605.1.15", "15.6.1")}, nil
}

func V16_0() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("605.1.15", "16.0")}, nil
}

func V17_0() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("605.1.15", "17.0")}, nil
}

// V17_2_1 is the exact "Safari 17.2.1, no overrides" reference scenario.
func V17_2_1() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("605.1.15", "17.2.1")}, nil
}

func V17_4_1() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("605.1.15", "17.4.1")}, nil
}

func V18_0() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("605.1.15", "18.0")}, nil
}
