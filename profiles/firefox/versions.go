package firefox

import "github.com/veilwire/impersonate/profile"

func V102() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("102.0", "102.0")}, nil
}

func V109() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("109.0", "109.0")}, nil
}

func V117() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("117.0", "117.0")}, nil
}

func V120() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("120.0", "120.0")}, nil
}

func V133() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: tlsTemplate1(), Http2: http2Template1(), Headers: headerSet("133.0", "133.0")}, nil
}
