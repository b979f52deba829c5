// Package edge holds the templates for Microsoft Edge. Since Edge is
// Chromium-based, it reuses the chrome package's TLS and HTTP/2
// templates verbatim and supplies its own header set.
package edge

import (
	"fmt"

	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/profiles/chrome"
)

func headerSet(edgeVersion, chromeVersion string) *profile.HeaderProfile {
	h := chrome.V120Headers()
	userAgent := fmt.Sprintf(
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36 Edg/%s",
		chromeVersion, edgeVersion,
	)
	for i, d := range h.Defaults {
		if d.Name == "user-agent" {
			h.Defaults[i].Value = userAgent
		}
		if d.Name == "sec-ch-ua" {
			h.Defaults[i].Value = fmt.Sprintf(`"Chromium";v="%s", "Microsoft Edge";v="%s", "Not.A/Brand";v="99"`, chromeVersion, edgeVersion)
		}
		if d.Name == "sec-ch-ua-platform" {
			h.Defaults[i].Value = `"Windows"`
		}
	}
	return h
}

func V101() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: chrome.TlsTemplate1(), Http2: chrome.Http2Template1(), Headers: headerSet("101.0.1210.47", "101.0.4951.64")}, nil
}

func V127() (*profile.ImpersonateProfile, error) {
	return &profile.ImpersonateProfile{Tls: chrome.TlsTemplate1(), Http2: chrome.Http2Template1(), Headers: headerSet("127.0.2651.74", "127.0.6533.73")}, nil
}
