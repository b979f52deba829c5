package chrome

import (
	"fmt"

	"github.com/veilwire/impersonate/profile"
)

// headerOrder is the wire order Chrome emits request headers in.
var headerOrder = []string{
	"host",
	"pragma",
	"cache-control",
	"sec-ch-ua",
	"sec-ch-ua-mobile",
	"sec-ch-ua-platform",
	"upgrade-insecure-requests",
	"user-agent",
	"accept",
	"sec-fetch-site",
	"sec-fetch-mode",
	"sec-fetch-user",
	"sec-fetch-dest",
	"referer",
	"accept-encoding",
	"accept-language",
	"cookie",
	"priority",
}

// V120Headers exposes the Chrome 120 header set for reuse by packages
// that impersonate Chromium-based browsers with their own UA/sec-ch-ua
// strings (package edge).
func V120Headers() *profile.HeaderProfile {
	return headerSet("120.0.0.0", `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`)
}

// headerSet builds the default header table for one Chrome version,
// parameterized the way v130.go's header_initializer() is: only the
// version-bearing strings change between releases.
func headerSet(version, secChUA string) *profile.HeaderProfile {
	userAgent := fmt.Sprintf(
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36",
		version,
	)
	return &profile.HeaderProfile{
		Order: headerOrder,
		Defaults: []profile.HeaderPair{
			{Name: "pragma", Value: "no-cache"},
			{Name: "cache-control", Value: "no-cache"},
			{Name: "sec-ch-ua", Value: secChUA},
			{Name: "sec-ch-ua-mobile", Value: "?0"},
			{Name: "sec-ch-ua-platform", Value: `"macOS"`},
			{Name: "upgrade-insecure-requests", Value: "1"},
			{Name: "user-agent", Value: userAgent},
			{Name: "accept", Value: "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7"},
			{Name: "sec-fetch-site", Value: "none"},
			{Name: "sec-fetch-mode", Value: "navigate"},
			{Name: "sec-fetch-user", Value: "?1"},
			{Name: "sec-fetch-dest", Value: "document"},
			{Name: "accept-encoding", Value: "gzip, deflate, br, zstd"},
			{Name: "accept-language", Value: "en-US,en;q=0.9"},
			{Name: "priority", Value: "u=0, i"},
		},
	}
}
