package safari

import (
	"fmt"

	"github.com/veilwire/impersonate/profile"
)

// headerOrder is the wire order Safari emits request headers in.
var headerOrder = []string{
	"accept",
	"sec-fetch-site",
	"cookie",
	"sec-fetch-dest",
	"accept-language",
	"sec-fetch-mode",
	"user-agent",
	"referer",
	"accept-encoding",
}

func headerSet(webkitVersion, safariVersion string) *profile.HeaderProfile {
	userAgent := fmt.Sprintf(
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/%s (KHTML, like Gecko) Version/%s Safari/%s",
		webkitVersion, safariVersion, webkitVersion,
	)
	return &profile.HeaderProfile{
		Order: headerOrder,
		Defaults: []profile.HeaderPair{
			{Name: "accept", Value: "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
			{Name: "sec-fetch-site", Value: "none"},
			{Name: "accept-encoding", Value: "gzip, deflate, br"},
			{Name: "sec-fetch-mode", Value: "navigate"},
			{Name: "user-agent", Value: userAgent},
			{Name: "accept-language", Value: "en-US,en;q=0.9"},
			{Name: "sec-fetch-dest", Value: "document"},
		},
	}
}
