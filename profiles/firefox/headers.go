package firefox

import (
	"fmt"

	"github.com/veilwire/impersonate/profile"
)

// headerOrder is the wire order Firefox emits request headers in.
var headerOrder = []string{
	"user-agent",
	"accept",
	"accept-language",
	"accept-encoding",
	"referer",
	"cookie",
	"upgrade-insecure-requests",
	"sec-fetch-dest",
	"sec-fetch-mode",
	"sec-fetch-site",
	"sec-fetch-user",
	"te",
}

func headerSet(geckoVersion, firefoxVersion string) *profile.HeaderProfile {
	userAgent := fmt.Sprintf("Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:%s) Gecko/20100101 Firefox/%s", geckoVersion, firefoxVersion)
	return &profile.HeaderProfile{
		Order: headerOrder,
		Defaults: []profile.HeaderPair{
			{Name: "user-agent", Value: userAgent},
			{Name: "accept", Value: "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"},
			{Name: "accept-language", Value: "en-US,en;q=0.5"},
			{Name: "upgrade-insecure-requests", Value: "1"},
			{Name: "sec-fetch-dest", Value: "document"},
			{Name: "sec-fetch-mode", Value: "navigate"},
			{Name: "sec-fetch-site", Value: "same-origin"},
			{Name: "sec-fetch-user", Value: "?1"},
		},
	}
}
