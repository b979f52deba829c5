package safari

import (
	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

// pseudoHeaderOrder is the wire order Safari emits HTTP/2 pseudo-headers in.
var pseudoHeaderOrder = []wireid.PseudoHeader{
	wireid.PseudoMethod,
	wireid.PseudoScheme,
	wireid.PseudoPath,
	wireid.PseudoAuthority,
}

func u32p(v uint32) *uint32 { return &v }

// http2Template1 is the exact HTTP/2 settings and priority frame for
// the "Safari 17.2.1, no overrides" reference scenario.
func http2Template1() *profile.Http2Profile {
	return &profile.Http2Profile{
		Settings: []profile.Http2Setting{
			{ID: wireid.SettingInitialWindowSize, Val: 4194304},
			{ID: wireid.SettingMaxConcurrentStreams, Val: 100},
		},
		InitialConnectionWindowSize: u32p(10551295),
		PseudoHeaderOrder:           pseudoHeaderOrder,
		HeadersPriority:             &profile.HeaderPriority{StreamDependency: 0, Weight: 254, Exclusive: false},
		EnablePush:                  false,
	}
}
