package chrome

import (
	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

// pseudoHeaderOrder is the wire order Chrome emits HTTP/2 pseudo-headers in.
var pseudoHeaderOrder = []wireid.PseudoHeader{
	wireid.PseudoMethod,
	wireid.PseudoAuthority,
	wireid.PseudoScheme,
	wireid.PseudoPath,
}

func u32p(v uint32) *uint32 { return &v }

// Http2Template1 is the settings frame every recent Chrome release emits.
func Http2Template1() *profile.Http2Profile {
	return &profile.Http2Profile{
		Settings: []profile.Http2Setting{
			{ID: wireid.SettingHeaderTableSize, Val: 65536},
			{ID: wireid.SettingEnablePush, Val: 0},
			{ID: wireid.SettingMaxConcurrentStreams, Val: 1000},
			{ID: wireid.SettingInitialWindowSize, Val: 6291456},
			{ID: wireid.SettingMaxHeaderListSize, Val: 262144},
		},
		InitialConnectionWindowSize: u32p(15663105),
		PseudoHeaderOrder:           pseudoHeaderOrder,
		HeadersPriority:             &profile.HeaderPriority{StreamDependency: 0, Weight: 255, Exclusive: true},
		EnablePush:                  false,
	}
}

// Http2Template3 adds ENABLE_CONNECT_PROTOCOL (WebSocket-over-h2) on top
// of template1, the settings Chrome 130 advertises.
func Http2Template3() *profile.Http2Profile {
	p := Http2Template1()
	p.Settings = append(append([]profile.Http2Setting(nil), p.Settings...), profile.Http2Setting{
		ID: wireid.SettingEnableConnectProtocol, Val: 1,
	})
	return p
}
