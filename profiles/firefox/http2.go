package firefox

import (
	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

// pseudoHeaderOrder is the wire order Firefox emits HTTP/2 pseudo-headers in.
var pseudoHeaderOrder = []wireid.PseudoHeader{
	wireid.PseudoMethod,
	wireid.PseudoPath,
	wireid.PseudoAuthority,
	wireid.PseudoScheme,
}

func u32p(v uint32) *uint32 { return &v }

// priorityFrames is the six-stream dependency tree Firefox primes the
// server with at connection setup, ahead of its first request.
var priorityFrames = []profile.PriorityFrame{
	{StreamID: 3, StreamDependency: 0, Weight: 200, Exclusive: false},
	{StreamID: 5, StreamDependency: 0, Weight: 100, Exclusive: false},
	{StreamID: 7, StreamDependency: 0, Weight: 0, Exclusive: false},
	{StreamID: 9, StreamDependency: 7, Weight: 0, Exclusive: false},
	{StreamID: 11, StreamDependency: 3, Weight: 0, Exclusive: false},
	{StreamID: 13, StreamDependency: 0, Weight: 240, Exclusive: false},
}

// http2Template1 is the HTTP/2 settings and priority frames Firefox sends.
func http2Template1() *profile.Http2Profile {
	return &profile.Http2Profile{
		Settings: []profile.Http2Setting{
			{ID: wireid.SettingHeaderTableSize, Val: 65536},
			{ID: wireid.SettingEnablePush, Val: 0},
			{ID: wireid.SettingInitialWindowSize, Val: 131072},
			{ID: wireid.SettingMaxFrameSize, Val: 16384},
		},
		InitialConnectionWindowSize: u32p(12517377),
		PseudoHeaderOrder:           pseudoHeaderOrder,
		HeadersPriority:             &profile.HeaderPriority{StreamDependency: 13, Weight: 41, Exclusive: false},
		PriorityFrames:              priorityFrames,
		EnablePush:                  false,
	}
}
