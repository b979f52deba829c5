package profile

import "github.com/veilwire/impersonate/wireid"

const (
	maxWindowSize = 1<<31 - 1
	minFrameSize  = 1 << 14
	maxFrameSize  = 1<<24 - 1
)

// Http2Setting is a single (identifier, value) pair in the SETTINGS
// frame's emission order — order in the containing slice is wire order.
type Http2Setting struct {
	ID  wireid.SettingID
	Val uint32
}

// HeaderPriority is the PRIORITY data attached to every outgoing
// request's HEADERS frame when a profile specifies one.
type HeaderPriority struct {
	StreamDependency uint32
	Weight           uint8
	Exclusive        bool
}

// PriorityFrame is a standalone PRIORITY frame some browsers send at
// connection setup, ahead of any request, to prime the server's stream
// dependency tree. Firefox sends six of these on a fixed set of idle
// stream IDs before its first request.
type PriorityFrame struct {
	StreamID         uint32
	StreamDependency uint32
	Weight           uint8
	Exclusive        bool
}

// Http2Profile is an immutable description of one HTTP/2 connection's
// SETTINGS, window sizes, and per-request pseudo-header/priority policy.
type Http2Profile struct {
	Settings []Http2Setting

	InitialConnectionWindowSize *uint32

	PseudoHeaderOrder []wireid.PseudoHeader
	HeadersPriority   *HeaderPriority
	PriorityFrames    []PriorityFrame
	EnablePush        bool

	frozen bool
}

// Freeze marks p immutable, copying its slices.
func (p *Http2Profile) Freeze() *Http2Profile {
	cp := *p
	cp.Settings = append([]Http2Setting(nil), p.Settings...)
	cp.PseudoHeaderOrder = append([]wireid.PseudoHeader(nil), p.PseudoHeaderOrder...)
	cp.PriorityFrames = append([]PriorityFrame(nil), p.PriorityFrames...)
	cp.frozen = true
	return &cp
}

func (p *Http2Profile) Frozen() bool { return p.frozen }

// Validate checks the profile's HTTP/2 invariants.
func (p *Http2Profile) Validate() error {
	var violations []error

	seen := make(map[wireid.SettingID]bool, len(p.Settings))
	enablePushVal, hasEnablePush := uint32(0), false
	for _, s := range p.Settings {
		if !wireid.IsRecognizedSetting(s.ID) {
			violations = append(violations, configErrorf("http2: unrecognized SETTINGS id %#x", uint16(s.ID)))
			continue
		}
		if seen[s.ID] {
			violations = append(violations, configErrorf("http2: duplicate SETTINGS id %#x", uint16(s.ID)))
		}
		seen[s.ID] = true

		switch s.ID {
		case wireid.SettingInitialWindowSize:
			if s.Val > maxWindowSize {
				violations = append(violations, configErrorf("http2: INITIAL_WINDOW_SIZE %d exceeds %d", s.Val, maxWindowSize))
			}
		case wireid.SettingMaxFrameSize:
			if s.Val < minFrameSize || s.Val > maxFrameSize {
				violations = append(violations, configErrorf("http2: MAX_FRAME_SIZE %d outside [%d, %d]", s.Val, minFrameSize, maxFrameSize))
			}
		case wireid.SettingEnablePush:
			hasEnablePush, enablePushVal = true, s.Val
		}
	}
	if hasEnablePush {
		wantsPush := enablePushVal != 0
		if wantsPush != p.EnablePush {
			violations = append(violations, configErrorf("http2: ENABLE_PUSH setting (%d) disagrees with profile.EnablePush (%v)", enablePushVal, p.EnablePush))
		}
	}

	if p.InitialConnectionWindowSize != nil && *p.InitialConnectionWindowSize > maxWindowSize {
		violations = append(violations, configErrorf("http2: initial_connection_window_size %d exceeds %d", *p.InitialConnectionWindowSize, maxWindowSize))
	}

	if p.PseudoHeaderOrder == nil {
		violations = append(violations, configErrorf("http2: pseudo_header_order is required"))
	} else if !wireid.IsValidPseudoHeaderOrder(p.PseudoHeaderOrder) {
		violations = append(violations, configErrorf("http2: pseudo_header_order must be a permutation of the four pseudo-headers"))
	}

	seenStreams := make(map[uint32]bool, len(p.PriorityFrames))
	for _, pf := range p.PriorityFrames {
		if pf.StreamID == 0 {
			violations = append(violations, configErrorf("http2: priority frame stream id must be non-zero"))
			continue
		}
		if seenStreams[pf.StreamID] {
			violations = append(violations, configErrorf("http2: duplicate priority frame stream id %d", pf.StreamID))
		}
		seenStreams[pf.StreamID] = true
	}

	return newConfigError(violations...)
}
