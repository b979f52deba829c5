package wireid

import "golang.org/x/net/http2"

// SettingID re-exports golang.org/x/net/http2's SettingID under the
// vocabulary this module's profiles are built from, so that profile/
// and profiles/ never need to import the HTTP/2 engine package directly
// for anything beyond this alias.
type SettingID = http2.SettingID

const (
	SettingHeaderTableSize      = http2.SettingHeaderTableSize
	SettingEnablePush           = http2.SettingEnablePush
	SettingMaxConcurrentStreams = http2.SettingMaxConcurrentStreams
	SettingInitialWindowSize    = http2.SettingInitialWindowSize
	SettingMaxFrameSize         = http2.SettingMaxFrameSize
	SettingMaxHeaderListSize    = http2.SettingMaxHeaderListSize
	// SettingEnableConnectProtocol is RFC 8441 extended CONNECT support
	// (SETTINGS_ENABLE_CONNECT_PROTOCOL, id 0x8), not named by
	// golang.org/x/net/http2, so it is defined directly here.
	SettingEnableConnectProtocol SettingID = 0x8
)

// recognizedSettings is the set of SETTINGS identifiers this module
// knows how to validate and order. Anything else is rejected at profile
// build time: an unspecified ID must not be emitted.
var recognizedSettings = map[SettingID]struct{}{
	SettingHeaderTableSize:       {},
	SettingEnablePush:            {},
	SettingMaxConcurrentStreams:  {},
	SettingInitialWindowSize:     {},
	SettingMaxFrameSize:          {},
	SettingMaxHeaderListSize:     {},
	SettingEnableConnectProtocol: {},
}

// IsRecognizedSetting reports whether id is one of the SETTINGS
// identifiers this module supports emitting.
func IsRecognizedSetting(id SettingID) bool {
	_, ok := recognizedSettings[id]
	return ok
}

// PseudoHeader is one of the four HTTP/2 request pseudo-headers.
type PseudoHeader string

const (
	PseudoMethod    PseudoHeader = ":method"
	PseudoScheme    PseudoHeader = ":scheme"
	PseudoAuthority PseudoHeader = ":authority"
	PseudoPath      PseudoHeader = ":path"
)

// DefaultPseudoHeaderOrder is the order the HTTP/2 spec's examples use
// and the fallback when a profile doesn't override it.
var DefaultPseudoHeaderOrder = []PseudoHeader{PseudoMethod, PseudoScheme, PseudoAuthority, PseudoPath}

// IsValidPseudoHeaderOrder reports whether order is a permutation of
// exactly the four pseudo-headers, each appearing once.
func IsValidPseudoHeaderOrder(order []PseudoHeader) bool {
	if len(order) != 4 {
		return false
	}
	seen := make(map[PseudoHeader]bool, 4)
	for _, h := range order {
		switch h {
		case PseudoMethod, PseudoScheme, PseudoAuthority, PseudoPath:
		default:
			return false
		}
		if seen[h] {
			return false
		}
		seen[h] = true
	}
	return true
}
