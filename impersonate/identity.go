// Package impersonate is the registry: it maps a symbolic identity to a
// composed profile.ImpersonateProfile, applying any build-time overrides
// before the result is frozen.
package impersonate

// Identity names one (browser, version) pair. The string values are part
// of this module's stable public API: every enumerated identity must be
// preserved across releases — removing one is a breaking change.
type Identity string

const (
	Chrome100 Identity = "Chrome100"
	Chrome104 Identity = "Chrome104"
	Chrome110 Identity = "Chrome110"
	Chrome116 Identity = "Chrome116"
	Chrome120 Identity = "Chrome120"
	Chrome124 Identity = "Chrome124"
	Chrome130 Identity = "Chrome130"

	Firefox102 Identity = "Firefox102"
	Firefox109 Identity = "Firefox109"
	Firefox117 Identity = "Firefox117"
	Firefox120 Identity = "Firefox120"
	Firefox133 Identity = "Firefox133"

	Safari15_6_1 Identity = "Safari15_6_1"
	Safari16_0   Identity = "Safari16_0"
	Safari17_0   Identity = "Safari17_0"
	Safari17_2_1 Identity = "Safari17_2_1"
	Safari17_4_1 Identity = "Safari17_4_1"
	Safari18_0   Identity = "Safari18_0"

	Edge101 Identity = "Edge101"
	Edge127 Identity = "Edge127"

	OkHttp4_9 Identity = "OkHttp4_9"
	OkHttp5_0 Identity = "OkHttp5_0"
)

// String satisfies fmt.Stringer.
func (i Identity) String() string { return string(i) }
