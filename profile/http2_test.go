package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veilwire/impersonate/wireid"
)

func u32(v uint32) *uint32 { return &v }

func validHttp2Profile() *Http2Profile {
	return &Http2Profile{
		Settings: []Http2Setting{
			{ID: wireid.SettingHeaderTableSize, Val: 65536},
			{ID: wireid.SettingEnablePush, Val: 0},
			{ID: wireid.SettingInitialWindowSize, Val: 6291456},
		},
		InitialConnectionWindowSize: u32(15663105),
		PseudoHeaderOrder:           wireid.DefaultPseudoHeaderOrder,
		EnablePush:                  false,
	}
}

func TestHttp2Profile_ValidateAcceptsWellFormedProfile(t *testing.T) {
	assert.NoError(t, validHttp2Profile().Validate())
}

func TestHttp2Profile_ValidateRejectsUnrecognizedSetting(t *testing.T) {
	p := validHttp2Profile()
	p.Settings = append(p.Settings, Http2Setting{ID: 0x99, Val: 1})

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_ValidateRejectsDuplicateSetting(t *testing.T) {
	p := validHttp2Profile()
	p.Settings = append(p.Settings, Http2Setting{ID: wireid.SettingHeaderTableSize, Val: 1})

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_ValidateRejectsInitialWindowSizeOverflow(t *testing.T) {
	p := validHttp2Profile()
	p.Settings = []Http2Setting{{ID: wireid.SettingInitialWindowSize, Val: 1 << 31}}

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_ValidateRejectsMaxFrameSizeBelowMinimum(t *testing.T) {
	p := validHttp2Profile()
	p.Settings = append(p.Settings, Http2Setting{ID: wireid.SettingMaxFrameSize, Val: 1})

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_ValidateRejectsEnablePushInconsistency(t *testing.T) {
	p := validHttp2Profile()
	p.EnablePush = true // Settings still advertise ENABLE_PUSH=0

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_ValidateRequiresPseudoHeaderOrder(t *testing.T) {
	p := validHttp2Profile()
	p.PseudoHeaderOrder = nil

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_ValidateRejectsIncompletePseudoHeaderOrder(t *testing.T) {
	p := validHttp2Profile()
	p.PseudoHeaderOrder = []wireid.PseudoHeader{wireid.PseudoMethod, wireid.PseudoPath}

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_FreezeIsADeepCopy(t *testing.T) {
	p := validHttp2Profile()
	frozen := p.Freeze()

	p.Settings[0].Val = 1

	assert.True(t, frozen.Frozen())
	assert.EqualValues(t, 65536, frozen.Settings[0].Val)
}

func TestHttp2Profile_ValidateAcceptsPriorityFrames(t *testing.T) {
	p := validHttp2Profile()
	p.PriorityFrames = []PriorityFrame{
		{StreamID: 3, Weight: 200},
		{StreamID: 5, StreamDependency: 3, Weight: 100},
	}

	assert.NoError(t, p.Validate())
}

func TestHttp2Profile_ValidateRejectsZeroStreamIDPriorityFrame(t *testing.T) {
	p := validHttp2Profile()
	p.PriorityFrames = []PriorityFrame{{StreamID: 0, Weight: 1}}

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_ValidateRejectsDuplicatePriorityFrameStreamID(t *testing.T) {
	p := validHttp2Profile()
	p.PriorityFrames = []PriorityFrame{
		{StreamID: 3, Weight: 1},
		{StreamID: 3, Weight: 2},
	}

	assert.Error(t, p.Validate())
}

func TestHttp2Profile_FreezeCopiesPriorityFrames(t *testing.T) {
	p := validHttp2Profile()
	p.PriorityFrames = []PriorityFrame{{StreamID: 3, Weight: 200}}
	frozen := p.Freeze()

	p.PriorityFrames[0].Weight = 1

	assert.EqualValues(t, 200, frozen.PriorityFrames[0].Weight)
}
