package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/hpack"

	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

// loopback is a bytes.Buffer dressed as an io.ReadWriter, so
// NewHttp2Applier can write wire frames without a real socket and this
// test can read them back with a genuine http2.Framer.
type loopback struct {
	bytes.Buffer
}

func testHttp2Profile() *profile.Http2Profile {
	return &profile.Http2Profile{
		Settings: []profile.Http2Setting{
			{ID: wireid.SettingHeaderTableSize, Val: 65536},
			{ID: wireid.SettingEnablePush, Val: 0},
			{ID: wireid.SettingInitialWindowSize, Val: 6291456},
		},
		InitialConnectionWindowSize: func() *uint32 { v := uint32(15663105); return &v }(),
		PseudoHeaderOrder: []wireid.PseudoHeader{
			wireid.PseudoMethod, wireid.PseudoAuthority, wireid.PseudoScheme, wireid.PseudoPath,
		},
		HeadersPriority: &profile.HeaderPriority{StreamDependency: 0, Weight: 255, Exclusive: true},
		EnablePush:      false,
	}
}

func TestHttp2Applier_WriteConnectionPreface(t *testing.T) {
	conn := &loopback{}
	a, err := NewHttp2Applier(testHttp2Profile(), conn)
	require.NoError(t, err)

	require.NoError(t, a.WriteConnectionPreface())

	raw := conn.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte(http2.ClientPreface)))

	framer := http2.NewFramer(nil, bytes.NewReader(raw[len(http2.ClientPreface):]))
	frame, err := framer.ReadFrame()
	require.NoError(t, err)
	settingsFrame, ok := frame.(*http2.SettingsFrame)
	require.True(t, ok)
	assert.Equal(t, 3, settingsFrame.NumSettings())

	frame, err = framer.ReadFrame()
	require.NoError(t, err)
	wuFrame, ok := frame.(*http2.WindowUpdateFrame)
	require.True(t, ok)
	assert.Equal(t, uint32(15663105-defaultConnWindowSize), wuFrame.Increment)
}

func TestHttp2Applier_WriteConnectionPreface_NoWindowUpdateWhenAtDefault(t *testing.T) {
	p := testHttp2Profile()
	p.InitialConnectionWindowSize = nil

	conn := &loopback{}
	a, err := NewHttp2Applier(p, conn)
	require.NoError(t, err)
	require.NoError(t, a.WriteConnectionPreface())

	raw := conn.Bytes()
	framer := http2.NewFramer(nil, bytes.NewReader(raw[len(http2.ClientPreface):]))
	_, err = framer.ReadFrame() // SETTINGS
	require.NoError(t, err)
	_, err = framer.ReadFrame()
	assert.Error(t, err) // no further frames: io.EOF
}

func TestHttp2Applier_WriteConnectionPreface_WritesPriorityFrames(t *testing.T) {
	p := testHttp2Profile()
	p.InitialConnectionWindowSize = nil
	p.PriorityFrames = []profile.PriorityFrame{
		{StreamID: 3, Weight: 200},
		{StreamID: 9, StreamDependency: 7, Weight: 0},
	}

	conn := &loopback{}
	a, err := NewHttp2Applier(p, conn)
	require.NoError(t, err)
	require.NoError(t, a.WriteConnectionPreface())

	raw := conn.Bytes()
	framer := http2.NewFramer(nil, bytes.NewReader(raw[len(http2.ClientPreface):]))
	_, err = framer.ReadFrame() // SETTINGS
	require.NoError(t, err)

	frame, err := framer.ReadFrame()
	require.NoError(t, err)
	pf, ok := frame.(*http2.PriorityFrame)
	require.True(t, ok)
	assert.EqualValues(t, 3, pf.StreamID)
	assert.EqualValues(t, 200, pf.PriorityParam.Weight)

	frame, err = framer.ReadFrame()
	require.NoError(t, err)
	pf, ok = frame.(*http2.PriorityFrame)
	require.True(t, ok)
	assert.EqualValues(t, 9, pf.StreamID)
	assert.EqualValues(t, 7, pf.PriorityParam.StreamDep)
}

func TestHttp2Applier_WriteRequestHeaders(t *testing.T) {
	conn := &loopback{}
	a, err := NewHttp2Applier(testHttp2Profile(), conn)
	require.NoError(t, err)

	require.NoError(t, a.WriteRequestHeaders(1, "GET", "https", "example.com", "/", []profile.HeaderPair{
		{Name: "accept", Value: "*/*"},
	}, true))

	framer := http2.NewFramer(nil, bytes.NewReader(conn.Bytes()))
	frame, err := framer.ReadFrame()
	require.NoError(t, err)
	hf, ok := frame.(*http2.HeadersFrame)
	require.True(t, ok)
	assert.True(t, hf.StreamEnded())
	assert.True(t, hf.HeadersEnded())
	assert.True(t, hf.Priority.Exclusive)
	assert.EqualValues(t, 255, hf.Priority.Weight)

	dec := hpack.NewDecoder(4096, nil)
	fields, err := dec.DecodeFull(hf.HeaderBlockFragment())
	require.NoError(t, err)
	require.Len(t, fields, 5)
	assert.Equal(t, ":method", fields[0].Name)
	assert.Equal(t, "GET", fields[0].Value)
	assert.Equal(t, ":authority", fields[1].Name)
	assert.Equal(t, ":scheme", fields[2].Name)
	assert.Equal(t, ":path", fields[3].Name)
	assert.Equal(t, "accept", fields[4].Name)
}
