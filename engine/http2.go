package engine

import (
	"bytes"
	"errors"
	"io"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/hpack"

	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

// defaultConnWindowSize is the RFC 7540 §6.9.2 default connection flow
// control window before any WINDOW_UPDATE is sent.
const defaultConnWindowSize = 65535

// Http2Applier emits the HTTP/2 connection preamble (preface + a single
// SETTINGS frame, plus a connection-level WINDOW_UPDATE when the profile
// raises the window above the RFC default) and composes per-request
// HEADERS frames in the profile's pseudo-header order and PRIORITY.
type Http2Applier struct {
	profile *profile.Http2Profile
	conn    io.ReadWriter
	framer  *http2.Framer
}

// NewHttp2Applier binds a validated Http2Profile to conn. conn must
// already be the negotiated h2 connection (post-ALPN); this core never
// dials or negotiates itself.
func NewHttp2Applier(p *profile.Http2Profile, conn io.ReadWriter) (*Http2Applier, error) {
	if p == nil {
		return nil, profile.NewConfigError(errors.New("http2 profile is required"))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log.WithField("settings", len(p.Settings)).Debug("binding http2 applier")
	return &Http2Applier{
		profile: p,
		conn:    conn,
		framer:  http2.NewFramer(conn, conn),
	}, nil
}

// WriteConnectionPreface writes the client connection preface, a single
// SETTINGS frame carrying profile.Settings in wire order, a WINDOW_UPDATE
// on stream 0 when InitialConnectionWindowSize raises the connection
// window above the default, and any standalone PRIORITY frames the
// profile primes the dependency tree with before the first request.
// Real browsers never split their initial SETTINGS across multiple
// frames, so this always writes exactly one.
func (a *Http2Applier) WriteConnectionPreface() error {
	if _, err := io.WriteString(a.conn, http2.ClientPreface); err != nil {
		return profile.NewEngineError("write_preface", err)
	}

	settings := make([]http2.Setting, 0, len(a.profile.Settings))
	for _, s := range a.profile.Settings {
		settings = append(settings, http2.Setting{ID: s.ID, Val: s.Val})
	}
	if err := a.framer.WriteSettings(settings...); err != nil {
		return profile.NewEngineError("write_settings", err)
	}

	if a.profile.InitialConnectionWindowSize != nil {
		delta := int64(*a.profile.InitialConnectionWindowSize) - defaultConnWindowSize
		if delta > 0 {
			if err := a.framer.WriteWindowUpdate(0, uint32(delta)); err != nil {
				return profile.NewEngineError("write_window_update", err)
			}
		}
	}

	for _, pf := range a.profile.PriorityFrames {
		err := a.framer.WritePriority(pf.StreamID, http2.PriorityParam{
			StreamDep: pf.StreamDependency,
			Exclusive: pf.Exclusive,
			Weight:    pf.Weight,
		})
		if err != nil {
			return profile.NewEngineError("write_priority", err)
		}
	}

	return nil
}

// WriteRequestHeaders hpack-encodes the four pseudo-headers in
// PseudoHeaderOrder followed by headers (already composed by a
// HeaderComposer, in the order it returned), then writes one HEADERS
// frame for streamID — attaching PRIORITY data when the profile
// specifies one. Oversized header blocks that would need CONTINUATION
// framing are the caller's concern; every impersonated browser profile
// in this module fits comfortably in a single HEADERS frame.
func (a *Http2Applier) WriteRequestHeaders(streamID uint32, method, scheme, authority, path string, headers []profile.HeaderPair, endStream bool) error {
	order := a.profile.PseudoHeaderOrder
	if order == nil {
		order = wireid.DefaultPseudoHeaderOrder
	}

	var buf bytes.Buffer
	enc := hpack.NewEncoder(&buf)
	for _, ph := range order {
		var v string
		switch ph {
		case wireid.PseudoMethod:
			v = method
		case wireid.PseudoScheme:
			v = scheme
		case wireid.PseudoAuthority:
			v = authority
		case wireid.PseudoPath:
			v = path
		}
		if err := enc.WriteField(hpack.HeaderField{Name: string(ph), Value: v}); err != nil {
			return profile.NewEngineError("encode_pseudo_header", err)
		}
	}
	for _, h := range headers {
		if err := enc.WriteField(hpack.HeaderField{Name: h.Name, Value: h.Value}); err != nil {
			return profile.NewEngineError("encode_header", err)
		}
	}

	param := http2.HeadersFrameParam{
		StreamID:      streamID,
		BlockFragment: buf.Bytes(),
		EndHeaders:    true,
		EndStream:     endStream,
	}
	if hp := a.profile.HeadersPriority; hp != nil {
		param.Priority = http2.PriorityParam{
			StreamDep: hp.StreamDependency,
			Exclusive: hp.Exclusive,
			Weight:    hp.Weight,
		}
	}

	if err := a.framer.WriteHeaders(param); err != nil {
		return profile.NewEngineError("write_headers", err)
	}
	return nil
}
