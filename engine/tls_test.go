package engine

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

func testImpersonateProfile(t *testing.T) *profile.ImpersonateProfile {
	t.Helper()
	p := &profile.ImpersonateProfile{
		Tls: &profile.TlsProfile{
			MinVersion:           wireid.TLS1_2,
			MaxVersion:           wireid.TLS1_3,
			Curves:               []wireid.CurveID{wireid.CurveX25519, wireid.CurveSECP256R1},
			SigAlgs:              []wireid.SignatureScheme{wireid.SigSchemeECDSAWithP256AndSHA256},
			Ciphers:              []wireid.CipherSuite{wireid.CipherAES128GCMSHA256},
			ALPN:                 wireid.ALPNH2ThenHTTP11,
			SNI:                  true,
			GREASE:               true,
			SessionTicket:        true,
			CertCompressionAlgs:  []wireid.CertCompressionAlgorithm{wireid.CertCompressionBrotli},
			SignedCertTimestamps: true,
			OCSPStapling:         true,
		},
		Http2:   &profile.Http2Profile{PseudoHeaderOrder: wireid.DefaultPseudoHeaderOrder},
		Headers: &profile.HeaderProfile{},
	}
	frozen, err := p.Freeze()
	require.NoError(t, err)
	return frozen
}

func TestBuildConnectorFactory_RejectsNilTls(t *testing.T) {
	_, err := BuildConnectorFactory(&profile.ImpersonateProfile{})
	assert.Error(t, err)
}

func TestBuildConnectorFactory_RejectsInvalidProfile(t *testing.T) {
	p := testImpersonateProfile(t)
	bad := *p.Tls
	bad.Curves = nil
	_, err := BuildConnectorFactory(&profile.ImpersonateProfile{Tls: &bad, Headers: p.Headers})

	var cfgErr *profile.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestBuildConnectorFactory_AppliesPresetWithoutDialing(t *testing.T) {
	p := testImpersonateProfile(t)
	factory, err := BuildConnectorFactory(p)
	require.NoError(t, err)

	client, server := net.Pipe()
	defer server.Close()

	uconn, err := factory(client, "example.com")
	require.NoError(t, err)
	assert.NotNil(t, uconn)
}

func TestBuildConnectorFactory_IsReusableAcrossConnections(t *testing.T) {
	p := testImpersonateProfile(t)
	factory, err := BuildConnectorFactory(p)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		client, server := net.Pipe()
		uconn, err := factory(client, "example.com")
		require.NoError(t, err)
		assert.NotNil(t, uconn)
		server.Close()
	}
}
