package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

func settingValue(t *testing.T, settings []profile.Http2Setting, id wireid.SettingID) uint32 {
	t.Helper()
	for _, s := range settings {
		if s.ID == id {
			return s.Val
		}
	}
	t.Fatalf("setting %v not found", id)
	return 0
}

func TestV130_MatchesTheNamedChrome130Scenario(t *testing.T) {
	p, err := V130()
	require.NoError(t, err)
	require.NoError(t, p.Tls.Validate())
	require.NoError(t, p.Http2.Validate())

	assert.Equal(t, cipherList, p.Tls.Ciphers)
	assert.Len(t, p.Tls.Ciphers, 15)
	assert.Equal(t, wireid.CipherAES128GCMSHA256, p.Tls.Ciphers[0])
	assert.Equal(t, wireid.CipherRSAAES256CBCSHA, p.Tls.Ciphers[len(p.Tls.Ciphers)-1])
	assert.Equal(t, wireid.CurveX25519Kyber768Draft00, p.Tls.Curves[0])
	assert.True(t, p.Tls.ECHGrease)
	assert.True(t, p.Tls.ApplicationSettings)

	assert.EqualValues(t, 1000, settingValue(t, p.Http2.Settings, wireid.SettingMaxConcurrentStreams))
	assert.EqualValues(t, 1, settingValue(t, p.Http2.Settings, wireid.SettingEnableConnectProtocol))
	assert.Equal(t, uint32(15663105), *p.Http2.InitialConnectionWindowSize)
}

func TestV130AndV120_ShareTheSameHeaderOrder(t *testing.T) {
	v130, err := V130()
	require.NoError(t, err)
	v120, err := V120()
	require.NoError(t, err)

	assert.Equal(t, v130.Headers.Order, v120.Headers.Order)
}

func TestChromeVersions_AllProduceValidProfiles(t *testing.T) {
	versions := map[string]profile.Template{
		"V100": V100, "V104": V104, "V110": V110, "V116": V116,
		"V120": V120, "V124": V124, "V130": V130,
	}
	for name, tmpl := range versions {
		p, err := tmpl()
		require.NoErrorf(t, err, "%s: building profile", name)
		_, err = p.Freeze()
		require.NoErrorf(t, err, "%s: freezing profile", name)
	}
}
