package okhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilwire/impersonate/profile"
)

func TestOkHttpVersions_AllProduceValidProfiles(t *testing.T) {
	versions := map[string]profile.Template{
		"V4_9_Android11": V4_9_Android11, "V5_0_Android13": V5_0_Android13,
	}
	for name, tmpl := range versions {
		p, err := tmpl()
		require.NoErrorf(t, err, "%s: building profile", name)
		_, err = p.Freeze()
		require.NoErrorf(t, err, "%s: freezing profile", name)
	}
}

func TestOkHttp_HeaderSetHasNoClientHints(t *testing.T) {
	p, err := V4_9_Android11()
	require.NoError(t, err)

	for _, d := range p.Headers.Defaults {
		assert.NotContains(t, d.Name, "sec-ch-ua")
		assert.NotContains(t, d.Name, "sec-fetch")
	}
}
