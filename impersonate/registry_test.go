package impersonate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilwire/impersonate/profile"
	"github.com/veilwire/impersonate/wireid"
)

func TestResolve_UnknownIdentityReturnsBuilderError(t *testing.T) {
	_, err := Resolve(Identity("NotARealBrowser"), Overrides{})

	require.Error(t, err)
	var builderErr *profile.BuilderError
	assert.ErrorAs(t, err, &builderErr)
}

func TestResolve_EveryRegisteredIdentityResolves(t *testing.T) {
	for id := range templates {
		p, err := Resolve(id, Overrides{})
		require.NoErrorf(t, err, "identity %s", id)
		assert.True(t, p.Frozen())
	}
}

func TestResolve_IsDeterministicAcrossConcurrentCalls(t *testing.T) {
	const n = 8
	results := make([]*profile.ImpersonateProfile, n)
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		i := i
		go func() {
			p, err := Resolve(Chrome130, Overrides{})
			require.NoError(t, err)
			results[i] = p
			done <- i
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}

	for i := 1; i < n; i++ {
		assert.Equal(t, results[0].Tls.Ciphers, results[i].Tls.Ciphers)
		assert.Equal(t, results[0].Headers.Order, results[i].Headers.Order)
	}
}

func TestResolve_HeaderOrderOverrideReplacesTemplateOrder(t *testing.T) {
	p, err := Resolve(Chrome130, Overrides{HeaderOrder: []string{"host", "user-agent"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"host", "user-agent"}, p.Headers.Order)
}

func TestResolve_HeaderOrderOverrideDoesNotMutateTemplate(t *testing.T) {
	_, err := Resolve(Chrome130, Overrides{HeaderOrder: []string{"host"}})
	require.NoError(t, err)

	p2, err := Resolve(Chrome130, Overrides{})
	require.NoError(t, err)

	assert.NotEqual(t, []string{"host"}, p2.Headers.Order)
}

func TestResolve_TlsOverridesApplyOnTopOfTemplate(t *testing.T) {
	min := wireid.TLS1_3
	p, err := Resolve(Chrome130, Overrides{Tls: profile.TlsOverrides{MinVersion: &min}})
	require.NoError(t, err)

	assert.Equal(t, wireid.TLS1_3, p.Tls.MinVersion)
}

func TestResolve_PreconfiguredBypassesRegistry(t *testing.T) {
	custom := &profile.ImpersonateProfile{
		Tls: &profile.TlsProfile{
			MinVersion: wireid.TLS1_2,
			MaxVersion: wireid.TLS1_2,
			Curves:     []wireid.CurveID{wireid.CurveSECP224R1, wireid.CurveSECP521R1},
			SigAlgs:    []wireid.SignatureScheme{wireid.SigSchemeECDSAWithP256AndSHA256},
			Ciphers:    []wireid.CipherSuite{wireid.CipherAES128GCMSHA256},
			ALPN:       wireid.ALPNHTTP11Only,
		},
		Headers: &profile.HeaderProfile{},
	}

	p, err := Resolve(Chrome130, Overrides{Preconfigured: custom})
	require.NoError(t, err)

	assert.Equal(t, []wireid.CurveID{wireid.CurveSECP224R1, wireid.CurveSECP521R1}, p.Tls.Curves)
}

func TestPseudoHeaderOrderOf_FallsBackToDefault(t *testing.T) {
	order := PseudoHeaderOrderOf(nil)
	assert.Equal(t, wireid.DefaultPseudoHeaderOrder, order)
}
