package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veilwire/impersonate/profile"
)

func TestNewHeaderComposer_DelegatesToProfile(t *testing.T) {
	h := &profile.HeaderProfile{
		Defaults: []profile.HeaderPair{{Name: "accept", Value: "*/*"}},
		Order:    []string{"accept"},
	}
	compose := NewHeaderComposer(h)

	got := compose([]profile.HeaderPair{{Name: "host", Value: "example.com"}})

	assert.Equal(t, []profile.HeaderPair{
		{Name: "accept", Value: "*/*"},
		{Name: "host", Value: "example.com"},
	}, got)
}
