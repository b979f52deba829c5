package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilwire/impersonate/wireid"
)

func TestCompressorFor_ReturnsNilForUnknownAlgorithm(t *testing.T) {
	assert.Nil(t, CompressorFor(wireid.CertCompressionAlgorithm(99)))
}

func TestCertCompressors_RoundTrip(t *testing.T) {
	payload := []byte("a certificate message, repeated repeated repeated for compressibility")

	for _, alg := range []wireid.CertCompressionAlgorithm{
		wireid.CertCompressionZlib,
		wireid.CertCompressionBrotli,
		wireid.CertCompressionZstd,
	} {
		c := CompressorFor(alg)
		require.NotNilf(t, c, "algorithm %s", alg)
		assert.Equal(t, alg, c.Algorithm())

		var buf bytes.Buffer
		require.NoError(t, c.Compress(&buf, payload))

		out, err := c.Decompress(buf.Bytes(), len(payload))
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	}
}
