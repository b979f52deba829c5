package engine

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"

	"github.com/veilwire/impersonate/wireid"
)

// CertCompressor compresses a certificate message for advertisement
// under one of TlsProfile.CertCompressionAlgs. The TLS engine that owns
// the real socket decides whether to actually use compression; this
// type exists so the algorithms a profile advertises are backed by real
// codecs rather than bare identifiers, matching the corpus's general
// habit of landing on a concrete library per concern rather than a
// stdlib-only placeholder.
type CertCompressor interface {
	Algorithm() wireid.CertCompressionAlgorithm
	Compress(dst io.Writer, src []byte) error
	Decompress(src []byte, decompressedLen int) ([]byte, error)
}

type brotliCompressor struct{}

func (brotliCompressor) Algorithm() wireid.CertCompressionAlgorithm {
	return wireid.CertCompressionBrotli
}

func (brotliCompressor) Compress(dst io.Writer, src []byte) error {
	w := brotli.NewWriter(dst)
	if _, err := w.Write(src); err != nil {
		return err
	}
	return w.Close()
}

func (brotliCompressor) Decompress(src []byte, decompressedLen int) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	out := make([]byte, 0, decompressedLen)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type zstdCompressor struct{}

func (zstdCompressor) Algorithm() wireid.CertCompressionAlgorithm {
	return wireid.CertCompressionZstd
}

func (zstdCompressor) Compress(dst io.Writer, src []byte) error {
	enc, err := zstd.NewWriter(dst)
	if err != nil {
		return err
	}
	if _, err := enc.Write(src); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func (zstdCompressor) Decompress(src []byte, decompressedLen int) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, make([]byte, 0, decompressedLen))
}

// zlibCompressor is the one algorithm backed by the standard library:
// no third-party zlib implementation appears anywhere in the example
// pack, and zlib's wire format is a standard DEFLATE wrapper the stdlib
// already implements correctly (see DESIGN.md).
type zlibCompressor struct{}

func (zlibCompressor) Algorithm() wireid.CertCompressionAlgorithm {
	return wireid.CertCompressionZlib
}

func (zlibCompressor) Compress(dst io.Writer, src []byte) error {
	w := zlib.NewWriter(dst)
	if _, err := w.Write(src); err != nil {
		return err
	}
	return w.Close()
}

func (zlibCompressor) Decompress(src []byte, decompressedLen int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	out := bytes.NewBuffer(make([]byte, 0, decompressedLen))
	if _, err := io.Copy(out, r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// certCompressors is the registry behind CompressorFor.
var certCompressors = map[wireid.CertCompressionAlgorithm]CertCompressor{
	wireid.CertCompressionZlib:   zlibCompressor{},
	wireid.CertCompressionBrotli: brotliCompressor{},
	wireid.CertCompressionZstd:   zstdCompressor{},
}

// CompressorFor returns the codec implementing alg, or nil if alg is not
// one of the three recognized algorithms.
func CompressorFor(alg wireid.CertCompressionAlgorithm) CertCompressor {
	return certCompressors[alg]
}
