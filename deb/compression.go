package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/ulikunitz/xz"
)

// Decoder names reported in warnings.
const (
	codecGzip = "gzip"
	codecRaw  = "tar"
	codecXz   = "xz"
)

type decoderFunc func([]byte) ([]byte, error)

// decoders is the fallback chain, tried in order when the filename
// hint is absent or its decoder fails.
var decoders = []struct {
	name   string
	decode decoderFunc
}{
	{codecGzip, decodeGzip},
	{codecRaw, decodeRaw},
	{codecXz, decodeXz},
}

// resolveTar decodes member bytes into a raw tar stream and reports
// which decoder produced it. The filename hint selects a decoder first
// (".gz"/".tgz" gzip, ".xz"/".txz" xz, anything else raw); when the
// hint is empty or its decoder fails, every candidate is tried in
// chain order. A candidate succeeds once a tar header can be read from
// its output. When all candidates fail the error wraps ErrFormat.
func resolveTar(data []byte, hint string) ([]byte, string, error) {
	if hint != "" {
		want := hintDecoder(hint)
		for _, d := range decoders {
			if d.name != want {
				continue
			}
			if out, err := tryDecoder(d.decode, data); err == nil {
				return out, d.name, nil
			}
		}
	}

	var attempts []string
	for _, d := range decoders {
		out, err := tryDecoder(d.decode, data)
		if err == nil {
			return out, d.name, nil
		}
		attempts = append(attempts, fmt.Sprintf("%s: %v", d.name, err))
	}
	return nil, "", fmt.Errorf("%w: no decoder yields a tar stream (%s)",
		ErrFormat, strings.Join(attempts, "; "))
}

// hintDecoder maps a member filename to the decoder its suffix suggests.
func hintDecoder(hint string) string {
	switch {
	case strings.HasSuffix(hint, ".gz") || strings.HasSuffix(hint, ".tgz"):
		return codecGzip
	case strings.HasSuffix(hint, ".xz") || strings.HasSuffix(hint, ".txz"):
		return codecXz
	default:
		return codecRaw
	}
}

// tryDecoder runs one decoder and proves the result parses as tar by
// reading the first header.
func tryDecoder(decode decoderFunc, data []byte) ([]byte, error) {
	out, err := decode(data)
	if err != nil {
		return nil, err
	}
	tr := tar.NewReader(bytes.NewReader(out))
	if _, err := tr.Next(); err != nil {
		return nil, fmt.Errorf("not a tar stream: %w", err)
	}
	return out, nil
}

func decodeGzip(data []byte) ([]byte, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gzr.Close()
	return io.ReadAll(gzr)
}

func decodeRaw(data []byte) ([]byte, error) { return data, nil }

func decodeXz(data []byte) ([]byte, error) {
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(xzr)
}
