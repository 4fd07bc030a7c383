package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"testing"
	"time"

	"github.com/blakesmith/ar"
	"github.com/ulikunitz/xz"
)

// tarEntry describes one entry for buildTar. Zero typ means a regular
// file, zero mode means 0644.
type tarEntry struct {
	name string
	mode int64
	typ  byte
	body []byte
}

func buildTar(t *testing.T, entries []tarEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, e := range entries {
		typ := e.typ
		if typ == 0 {
			typ = tar.TypeReg
		}
		mode := e.mode
		if mode == 0 {
			mode = 0644
		}
		hdr := &tar.Header{
			Name:     e.name,
			Mode:     mode,
			Typeflag: typ,
			ModTime:  time.Unix(0, 0),
		}
		if typ == tar.TypeReg {
			hdr.Size = int64(len(e.body))
		}
		if typ == tar.TypeSymlink {
			hdr.Linkname = "/etc/passwd"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("writing tar header %s: %v", e.name, err)
		}
		if typ == tar.TypeReg {
			if _, err := tw.Write(e.body); err != nil {
				t.Fatalf("writing tar body %s: %v", e.name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("closing tar: %v", err)
	}
	return buf.Bytes()
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func xzBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write(data); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	return buf.Bytes()
}

// arMember describes one outer-container member for buildDeb.
type arMember struct {
	name string
	body []byte
}

func buildDeb(t *testing.T, members ...arMember) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := ar.NewWriter(&buf)
	if err := w.WriteGlobalHeader(); err != nil {
		t.Fatalf("writing ar global header: %v", err)
	}
	for _, m := range members {
		hdr := &ar.Header{
			Name:    m.name,
			Size:    int64(len(m.body)),
			Mode:    0644,
			ModTime: time.Unix(0, 0),
		}
		if err := w.WriteHeader(hdr); err != nil {
			t.Fatalf("writing ar header %s: %v", m.name, err)
		}
		if _, err := w.Write(m.body); err != nil {
			t.Fatalf("writing ar body %s: %v", m.name, err)
		}
	}
	return buf.Bytes()
}

// corruptSizeDeb returns an ar container whose single member header
// carries the given size field verbatim. buildDeb always writes
// consistent sizes, so hostile values have to be crafted by hand.
func corruptSizeDeb(size string) []byte {
	var buf bytes.Buffer
	buf.WriteString("!<arch>\n")
	fmt.Fprintf(&buf, "%-16s%-12s%-6s%-6s%-8s%-10s`\n", "debian-binary", "0", "0", "0", "100644", size)
	return buf.Bytes()
}

const testControl = `Package: demo
Version: 1.0-1
Architecture: amd64
Maintainer: Demo Maintainer <demo@example.com>
Description: A demonstration package
 Used by the extraction tests.
`

func controlTarGz(t *testing.T) []byte {
	t.Helper()
	return gzipBytes(t, buildTar(t, []tarEntry{
		{name: "./", typ: tar.TypeDir},
		{name: "./control", body: []byte(testControl)},
		{name: "./md5sums", body: []byte("d41d8cd98f00b204e9800998ecf8427e  usr/share/doc/demo\n")},
	}))
}

func dataTarGz(t *testing.T) []byte {
	t.Helper()
	return gzipBytes(t, dataTar(t))
}

func dataTar(t *testing.T) []byte {
	t.Helper()
	return buildTar(t, []tarEntry{
		{name: "./", typ: tar.TypeDir},
		{name: "./usr/", typ: tar.TypeDir},
		{name: "./usr/bin/", typ: tar.TypeDir},
		{name: "./usr/bin/demo", mode: 0755, body: []byte("#!/bin/sh\necho demo\n")},
	})
}
