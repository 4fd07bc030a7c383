package deb

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// nestedSuffixes lists entry-name endings treated as nested tar
// archives worth descending into. Longest suffixes first so that
// "inner.tar.gz" trims to "inner", not "inner.tar".
var nestedSuffixes = []string{".tar.gz", ".tar.xz", ".tgz", ".txz", ".tar"}

// extractTarEntries walks a decoded tar stream in strict order,
// validating every entry path against outDir before any write.
// Regular files are written with the entry's mode and directories are
// created idempotently. Every other entry kind (symlink, hardlink,
// device, fifo) is skipped without being followed or materialized.
//
// A regular entry whose name carries a tar suffix is written out and
// additionally descended into at depth+1; hitting the depth limit
// there truncates that branch with a warning instead of failing the
// member.
func extractTarEntries(tr *tar.Reader, outDir string, maxDepth, depth int, rep *Report) error {
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &FormatError{Err: fmt.Errorf("reading tar header: %w", err)}
		}

		target, err := ValidatePath(hdr.Name, outDir)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", hdr.Name, err)
			}
			rep.record(target)

		case tar.TypeReg:
			data, err := io.ReadAll(tr)
			if err != nil {
				return &FormatError{Err: fmt.Errorf("reading %s: %w", hdr.Name, err)}
			}
			if err := writeEntry(target, data, hdr.Mode); err != nil {
				return err
			}
			rep.record(target)

			if sub, ok := nestedName(filepath.Base(hdr.Name)); ok {
				err := extractNested(data, filepath.Dir(target), sub, hdr.Name, maxDepth, depth+1, rep)
				var rle *RecursionLimitError
				if errors.As(err, &rle) {
					rep.warnf("skipping nested archive %s: %v", hdr.Name, rle)
				} else if err != nil {
					return err
				}
			}

		default:
			// Symlinks and special files are never followed or created.
		}
	}
}

// writeEntry writes one regular file, creating parent directories as
// needed. A zero mode falls back to 0644.
func writeEntry(target string, data []byte, mode int64) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating parent directory for %s: %w", target, err)
	}
	perm := os.FileMode(mode & 0o777)
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(target, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// nestedName reports whether name looks like a nested tar archive and
// returns the directory name its contents extract into.
func nestedName(name string) (string, bool) {
	for _, suf := range nestedSuffixes {
		if strings.HasSuffix(name, suf) && len(name) > len(suf) {
			return strings.TrimSuffix(name, suf), true
		}
	}
	return "", false
}
