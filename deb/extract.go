package deb

import (
	"archive/tar"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blakesmith/ar"
)

// Report is the outcome of one extraction run: the paths written in
// order, the warnings accumulated for nested members that failed to
// decode or branches truncated by the depth limit, and the parsed
// control metadata when the package carried one.
//
// Every path listed in Written exists on disk when Extract returns,
// even if the run ended in an error.
type Report struct {
	Written  []string
	Warnings []string
	Control  *Metadata
}

func (r *Report) record(path string) { r.Written = append(r.Written, path) }

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Extract reads the .deb file at inputPath and extracts it under
// outputDir, descending at most maxDepth nested-archive levels.
// A maxDepth of zero or less fails before the input file is opened.
//
// On a fatal error the returned Report still describes everything
// written up to that point.
func Extract(inputPath, outputDir string, maxDepth int) (*Report, error) {
	if maxDepth <= 0 {
		return &Report{}, &RecursionLimitError{Depth: 0, Limit: maxDepth}
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return &Report{}, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()
	return ExtractReader(f, outputDir, maxDepth)
}

// ExtractReader buffers the whole .deb stream in memory, parses the
// outer ar container, and dispatches each member in container order:
// debian-binary is written verbatim, control.tar* and data.tar*
// members extract into the control and data subdirectories, and any
// other member is written verbatim under a validated path.
//
// A malformed outer container is fatal. A malformed nested member is
// recorded as a warning and its siblings continue. Path-validation
// failures are fatal at every level.
func ExtractReader(r io.Reader, outputDir string, maxDepth int) (*Report, error) {
	rep := &Report{}
	if maxDepth <= 0 {
		return rep, &RecursionLimitError{Depth: 0, Limit: maxDepth}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return rep, fmt.Errorf("reading package: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return rep, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	arR := ar.NewReader(bytes.NewReader(data))
	for {
		hdr, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, &FormatError{Err: fmt.Errorf("reading ar header: %w", err)}
		}

		name := memberName(hdr.Name)
		// The size field is attacker-controlled; the whole container
		// is in memory, so no member can exceed the input length.
		if hdr.Size < 0 || hdr.Size > int64(len(data)) {
			return rep, &FormatError{Member: name, Err: fmt.Errorf("implausible member size %d", hdr.Size)}
		}
		payload := make([]byte, hdr.Size)
		if _, err := io.ReadFull(arR, payload); err != nil {
			return rep, &FormatError{Member: name, Err: fmt.Errorf("reading member: %w", err)}
		}

		if err := dispatchMember(name, payload, outputDir, maxDepth, rep); err != nil {
			return rep, err
		}
	}

	if b, err := os.ReadFile(filepath.Join(outputDir, ControlDir, string(FileControl))); err == nil {
		rep.Control = ParseControl(string(b))
	}
	return rep, nil
}

// dispatchMember routes one container member by name: the two tar
// members go through nested extraction at depth zero, everything else
// is a validated direct write.
func dispatchMember(name string, payload []byte, outputDir string, maxDepth int, rep *Report) error {
	switch {
	case strings.HasPrefix(name, string(PkgControlTar)):
		return extractNested(payload, outputDir, ControlDir, name, maxDepth, 0, rep)
	case strings.HasPrefix(name, string(PkgDataTar)):
		return extractNested(payload, outputDir, DataDir, name, maxDepth, 0, rep)
	default:
		target, err := ValidatePath(name, outputDir)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, payload, 0o644); err != nil {
			return fmt.Errorf("writing member %s: %w", name, err)
		}
		rep.record(target)
		return nil
	}
}

// extractNested extracts one nested tar archive into baseDir/subdir.
// The depth precondition is checked before any bytes are touched.
// Decode failures for this member are recorded as warnings on the
// report and do not fail the run; the subdirectory remains and sibling
// members continue. Path-validation and IO failures propagate.
func extractNested(data []byte, baseDir, subdir, member string, maxDepth, depth int, rep *Report) error {
	if depth >= maxDepth {
		return &RecursionLimitError{Depth: depth, Limit: maxDepth}
	}
	outDir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	rep.record(outDir)

	stream, codec, err := resolveTar(data, member)
	if err != nil {
		rep.warnf("failed to extract %s: %v", member, err)
		return nil
	}

	err = extractTarEntries(tar.NewReader(bytes.NewReader(stream)), outDir, maxDepth, depth, rep)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			rep.warnf("failed to extract %s (%s): %v", member, codec, err)
			return nil
		}
		return err
	}
	return nil
}

// memberName normalizes an ar header name: BSD ar pads with spaces,
// GNU ar appends a '/' terminator.
func memberName(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), "/")
}
