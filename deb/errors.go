package deb

import (
	"errors"
	"fmt"
)

// Sentinel errors for security-relevant failures. These are always
// fatal and never downgraded to warnings.
var (
	// ErrPathTraversal indicates an archive entry path containing a
	// parent-directory reference.
	ErrPathTraversal = errors.New("path contains '..'")

	// ErrPathAbsolute indicates an absolute archive entry path
	// (leading '/', drive letter, or UNC prefix).
	ErrPathAbsolute = errors.New("absolute path not allowed")

	// ErrFormat indicates malformed ar, tar, or compressed bytes.
	ErrFormat = errors.New("archive format error")

	// ErrNoSignature indicates the package has no _gpgorigin member.
	ErrNoSignature = errors.New("package is not signed")
)

// FormatError reports malformed bytes in a named archive member. It is
// fatal for the outer ar container and downgraded to a warning for
// nested members.
type FormatError struct {
	// Member is the container member name, empty for the container itself.
	Member string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("archive format error: %v", e.Err)
	}
	return fmt.Sprintf("archive format error in %s: %v", e.Member, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// RecursionLimitError reports that nested-archive descent reached the
// configured depth limit. It is fatal only at the outermost call with
// a limit of zero; mid-recursion it truncates just that branch.
type RecursionLimitError struct {
	Depth int
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("recursion limit exceeded: depth %d, limit %d", e.Depth, e.Limit)
}

// pathError wraps a path-validation sentinel with the offending path.
func pathError(sentinel error, path string) error {
	return fmt.Errorf("%w: %q", sentinel, path)
}
