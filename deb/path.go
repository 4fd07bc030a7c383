package deb

import (
	"path/filepath"
	"strings"
)

// ValidatePath resolves an archive-relative path against base and
// guarantees the result is a descendant of base. An empty path maps to
// base itself.
//
// Inputs beginning with '/', a Windows drive letter, or '\\' return
// ErrPathAbsolute. Any '..' in the raw string returns ErrPathTraversal;
// the check runs on the literal text before decomposition, so a name
// like "a..b" is rejected as well. Remaining segments are cleaned of
// '.' references and joined onto base.
//
// The function is pure: the same validator serves top-level ar member
// names and every tar entry at every recursion depth.
func ValidatePath(raw, base string) (string, error) {
	if raw == "" {
		return base, nil
	}
	if strings.HasPrefix(raw, "/") {
		return "", pathError(ErrPathAbsolute, raw)
	}
	if len(raw) >= 2 && raw[1] == ':' && isASCIILetter(raw[0]) {
		return "", pathError(ErrPathAbsolute, raw)
	}
	if strings.HasPrefix(raw, `\\`) {
		return "", pathError(ErrPathAbsolute, raw)
	}
	if strings.Contains(raw, "..") {
		return "", pathError(ErrPathTraversal, raw)
	}

	parts := []string{base}
	for _, seg := range strings.FieldsFunc(raw, isPathSep) {
		switch seg {
		case ".":
			continue
		case "..":
			// Unreachable given the literal check above.
			return "", pathError(ErrPathTraversal, raw)
		default:
			parts = append(parts, seg)
		}
	}
	return filepath.Join(parts...), nil
}

func isPathSep(r rune) bool { return r == '/' || r == '\\' }

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
