package deb

import "strings"

// Metadata holds the fields of the Debian 'control' file carried in
// the package's control archive.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#binary-package-control-files-debian-control
type Metadata struct {
	// Package is the binary package name.
	Package string

	// Version is the package version, [epoch:]upstream[-revision].
	Version string

	// Architecture is the hardware architecture, or "all".
	Architecture string

	// Maintainer is "Name <email>".
	Maintainer string

	// Description holds the synopsis on the first line and the
	// extended description, folded per Debian rules, after it.
	Description string

	Section  string
	Priority string
	Homepage string

	// Essential marks packages the system warns about removing.
	Essential bool

	// Relationship fields, each a list of "package (op version)" terms.
	Depends    []string
	PreDepends []string
	Recommends []string
	Suggests   []string
	Conflicts  []string
	Breaks     []string
	Replaces   []string
	Provides   []string

	// Source is the source package name when it differs from Package.
	Source string

	// ExtraFields holds any non-standard fields verbatim.
	ExtraFields map[string]string
}

// ParseControl parses Debian control-file text into a Metadata.
// Folded (indented continuation) values are preserved with their
// newlines; unknown fields land in ExtraFields. Installed-Size is a
// computed field and is dropped.
func ParseControl(content string) *Metadata {
	m := &Metadata{ExtraFields: make(map[string]string)}

	var key string
	var value strings.Builder
	flush := func() {
		if key != "" {
			m.set(key, strings.TrimSpace(value.String()))
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			value.WriteString("\n" + line)
		} else if strings.Contains(line, ":") {
			flush()
			parts := strings.SplitN(line, ":", 2)
			key = parts[0]
			value.Reset()
			value.WriteString(strings.TrimSpace(parts[1]))
		}
	}
	flush()
	return m
}

func (m *Metadata) set(key, value string) {
	switch ControlField(key) {
	case FieldPackage:
		m.Package = value
	case FieldVersion:
		m.Version = value
	case FieldArchitecture:
		m.Architecture = value
	case FieldMaintainer:
		m.Maintainer = value
	case FieldDescription:
		m.Description = value
	case FieldSection:
		m.Section = value
	case FieldPriority:
		m.Priority = value
	case FieldHomepage:
		m.Homepage = value
	case FieldEssential:
		m.Essential = (value == "yes")
	case FieldDepends:
		m.Depends = splitList(value)
	case FieldPreDepends:
		m.PreDepends = splitList(value)
	case FieldRecommends:
		m.Recommends = splitList(value)
	case FieldSuggests:
		m.Suggests = splitList(value)
	case FieldConflicts:
		m.Conflicts = splitList(value)
	case FieldBreaks:
		m.Breaks = splitList(value)
	case FieldReplaces:
		m.Replaces = splitList(value)
	case FieldProvides:
		m.Provides = splitList(value)
	case FieldSource:
		m.Source = value
	case FieldInstalledSize:
		// Computed at build time, meaningless after extraction.
	default:
		m.ExtraFields[key] = value
	}
}

// splitList splits a comma-separated relationship value, trimming
// whitespace from each element. Empty input yields nil.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var res []string
	for _, p := range strings.Split(s, ",") {
		res = append(res, strings.TrimSpace(p))
	}
	return res
}
