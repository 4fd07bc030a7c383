// Package deb safely extracts Debian binary packages.
//
// # Design Philosophy
//
// A .deb file is an ar container holding a plain metadata blob
// (debian-binary) and nested tar archives for control metadata and the
// payload, each of which may be gzip- or xz-compressed or left
// uncompressed. The package buffers the container in memory and works
// on io.Reader streams, with no temporary files and no dependency on
// external tools like 'dpkg' or 'ar'.
//
// Safety is the organizing concern: every path named inside any
// archive member, at any nesting depth, passes through a single
// validator before anything touches the filesystem, and recursive
// descent into nested archives is bounded by a caller-configurable
// depth limit.
//
// # Features
//
//   - Extract a .deb to a directory tree: debian-binary, control/,
//     data/, and any extra container members.
//   - Compression detection by filename hint with a gzip, raw, xz
//     fallback chain for members with missing or lying names.
//   - Per-member failure isolation: a malformed nested archive is
//     reported as a warning and never aborts its siblings; a path
//     escape always aborts.
//   - Control metadata parsing into a Metadata struct.
//   - Optional verification of dpkg-sig style _gpgorigin signatures.
package deb
