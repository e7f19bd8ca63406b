package theme

import "embed"

// EmbeddedThemes ships the default theme variants with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS
