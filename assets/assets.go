// Package assets embeds the sample terrain maps shipped with the viewer.
package assets

import "embed"

// DefaultMap is loaded when no map file is given on the command line.
const DefaultMap = "maps/default.txt"

//go:embed maps
var Maps embed.FS
