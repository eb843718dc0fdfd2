package main

import "flag"

// Command-line flags controlling which map is shown and how large it is drawn.
var (
	// mapFlag names a map file on disk, or an embedded map as "embed:<name>".
	mapFlag = flag.String("map", "", "terrain map to load (.txt or .json); embedded maps as embed:<name>")

	// cellFlag is the on-screen size of one map cell in pixels.
	cellFlag = flag.Int("cell", 15, "cell size in pixels")

	listMapsFlag = flag.Bool("list-maps", false, "list embedded maps and exit")

	// verboseFlag logs cost and timing for every route search.
	verboseFlag = flag.Bool("verbose", false, "log route cost and search time")
)
