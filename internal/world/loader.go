package world

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MapLoadError reports a map that could not be turned into a usable grid.
type MapLoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *MapLoadError) Error() string {
	msg := fmt.Sprintf("load map %s: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MapLoadError) Unwrap() error { return e.Err }

// MapLayout is the JSON-serializable definition of a terrain map.
type MapLayout struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// LoadMapFile reads a map from disk. Files ending in .json are parsed as a
// MapLayout, everything else as a plain text map.
func LoadMapFile(path string) (*TerrainGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MapLoadError{Source: path, Reason: "read failed", Err: err}
	}
	return LoadMapBytes(path, data)
}

// LoadMapBytes parses map data that was already read from source.
func LoadMapBytes(source string, data []byte) (*TerrainGrid, error) {
	var (
		grid *TerrainGrid
		err  error
	)
	if strings.EqualFold(filepath.Ext(source), ".json") {
		grid, err = LoadMapLayout(data)
	} else {
		grid, err = ParseMap(bytes.NewReader(data))
	}
	if err != nil {
		var mle *MapLoadError
		if errors.As(err, &mle) {
			mle.Source = source
		}
		return nil, err
	}
	if grid.Name == "" {
		grid.Name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	return grid, nil
}

// ParseMap reads a text map with one row of terrain symbols per line.
// A map whose first symbol is the wall marker has its outer ring removed.
func ParseMap(r io.Reader) (*TerrainGrid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, &MapLoadError{Source: "text", Reason: "read failed", Err: err}
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, &MapLoadError{Source: "text", Reason: "map is empty"}
	}
	return gridFromRows(rows)
}

// LoadMapLayout parses a MapLayout from JSON bytes.
func LoadMapLayout(data []byte) (*TerrainGrid, error) {
	var layout MapLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, &MapLoadError{Source: "json", Reason: "parse map layout", Err: err}
	}
	if len(layout.Rows) != layout.Height {
		return nil, &MapLoadError{
			Source: "json",
			Reason: fmt.Sprintf("rows (%d) != declared height (%d)", len(layout.Rows), layout.Height),
		}
	}
	for i, row := range layout.Rows {
		if len(row) != layout.Width {
			return nil, &MapLoadError{
				Source: "json",
				Reason: fmt.Sprintf("row %d has %d cells, declared width is %d", i, len(row), layout.Width),
			}
		}
	}
	grid, err := gridFromRows(layout.Rows)
	if err != nil {
		return nil, err
	}
	grid.Name = layout.Name
	return grid, nil
}

func gridFromRows(rows []string) (*TerrainGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &MapLoadError{Source: "text", Reason: "map is empty"}
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &MapLoadError{
				Source: "text",
				Reason: fmt.Sprintf("row %d has %d cells, expected %d", i, len(row), width),
			}
		}
	}

	if Terrain(rows[0][0]) == TerrainWall {
		if len(rows) < 3 || width < 3 {
			return nil, &MapLoadError{Source: "text", Reason: "walled map has no interior"}
		}
		inner := make([]string, 0, len(rows)-2)
		for _, row := range rows[1 : len(rows)-1] {
			inner = append(inner, row[1:width-1])
		}
		rows = inner
		width -= 2
	}

	grid := NewTerrainGrid(width, len(rows))
	for r, row := range rows {
		for c := 0; c < width; c++ {
			grid.set(Coord{Row: r, Col: c}, Terrain(row[c]))
		}
	}
	return grid, nil
}
