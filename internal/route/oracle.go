package route

import "github.com/pathview/pathview/internal/world"

// Oracle answers path queries against one loaded grid.
type Oracle struct {
	Grid   *world.TerrainGrid
	Finder Finder
}

// NewOracle binds a finder to grid.
func NewOracle(grid *world.TerrainGrid, verbose bool) *Oracle {
	return &Oracle{Grid: grid, Finder: Finder{Verbose: verbose}}
}

// Query returns the cells of the cheapest route from start to end.
func (o *Oracle) Query(start, end world.Coord) ([]world.Coord, error) {
	r, err := o.Finder.FindPath(o.Grid, start, end)
	if err != nil {
		return nil, err
	}
	return r.Cells, nil
}
