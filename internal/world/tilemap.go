package world

import "fmt"

// Terrain is a single map symbol as it appears in a map file.
type Terrain byte

const (
	TerrainPlains   Terrain = '_' // open ground, cheapest to cross
	TerrainForest   Terrain = 'f' // slows travel
	TerrainMountain Terrain = 'M' // slow, but passable
	TerrainWater    Terrain = '~' // impassable
	TerrainWall     Terrain = 'x' // border ring marker, impassable
)

// Impassable is the cost reported for terrain no route may enter.
const Impassable = -1

var terrainCosts = map[Terrain]int{
	TerrainPlains:   1,
	TerrainForest:   4,
	TerrainMountain: 10,
}

// Cost returns the cost of entering a cell of this terrain, or Impassable.
func (t Terrain) Cost() int {
	if c, ok := terrainCosts[t]; ok {
		return c
	}
	return Impassable
}

// IsPassable returns true if a route may enter this terrain.
func (t Terrain) IsPassable() bool {
	return t.Cost() != Impassable
}

// Describe returns a human-readable name for the terrain.
func (t Terrain) Describe() string {
	if d, ok := terrainDescriptions[t]; ok {
		return d
	}
	return fmt.Sprintf("Unknown terrain %q", rune(t))
}

var terrainDescriptions = map[Terrain]string{
	TerrainPlains:   "Plains",
	TerrainForest:   "Forest",
	TerrainMountain: "Mountain",
	TerrainWater:    "Water",
	TerrainWall:     "Wall",
}

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// TerrainGrid is an immutable 2D grid of terrain symbols.
type TerrainGrid struct {
	Name   string
	Width  int
	Height int
	cells  []Terrain
}

// NewTerrainGrid creates a grid filled with plains.
func NewTerrainGrid(w, h int) *TerrainGrid {
	cells := make([]Terrain, w*h)
	for i := range cells {
		cells[i] = TerrainPlains
	}
	return &TerrainGrid{Width: w, Height: h, cells: cells}
}

// InBounds returns true if c lies inside the grid.
func (g *TerrainGrid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// At returns the terrain at c. Out-of-bounds returns water.
func (g *TerrainGrid) At(c Coord) Terrain {
	if !g.InBounds(c) {
		return TerrainWater
	}
	return g.cells[c.Row*g.Width+c.Col]
}

// set is only used while a grid is being built by a loader.
func (g *TerrainGrid) set(c Coord, t Terrain) {
	if g.InBounds(c) {
		g.cells[c.Row*g.Width+c.Col] = t
	}
}

// IsPassable returns true if a route may enter c.
func (g *TerrainGrid) IsPassable(c Coord) bool {
	return g.At(c).IsPassable()
}

// Cost returns the cost of entering c, or Impassable.
func (g *TerrainGrid) Cost(c Coord) int {
	return g.At(c).Cost()
}

// PathCost sums the entry cost of every cell after the first.
// Returns Impassable if any cell cannot be entered.
func (g *TerrainGrid) PathCost(cells []Coord) int {
	total := 0
	for i := 1; i < len(cells); i++ {
		c := g.Cost(cells[i])
		if c == Impassable {
			return Impassable
		}
		total += c
	}
	return total
}

// Count returns the number of cells holding terrain t.
func (g *TerrainGrid) Count(t Terrain) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}
