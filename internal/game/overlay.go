package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/pathview/pathview/internal/world"
)

// MarkKind is a bit set of overlay marks on a single cell.
type MarkKind uint8

const (
	MarkPath  MarkKind = 1 << iota // route step between the endpoints
	MarkStart                      // start endpoint
	MarkEnd                        // end endpoint
)

// Marker is the overlay component: one mark on one cell.
type Marker struct {
	Cell world.Coord
	Kind MarkKind
}

// Overlay is the render surface drawn over the terrain. Every mark is an
// entity in its own ECS world so the renderer can query them directly.
type Overlay struct {
	ECS *ecs.World
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{ECS: ecs.NewWorld(256)}
}

func (o *Overlay) mark(c world.Coord, kind MarkKind) {
	ecs.NewMap[Marker](o.ECS).NewEntity(&Marker{Cell: c, Kind: kind})
}

// ResetAll removes every mark.
func (o *Overlay) ResetAll() {
	var doomed []ecs.Entity
	query := ecs.NewFilter1[Marker](o.ECS).Query()
	for query.Next() {
		doomed = append(doomed, query.Entity())
	}
	for _, e := range doomed {
		o.ECS.RemoveEntity(e)
	}
}

func (o *Overlay) HighlightStart(c world.Coord) { o.mark(c, MarkStart) }

func (o *Overlay) HighlightEnd(c world.Coord) { o.mark(c, MarkEnd) }

// ShowPath marks every intermediate cell of p plus both endpoints.
func (o *Overlay) ShowPath(p Path, start, end world.Coord) {
	for _, c := range p {
		if c != start && c != end {
			o.mark(c, MarkPath)
		}
	}
	o.mark(start, MarkStart)
	o.mark(end, MarkEnd)
}

// Each calls fn for every mark. Marks on the same cell are visited separately.
func (o *Overlay) Each(fn func(m Marker)) {
	query := ecs.NewFilter1[Marker](o.ECS).Query()
	for query.Next() {
		fn(*query.Get())
	}
}

// Snapshot returns the combined marks per cell.
func (o *Overlay) Snapshot() map[world.Coord]MarkKind {
	out := make(map[world.Coord]MarkKind)
	o.Each(func(m Marker) {
		out[m.Cell] |= m.Kind
	})
	return out
}

// At returns the combined marks on c.
func (o *Overlay) At(c world.Coord) MarkKind {
	var k MarkKind
	o.Each(func(m Marker) {
		if m.Cell == c {
			k |= m.Kind
		}
	})
	return k
}
