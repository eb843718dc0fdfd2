// Package route finds least-cost routes across a terrain grid.
package route

import (
	"container/heap"
	"fmt"
	"log"
	"time"

	"github.com/pathview/pathview/internal/world"
)

// InvalidEndpointError reports an endpoint no route can start or end on.
type InvalidEndpointError struct {
	Coord  world.Coord
	Reason string
}

func (e *InvalidEndpointError) Error() string {
	return fmt.Sprintf("invalid endpoint %s: %s", e.Coord, e.Reason)
}

// NoRouteError reports two endpoints in disconnected regions.
type NoRouteError struct {
	Start, End world.Coord
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no route from %s to %s", e.Start, e.End)
}

// Route is an ordered list of cells from start to end inclusive.
type Route struct {
	Cells []world.Coord
	Cost  int
}

// Finder runs Dijkstra over the 4-connected passable cells of a grid.
// Entering a cell costs that cell's terrain cost.
type Finder struct {
	// Verbose logs the traversal cost and elapsed time of every search.
	Verbose bool
}

var neighborOffsets = [4]world.Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// FindPath returns the cheapest route from start to end.
func (f *Finder) FindPath(grid *world.TerrainGrid, start, end world.Coord) (Route, error) {
	if err := checkEndpoint(grid, start); err != nil {
		return Route{}, err
	}
	if err := checkEndpoint(grid, end); err != nil {
		return Route{}, err
	}
	if start == end {
		return Route{}, &InvalidEndpointError{Coord: end, Reason: "start and end are the same cell"}
	}

	began := time.Now()
	n := grid.Width * grid.Height
	dist := make([]int, n)
	parent := make([]int, n)
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}

	index := func(c world.Coord) int { return c.Row*grid.Width + c.Col }
	goal := index(end)

	pq := &frontier{}
	dist[index(start)] = 0
	heap.Push(pq, node{coord: start, cost: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(node)
		ci := index(cur.coord)
		if cur.cost > dist[ci] {
			continue
		}
		if ci == goal {
			break
		}
		for _, off := range neighborOffsets {
			next := world.Coord{Row: cur.coord.Row + off.Row, Col: cur.coord.Col + off.Col}
			step := grid.Cost(next)
			if step == world.Impassable {
				continue
			}
			ni := index(next)
			total := cur.cost + step
			if dist[ni] == -1 || total < dist[ni] {
				dist[ni] = total
				parent[ni] = ci
				heap.Push(pq, node{coord: next, cost: total})
			}
		}
	}

	if dist[goal] == -1 {
		return Route{}, &NoRouteError{Start: start, End: end}
	}

	var cells []world.Coord
	for i := goal; i != -1; i = parent[i] {
		cells = append(cells, world.Coord{Row: i / grid.Width, Col: i % grid.Width})
	}
	for l, r := 0, len(cells)-1; l < r; l, r = l+1, r-1 {
		cells[l], cells[r] = cells[r], cells[l]
	}

	if f.Verbose {
		log.Printf("route %s -> %s: %d cells, cost %d, %s",
			start, end, len(cells), dist[goal], time.Since(began))
	}
	return Route{Cells: cells, Cost: dist[goal]}, nil
}

func checkEndpoint(grid *world.TerrainGrid, c world.Coord) error {
	if !grid.InBounds(c) {
		return &InvalidEndpointError{Coord: c, Reason: "out of bounds"}
	}
	if !grid.IsPassable(c) {
		return &InvalidEndpointError{Coord: c, Reason: grid.At(c).Describe() + " is impassable"}
	}
	return nil
}

type node struct {
	coord world.Coord
	cost  int
}

// frontier is a min-heap of nodes ordered by cost.
type frontier []node

func (q frontier) Len() int           { return len(q) }
func (q frontier) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q frontier) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)        { *q = append(*q, x.(node)) }
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
