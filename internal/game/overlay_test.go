package game

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/pathview/pathview/internal/route"
	"github.com/pathview/pathview/internal/world"
)

func TestOverlayShowPath(t *testing.T) {
	o := NewOverlay()
	p := Path{at(0, 0), at(0, 1), at(1, 1)}
	o.ShowPath(p, at(0, 0), at(1, 1))

	want := map[world.Coord]MarkKind{
		at(0, 0): MarkStart,
		at(0, 1): MarkPath,
		at(1, 1): MarkEnd,
	}
	if got := o.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	o.ResetAll()
	if got := o.Snapshot(); len(got) != 0 {
		t.Errorf("Expected empty overlay after reset, got %v", got)
	}
	if o.At(at(0, 1)) != 0 {
		t.Error("Expected no mark on former path cell")
	}
}

// Replaying emitted instructions must always match the canonical frame of
// the controller's current state.
func TestOverlayMatchesFrame(t *testing.T) {
	grid := world.NewTerrainGrid(4, 4)
	c := NewController(&splitOracle{inner: route.NewOracle(grid, false)})
	live := NewOverlay()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		instrs, _ := c.HandlePick(at(rng.Intn(4), rng.Intn(4)))
		Apply(live, instrs)

		fresh := NewOverlay()
		Apply(fresh, Frame(c.State()))
		if !reflect.DeepEqual(live.Snapshot(), fresh.Snapshot()) {
			t.Fatalf("Pick %d: overlay %v drifted from frame %v (state %v)",
				i, live.Snapshot(), fresh.Snapshot(), c.State().Selection)
		}
	}
}

// splitOracle refuses routes that cross between the left and right halves.
type splitOracle struct {
	inner PathOracle
}

func (s *splitOracle) Query(start, end world.Coord) ([]world.Coord, error) {
	if (start.Col < 2) != (end.Col < 2) {
		return nil, &route.NoRouteError{Start: start, End: end}
	}
	return s.inner.Query(start, end)
}

func TestFrame(t *testing.T) {
	p := Path{at(0, 0), at(0, 1)}
	tests := []struct {
		name  string
		state State
		want  []RenderInstruction
	}{
		{"Empty", State{}, []RenderInstruction{ResetAll()}},
		{"Start", State{Selection: HasStart(at(0, 0))}, []RenderInstruction{ResetAll(), HighlightStart(at(0, 0))}},
		{"End", State{Selection: HasEnd(at(0, 1))}, []RenderInstruction{ResetAll(), HighlightEnd(at(0, 1))}},
		{"No path", State{Selection: Complete(at(0, 0), at(0, 1))},
			[]RenderInstruction{ResetAll(), HighlightStart(at(0, 0)), HighlightEnd(at(0, 1))}},
		{"Path", State{Selection: Complete(at(0, 0), at(0, 1)), Path: p},
			[]RenderInstruction{ResetAll(), ShowPath(p, at(0, 0), at(0, 1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Frame(tt.state); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
