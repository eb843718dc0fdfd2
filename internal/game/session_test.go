package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/pathview/pathview/internal/route"
	"github.com/pathview/pathview/internal/world"
)

func newTestSession(t *testing.T, rows ...string) *Session {
	t.Helper()
	grid, err := world.ParseMap(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	s, err := NewSession(grid, route.NewOracle(grid, false), 0)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionRejectsEmptyGrid(t *testing.T) {
	tests := []struct {
		name string
		grid *world.TerrainGrid
	}{
		{"Nil", nil},
		{"Zero width", world.NewTerrainGrid(0, 3)},
		{"Zero height", world.NewTerrainGrid(3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.grid, &fakeOracle{}, 0)
			var mle *world.MapLoadError
			if !errors.As(err, &mle) {
				t.Errorf("Expected *MapLoadError, got %v", err)
			}
		})
	}
}

func TestSessionPickRoutes(t *testing.T) {
	s := newTestSession(t,
		"_f_",
		"___",
	)

	if !s.Pick(at(0, 0)) || !s.Pick(at(0, 2)) {
		t.Fatal("Expected both picks to be accepted")
	}
	if s.Overlay.At(at(0, 0)) != MarkStart || s.Overlay.At(at(0, 2)) != MarkEnd {
		t.Errorf("Expected endpoint marks, got %v", s.Overlay.Snapshot())
	}
	// Around the forest (4) is cheaper than through it (5).
	if got := s.Grid.PathCost(s.Controller.State().Path); got != 4 {
		t.Errorf("Expected route cost 4, got %d", got)
	}
	last := s.Log.Recent(1)[0]
	if last.Priority != MsgRoute || !strings.Contains(last.Text, "cost 4") {
		t.Errorf("Expected route message, got %+v", last)
	}
	if !strings.Contains(s.Status(), "cost 4") {
		t.Errorf("Expected status with cost, got %q", s.Status())
	}
}

func TestSessionDropsUnpickableCells(t *testing.T) {
	s := newTestSession(t, "_~_")

	if s.Pick(at(0, 1)) {
		t.Error("Expected water pick to be dropped")
	}
	if s.Pick(at(3, 3)) {
		t.Error("Expected out-of-bounds pick to be dropped")
	}
	if s.Controller.State().Selection.Kind != SelEmpty {
		t.Errorf("Expected empty selection, got %v", s.Controller.State().Selection)
	}
}

func TestSessionNoRoute(t *testing.T) {
	s := newTestSession(t, "_~_")

	s.Pick(at(0, 0))
	s.Pick(at(0, 2))

	want := map[world.Coord]MarkKind{at(0, 0): MarkStart, at(0, 2): MarkEnd}
	got := s.Overlay.Snapshot()
	if len(got) != len(want) || got[at(0, 0)] != MarkStart || got[at(0, 2)] != MarkEnd {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if last := s.Log.Recent(1)[0]; last.Priority != MsgWarning {
		t.Errorf("Expected warning message, got %+v", last)
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t, "___")
	s.Pick(at(0, 0))
	s.Pick(at(0, 2))

	s.Reset()
	if len(s.Overlay.Snapshot()) != 0 {
		t.Errorf("Expected blank overlay, got %v", s.Overlay.Snapshot())
	}
	if s.Status() != "nothing selected" {
		t.Errorf("Expected empty status, got %q", s.Status())
	}
}

func TestSessionDescribe(t *testing.T) {
	s := newTestSession(t, "_M~")

	tests := []struct {
		cell world.Coord
		want string
	}{
		{at(0, 1), "Mountain (0,1) - cost 10"},
		{at(0, 2), "Water (0,2) - impassable"},
		{at(5, 5), ""},
	}
	for _, tt := range tests {
		if got := s.Describe(tt.cell); got != tt.want {
			t.Errorf("Describe(%s): expected %q, got %q", tt.cell, tt.want, got)
		}
	}
}
