package game

import (
	"fmt"
	"log"

	"github.com/pathview/pathview/internal/world"
)

// Session ties a loaded map to its selection controller and overlay.
// All interaction state lives here; the window only forwards input.
type Session struct {
	Grid       *world.TerrainGrid
	Controller *Controller
	Overlay    *Overlay
	Log        *MessageLog
}

// NewSession starts a session on grid. A missing or zero-sized grid cannot
// host a session.
func NewSession(grid *world.TerrainGrid, oracle PathOracle, logWidth int) (*Session, error) {
	if grid == nil || grid.Width <= 0 || grid.Height <= 0 {
		return nil, &world.MapLoadError{Source: "session", Reason: "map has no cells"}
	}

	name := grid.Name
	if name == "" {
		name = "map"
	}
	msgs := NewMessageLog(50, logWidth)
	msgs.Add(fmt.Sprintf("Loaded %s: %dx%d.", name, grid.Width, grid.Height), MsgInfo)
	msgs.Add("Click a cell to choose a start, then an end.", MsgInfo)

	return &Session{
		Grid:       grid,
		Controller: NewController(oracle),
		Overlay:    NewOverlay(),
		Log:        msgs,
	}, nil
}

// Pickable returns true if c may be delivered as a pick.
func (s *Session) Pickable(c world.Coord) bool {
	return s.Grid.InBounds(c) && s.Grid.IsPassable(c)
}

// Pick forwards a click on c to the controller and applies the result to the
// overlay. Clicks on cells that are not pickable are dropped and return false.
func (s *Session) Pick(c world.Coord) bool {
	if !s.Pickable(c) {
		return false
	}
	instrs, out := s.Controller.HandlePick(c)
	Apply(s.Overlay, instrs)
	s.report(c, out)
	return true
}

// Reset clears the selection.
func (s *Session) Reset() {
	Apply(s.Overlay, s.Controller.Reset())
	s.Log.Add("Selection cleared.", MsgInfo)
}

func (s *Session) report(c world.Coord, out Outcome) {
	sel := s.Controller.State().Selection
	switch out.Kind {
	case OutcomeSelected:
		s.Log.Add(fmt.Sprintf("Selected %s.", sel), MsgInfo)
	case OutcomeCleared:
		s.Log.Add(fmt.Sprintf("Cleared %s, now %s.", c, sel), MsgInfo)
	case OutcomeRouted:
		p := s.Controller.State().Path
		s.Log.Add(fmt.Sprintf("Route %s: %d steps, cost %d.",
			sel, len(p)-1, s.Grid.PathCost(p)), MsgRoute)
	case OutcomeNoRoute:
		log.Printf("no path for %s: %v", sel, out.Err)
		s.Log.Add(fmt.Sprintf("No route for %s.", sel), MsgWarning)
	}
}

// Status summarizes the current selection for the HUD.
func (s *Session) Status() string {
	st := s.Controller.State()
	if st.Selection.Kind == SelComplete && st.Path != nil {
		return fmt.Sprintf("%s  cost %d", st.Selection, s.Grid.PathCost(st.Path))
	}
	return st.Selection.String()
}

// Describe returns a hover description for c.
func (s *Session) Describe(c world.Coord) string {
	if !s.Grid.InBounds(c) {
		return ""
	}
	t := s.Grid.At(c)
	if !t.IsPassable() {
		return fmt.Sprintf("%s %s - impassable", t.Describe(), c)
	}
	return fmt.Sprintf("%s %s - cost %d", t.Describe(), c, t.Cost())
}
