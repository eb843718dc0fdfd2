package game

import (
	"fmt"

	"github.com/pathview/pathview/internal/world"
)

// SelectionKind identifies which endpoints are currently chosen.
type SelectionKind uint8

const (
	SelEmpty    SelectionKind = iota // nothing chosen
	SelStart                         // start only
	SelEnd                           // end only (start was cleared while both were set)
	SelComplete                      // start and end
)

// Selection is the user's current endpoint choice.
// Start is meaningful for SelStart and SelComplete, End for SelEnd and SelComplete.
type Selection struct {
	Kind  SelectionKind
	Start world.Coord
	End   world.Coord
}

// Empty returns a selection with no endpoints.
func Empty() Selection { return Selection{} }

// HasStart returns a selection with only a start endpoint.
func HasStart(s world.Coord) Selection { return Selection{Kind: SelStart, Start: s} }

// HasEnd returns a selection with only an end endpoint.
func HasEnd(e world.Coord) Selection { return Selection{Kind: SelEnd, End: e} }

// Complete returns a selection with both endpoints. start may equal end.
func Complete(s, e world.Coord) Selection { return Selection{Kind: SelComplete, Start: s, End: e} }

func (s Selection) hasStart() bool { return s.Kind == SelStart || s.Kind == SelComplete }
func (s Selection) hasEnd() bool   { return s.Kind == SelEnd || s.Kind == SelComplete }

func (s Selection) String() string {
	switch s.Kind {
	case SelStart:
		return fmt.Sprintf("start %s", s.Start)
	case SelEnd:
		return fmt.Sprintf("end %s", s.End)
	case SelComplete:
		return fmt.Sprintf("%s -> %s", s.Start, s.End)
	default:
		return "nothing selected"
	}
}

// Path is a route from start to end inclusive. nil means no path.
type Path []world.Coord

// State is everything the controller owns. The overlay on screen is always
// Frame(State).
type State struct {
	Selection Selection
	Path      Path
}

// InstrKind identifies a render instruction variant.
type InstrKind uint8

const (
	InstrResetAll InstrKind = iota
	InstrHighlightStart
	InstrHighlightEnd
	InstrShowPath
)

// RenderInstruction tells a Surface what to show.
type RenderInstruction struct {
	Kind  InstrKind
	Cell  world.Coord // HighlightStart / HighlightEnd
	Start world.Coord // ShowPath
	End   world.Coord // ShowPath
	Path  Path        // ShowPath
}

func ResetAll() RenderInstruction { return RenderInstruction{Kind: InstrResetAll} }

func HighlightStart(c world.Coord) RenderInstruction {
	return RenderInstruction{Kind: InstrHighlightStart, Cell: c}
}

func HighlightEnd(c world.Coord) RenderInstruction {
	return RenderInstruction{Kind: InstrHighlightEnd, Cell: c}
}

func ShowPath(p Path, start, end world.Coord) RenderInstruction {
	return RenderInstruction{Kind: InstrShowPath, Path: p, Start: start, End: end}
}

// Surface applies render instructions. It holds no selection logic.
type Surface interface {
	ResetAll()
	HighlightStart(c world.Coord)
	HighlightEnd(c world.Coord)
	ShowPath(p Path, start, end world.Coord)
}

// ApplyTo forwards the instruction to s.
func (ri RenderInstruction) ApplyTo(s Surface) {
	switch ri.Kind {
	case InstrResetAll:
		s.ResetAll()
	case InstrHighlightStart:
		s.HighlightStart(ri.Cell)
	case InstrHighlightEnd:
		s.HighlightEnd(ri.Cell)
	case InstrShowPath:
		s.ShowPath(ri.Path, ri.Start, ri.End)
	}
}

// Apply forwards every instruction to s in order.
func Apply(s Surface, instrs []RenderInstruction) {
	for _, ri := range instrs {
		ri.ApplyTo(s)
	}
}

// Frame describes the complete visual state for st from a blank surface.
func Frame(st State) []RenderInstruction {
	sel := st.Selection
	out := []RenderInstruction{ResetAll()}
	if sel.Kind == SelComplete && st.Path != nil {
		return append(out, ShowPath(st.Path, sel.Start, sel.End))
	}
	if sel.hasStart() {
		out = append(out, HighlightStart(sel.Start))
	}
	if sel.hasEnd() {
		out = append(out, HighlightEnd(sel.End))
	}
	return out
}
