package game

import (
	"errors"
	"fmt"

	"github.com/pathview/pathview/internal/world"
)

// PathOracle computes a route between two cells of the loaded map.
type PathOracle interface {
	Query(start, end world.Coord) ([]world.Coord, error)
}

// OutcomeKind says what a pick did.
type OutcomeKind uint8

const (
	OutcomeIgnored  OutcomeKind = iota // third distinct pick while both endpoints are set
	OutcomeSelected                    // an endpoint was chosen, no query yet
	OutcomeCleared                     // an endpoint was picked again and removed
	OutcomeRouted                      // query succeeded, path shown
	OutcomeNoRoute                     // query failed, endpoints shown without a path
)

// Outcome describes the effect of a single pick. Err is set for OutcomeNoRoute.
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

// HandlePick applies one pick to st. It returns the new state and the
// instructions that bring a surface showing Frame(st) to Frame(new state).
// The oracle is called only when the pick completes a selection.
func HandlePick(st State, c world.Coord, oracle PathOracle) (State, []RenderInstruction, Outcome) {
	sel := st.Selection
	switch sel.Kind {
	case SelEmpty:
		next := State{Selection: HasStart(c)}
		return next, []RenderInstruction{HighlightStart(c)}, Outcome{Kind: OutcomeSelected}

	case SelStart:
		if c == sel.Start {
			return State{}, []RenderInstruction{ResetAll()}, Outcome{Kind: OutcomeCleared}
		}
		return query(Complete(sel.Start, c), oracle)

	case SelEnd:
		if c == sel.End {
			return State{}, []RenderInstruction{ResetAll()}, Outcome{Kind: OutcomeCleared}
		}
		return query(Complete(c, sel.End), oracle)

	case SelComplete:
		switch c {
		case sel.Start:
			return State{Selection: HasEnd(sel.End)},
				[]RenderInstruction{ResetAll(), HighlightEnd(sel.End)},
				Outcome{Kind: OutcomeCleared}
		case sel.End:
			return State{Selection: HasStart(sel.Start)},
				[]RenderInstruction{ResetAll(), HighlightStart(sel.Start)},
				Outcome{Kind: OutcomeCleared}
		}
	}
	return st, nil, Outcome{Kind: OutcomeIgnored}
}

// query runs the single path query for a freshly completed selection.
// Any oracle failure leaves the path absent and both endpoints highlighted.
func query(sel Selection, oracle PathOracle) (State, []RenderInstruction, Outcome) {
	cells, err := oracle.Query(sel.Start, sel.End)
	if err == nil {
		err = checkRoute(cells, sel.Start, sel.End)
	}
	if err != nil {
		return State{Selection: sel},
			[]RenderInstruction{ResetAll(), HighlightStart(sel.Start), HighlightEnd(sel.End)},
			Outcome{Kind: OutcomeNoRoute, Err: err}
	}
	p := Path(cells)
	return State{Selection: sel, Path: p},
		[]RenderInstruction{ResetAll(), ShowPath(p, sel.Start, sel.End)},
		Outcome{Kind: OutcomeRouted}
}

var errMalformedRoute = errors.New("oracle returned a malformed route")

func checkRoute(cells []world.Coord, start, end world.Coord) error {
	if len(cells) == 0 {
		return fmt.Errorf("%w: empty", errMalformedRoute)
	}
	if cells[0] != start || cells[len(cells)-1] != end {
		return fmt.Errorf("%w: runs %s..%s, want %s..%s",
			errMalformedRoute, cells[0], cells[len(cells)-1], start, end)
	}
	return nil
}

// Controller owns the selection state for one session.
type Controller struct {
	oracle PathOracle
	state  State
	last   []RenderInstruction
}

// NewController starts a session with nothing selected.
func NewController(oracle PathOracle) *Controller {
	return &Controller{oracle: oracle}
}

// HandlePick processes one pick event and returns the instructions to apply.
// An ignored pick returns nil and leaves Last unchanged.
func (c *Controller) HandlePick(coord world.Coord) ([]RenderInstruction, Outcome) {
	next, instrs, out := HandlePick(c.state, coord, c.oracle)
	if out.Kind == OutcomeIgnored {
		return nil, out
	}
	c.state = next
	c.last = instrs
	return instrs, out
}

// Reset clears both endpoints and any path.
func (c *Controller) Reset() []RenderInstruction {
	c.state = State{}
	c.last = []RenderInstruction{ResetAll()}
	return c.last
}

// State returns the current selection and path.
func (c *Controller) State() State { return c.state }

// Last returns the most recently emitted instructions.
func (c *Controller) Last() []RenderInstruction { return c.last }
