// Package flow implements the step state machine shared by the registration
// wizard and the income estimate flow: forward moves are gated, backward moves
// are free, and forward jumps are never allowed.
package flow

import "fmt"

// Gate validates the current step before a forward move. A nil return lets
// Next proceed; any error blocks the move and is surfaced to the caller.
type Gate func() error

// Sequencer tracks progress through an ordered list of N steps. The zero
// value is not usable; construct with New.
type Sequencer struct {
	Index int `json:"index"`
	N     int `json:"n"`
}

// ErrForwardJump is returned by JumpTo for targets at or past the current
// step. Later steps are only reachable through Next, one gate at a time.
var ErrForwardJump = fmt.Errorf("cannot jump forward; advance step by step")

// New returns a sequencer positioned on the first of n steps.
func New(n int) Sequencer {
	return Sequencer{Index: 0, N: n}
}

// Next runs the gate for the current step and, if it passes, advances by one.
// On the final step the index stays put and submit is true: the caller must
// fire its terminal action instead of advancing.
func (s Sequencer) Next(gate Gate) (next Sequencer, submit bool, err error) {
	if gate != nil {
		if err := gate(); err != nil {
			return s, false, err
		}
	}
	if s.Index >= s.N-1 {
		return s, true, nil
	}
	s.Index++
	return s, false, nil
}

// Previous moves back one step. No gate applies going backward; the move is a
// no-op on the first step.
func (s Sequencer) Previous() Sequencer {
	if s.Index > 0 {
		s.Index--
	}
	return s
}

// JumpTo revisits an earlier step. Targets at or beyond the current index are
// rejected and leave the sequencer unchanged.
func (s Sequencer) JumpTo(target int) (Sequencer, error) {
	if target < 0 || target >= s.Index {
		return s, ErrForwardJump
	}
	s.Index = target
	return s, nil
}

// AtEnd reports whether the sequencer sits on the last step.
func (s Sequencer) AtEnd() bool {
	return s.Index == s.N-1
}
