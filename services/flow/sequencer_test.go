package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pass() error { return nil }

func TestNextAdvancesWhenGatePasses(t *testing.T) {
	s := New(4)
	s, submit, err := s.Next(pass)
	require.NoError(t, err)
	assert.False(t, submit)
	assert.Equal(t, 1, s.Index)
}

func TestNextBlockedByGate(t *testing.T) {
	gateErr := errors.New("full name is required")
	s := New(4)
	s, submit, err := s.Next(func() error { return gateErr })
	assert.ErrorIs(t, err, gateErr)
	assert.False(t, submit)
	assert.Equal(t, 0, s.Index, "blocked move leaves the index unchanged")
}

func TestNextOnFinalStepSignalsSubmit(t *testing.T) {
	s := Sequencer{Index: 3, N: 4}
	s, submit, err := s.Next(pass)
	require.NoError(t, err)
	assert.True(t, submit)
	assert.Equal(t, 3, s.Index, "index never passes N-1")
}

func TestPrevious(t *testing.T) {
	s := Sequencer{Index: 2, N: 4}
	s = s.Previous()
	assert.Equal(t, 1, s.Index)

	s = New(4).Previous()
	assert.Equal(t, 0, s.Index, "previous on the first step is a no-op")
}

func TestJumpTo(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		target    int
		wantIndex int
		wantErr   bool
	}{
		{name: "backward jump allowed", index: 3, target: 1, wantIndex: 1},
		{name: "jump to current rejected", index: 2, target: 2, wantIndex: 2, wantErr: true},
		{name: "forward jump rejected", index: 1, target: 3, wantIndex: 1, wantErr: true},
		{name: "negative target rejected", index: 2, target: -1, wantIndex: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sequencer{Index: tt.index, N: 4}
			s, err := s.JumpTo(tt.target)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrForwardJump)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantIndex, s.Index)
		})
	}
}

func TestAtEnd(t *testing.T) {
	assert.False(t, New(3).AtEnd())
	assert.True(t, Sequencer{Index: 2, N: 3}.AtEnd())
}
