package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionsAssignment(t *testing.T) {
	s := Selections{}
	s.Select(1, "1")
	s.Select(3, "3")

	got, err := s.Assignment(3)
	require.NoError(t, err)
	assert.Equal(t, AssignmentRequest{JobID: 3, WorkerID: 3}, got)

	got, err = s.Assignment(1)
	require.NoError(t, err)
	assert.Equal(t, AssignmentRequest{JobID: 1, WorkerID: 1}, got)
}

func TestAssignmentWithoutSelectionFails(t *testing.T) {
	s := Selections{}
	_, err := s.Assignment(7)
	assert.ErrorIs(t, err, ErrNoWorkerSelected)
}

func TestSelectNoneBlocksAssignment(t *testing.T) {
	s := Selections{}
	s.Select(1, "2")
	s.Select(1, WorkerNone)
	_, err := s.Assignment(1)
	assert.ErrorIs(t, err, ErrNoWorkerSelected)
}

func TestSelectGarbageStoresZero(t *testing.T) {
	s := Selections{}
	for _, v := range []string{"abc", "-5", ""} {
		s.Select(2, v)
		_, err := s.Assignment(2)
		assert.ErrorIs(t, err, ErrNoWorkerSelected, "value %q", v)
	}
}

func TestClearDropsEverySelection(t *testing.T) {
	s := Selections{}
	s.Select(1, "1")
	s.Select(2, "2")
	s.Select(3, "3")
	s.Clear()

	assert.Empty(t, s)
	_, err := s.Assignment(2)
	assert.ErrorIs(t, err, ErrNoWorkerSelected)
}
