package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/pattern"
)

func TestLayoutImmutability(t *testing.T) {
	traps := []pattern.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	l := NewLayout("test", traps)

	// Mutating the input slice must not affect the layout.
	traps[0].X = 99
	assert.Equal(t, pattern.Point{X: 0, Y: 0}, l.Traps()[0])

	// Mutating the returned slice must not affect the layout either.
	got := l.Traps()
	got[1].Y = 99
	assert.Equal(t, pattern.Point{X: 5, Y: 0}, l.Traps()[1])
}

func TestTrapsFromCoordinates(t *testing.T) {
	l := NewLayout("test", []pattern.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 5}})

	ids, err := l.TrapsFromCoordinates(pattern.Point{X: 0, Y: 5}, pattern.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, ids)
}

func TestTrapsFromCoordinatesTolerance(t *testing.T) {
	l := NewLayout("test", []pattern.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})

	// Drift well inside the tolerance resolves.
	ids, err := l.TrapsFromCoordinates(pattern.Point{X: 5 + 1e-9, Y: -1e-9})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)

	// A point between traps does not.
	_, err = l.TrapsFromCoordinates(pattern.Point{X: 2.5, Y: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeTrapResolution))
}

func TestTrapsFromCoordinatesAllOrNothing(t *testing.T) {
	l := NewLayout("test", []pattern.Point{{X: 0, Y: 0}})

	ids, err := l.TrapsFromCoordinates(pattern.Point{X: 0, Y: 0}, pattern.Point{X: 1, Y: 1})
	require.Error(t, err)
	assert.Nil(t, ids)
}

func TestDefineRegister(t *testing.T) {
	l := NewLayout("test", []pattern.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})

	t.Run("valid", func(t *testing.T) {
		reg, err := l.DefineRegister([]int{1, 0}, []string{"q0", "q1"})
		require.NoError(t, err)
		require.Equal(t, 2, reg.Len())
		atoms := reg.Atoms()
		assert.Equal(t, Atom{ID: "q0", Trap: 1, Pos: pattern.Point{X: 5, Y: 0}}, atoms[0])
		assert.Equal(t, Atom{ID: "q1", Trap: 0, Pos: pattern.Point{X: 0, Y: 0}}, atoms[1])
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := l.DefineRegister([]int{0}, []string{"q0", "q1"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})

	t.Run("trap ID out of range", func(t *testing.T) {
		_, err := l.DefineRegister([]int{7}, []string{"q0"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})
}

func TestRegisterFromCoordinates(t *testing.T) {
	l := NewLayout("test", []pattern.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}})

	reg, err := l.RegisterFromCoordinates([]pattern.Point{{X: 10, Y: 0}, {X: 0, Y: 0}}, "atom")
	require.NoError(t, err)
	assert.Equal(t, []string{"atom0", "atom1"}, reg.QubitIDs())
	assert.Equal(t, []pattern.Point{{X: 10, Y: 0}, {X: 0, Y: 0}}, reg.Coordinates())
}

func TestEmptyLayoutResolvesNothing(t *testing.T) {
	l := NewLayout("empty", nil)
	assert.Equal(t, 0, l.NumTraps())

	_, err := l.TrapsFromCoordinates(pattern.Point{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeTrapResolution))
}

func TestTrapIndexNearestPicksClosest(t *testing.T) {
	// Two traps straddle the query; only the one inside the tolerance wins.
	ix := newTrapIndex([]pattern.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, 0.25)

	id, ok := ix.Nearest(pattern.Point{X: 0.9, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = ix.Nearest(pattern.Point{X: 0.5, Y: 0})
	assert.False(t, ok, "midpoint is outside the tolerance of both traps")
}
