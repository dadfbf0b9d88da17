package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	slotV Slot = iota
	slotI
	slotR
)

var ohm = []Relation{
	{Name: "V=IR", Needs: Needs(slotI, slotR), Gives: slotV, Eval: func(v Values) (float64, bool) {
		return v.At(slotI) * v.At(slotR), true
	}},
	{Name: "I=V/R", Needs: Needs(slotV, slotR), Gives: slotI, Eval: func(v Values) (float64, bool) {
		if v.At(slotR) == 0 {
			return 0, false
		}
		return v.At(slotV) / v.At(slotR), true
	}},
	{Name: "R=V/I", Needs: Needs(slotV, slotI), Gives: slotR, Eval: func(v Values) (float64, bool) {
		if v.At(slotI) == 0 {
			return 0, false
		}
		return v.At(slotV) / v.At(slotI), true
	}},
}

func TestSolveFillsMissingSlot(t *testing.T) {
	var v Values
	v.Set(slotV, 12)
	v.Set(slotR, 4)

	got, fired := Solve(ohm, v)
	i, ok := got.Get(slotI)
	require.True(t, ok)
	assert.InDelta(t, 3.0, i, 1e-12)
	assert.Equal(t, []string{"I=V/R"}, fired)
}

func TestSolveDeclinedRelationLeavesSlotAbsent(t *testing.T) {
	var v Values
	v.Set(slotV, 12)
	v.Set(slotI, 0)

	got, fired := Solve(ohm, v)
	assert.False(t, got.Known(slotR))
	assert.Empty(t, fired)
}

func TestSolvePriorityFirstApplicableWins(t *testing.T) {
	const a, b Slot = 0, 1
	table := []Relation{
		{Name: "specific", Needs: Needs(a), Gives: b, Eval: func(v Values) (float64, bool) { return 1, true }},
		{Name: "general", Needs: Needs(a), Gives: b, Eval: func(v Values) (float64, bool) { return 2, true }},
	}
	var v Values
	v.Set(a, 0)
	got, fired := Solve(table, v)
	assert.Equal(t, 1.0, got.At(b))
	assert.Equal(t, []string{"specific"}, fired)
}

func TestSolveChainsRelations(t *testing.T) {
	const x, y, z Slot = 0, 1, 2
	table := []Relation{
		{Name: "z=2y", Needs: Needs(y), Gives: z, Eval: func(v Values) (float64, bool) { return 2 * v.At(y), true }},
		{Name: "y=x+1", Needs: Needs(x), Gives: y, Eval: func(v Values) (float64, bool) { return v.At(x) + 1, true }},
	}
	var v Values
	v.Set(x, 1)
	got, fired := Solve(table, v)
	assert.Equal(t, 4.0, got.At(z))
	assert.Equal(t, []string{"y=x+1", "z=2y"}, fired)
}

func TestInconsistencies(t *testing.T) {
	var v Values
	v.Set(slotV, 10)
	v.Set(slotI, 1)
	v.Set(slotR, 5)
	assert.ElementsMatch(t, []string{"V=IR", "I=V/R", "R=V/I"}, Inconsistencies(ohm, v))

	v.Set(slotI, 2)
	assert.Empty(t, Inconsistencies(ohm, v))
}

func TestInconsistenciesSkipsAssumed(t *testing.T) {
	table := append([]Relation(nil), ohm...)
	for i := range table {
		table[i].Assumed = true
	}
	var v Values
	v.Set(slotV, 10)
	v.Set(slotI, 1)
	v.Set(slotR, 5)
	assert.Empty(t, Inconsistencies(table, v))
}

func TestClose(t *testing.T) {
	assert.True(t, Close(1, 1+1e-9, RelTol))
	assert.False(t, Close(1, 1.01, RelTol))
	assert.True(t, Close(0, 0, RelTol))
	assert.True(t, Close(0, 1e-17, RelTol))
}

func TestQuantityFromValues(t *testing.T) {
	var v Values
	assert.False(t, v.Quantity(slotV).Present())
	v.Set(slotV, 0)
	x, ok := v.Quantity(slotV).Get()
	assert.True(t, ok)
	assert.Equal(t, 0.0, x)
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain("SHM")
	require.NoError(t, err)
	assert.Equal(t, Harmonic, d)

	d, err = ParseDomain("electricity")
	require.NoError(t, err)
	assert.Equal(t, Electrostatics, d)

	_, err = ParseDomain("optics")
	assert.True(t, errors.Is(err, ErrUnknownDomain))
}
