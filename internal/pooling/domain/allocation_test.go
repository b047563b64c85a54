package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_CoversAllDeficits(t *testing.T) {
	members := []MemberBalance{
		{ShipID: "S1", CB: 150},
		{ShipID: "S2", CB: -50},
		{ShipID: "S3", CB: -120},
		{ShipID: "S4", CB: 200},
		{ShipID: "S5", CB: -20},
	}

	allocations, sum, err := Allocate(members)
	require.NoError(t, err)
	assert.InDelta(t, 160, sum, 1e-9)
	require.Len(t, allocations, 5)

	// Input order preserved.
	for i, m := range members {
		assert.Equal(t, m.ShipID, allocations[i].ShipID)
		assert.Equal(t, m.CB, allocations[i].CBBefore)
	}

	// S4 (largest surplus) drains first: 200 - 120 - 50 - 20 = 10.
	// S1 is never touched because S4 covers everything.
	after := map[string]float64{}
	for _, a := range allocations {
		after[a.ShipID] = a.CBAfter
	}
	assert.InDelta(t, 150, after["S1"], 1e-9)
	assert.InDelta(t, 0, after["S2"], 1e-9)
	assert.InDelta(t, 0, after["S3"], 1e-9)
	assert.InDelta(t, 10, after["S4"], 1e-9)
	assert.InDelta(t, 0, after["S5"], 1e-9)
}

func TestAllocate_SpillsAcrossProviders(t *testing.T) {
	members := []MemberBalance{
		{ShipID: "A", CB: 60},
		{ShipID: "B", CB: 50},
		{ShipID: "C", CB: -100},
	}

	allocations, sum, err := Allocate(members)
	require.NoError(t, err)
	assert.InDelta(t, 10, sum, 1e-9)

	// A is fully drained, B gives the remaining 40.
	assert.InDelta(t, 0, allocations[0].CBAfter, 1e-9)
	assert.InDelta(t, 10, allocations[1].CBAfter, 1e-9)
	assert.InDelta(t, 0, allocations[2].CBAfter, 1e-9)
}

func TestAllocate_NegativeSumRejected(t *testing.T) {
	allocations, sum, err := Allocate([]MemberBalance{
		{ShipID: "S1", CB: 10},
		{ShipID: "S2", CB: -50},
	})
	assert.ErrorIs(t, err, ErrNegativeSum)
	assert.Nil(t, allocations)
	assert.InDelta(t, -40, sum, 1e-9)
}

func TestAllocate_ExactDrain(t *testing.T) {
	allocations, sum, err := Allocate([]MemberBalance{
		{ShipID: "S1", CB: 100},
		{ShipID: "S2", CB: -100},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, sum, 1e-9)
	assert.InDelta(t, 0, allocations[0].CBAfter, 1e-9)
	assert.InDelta(t, 0, allocations[1].CBAfter, 1e-9)
}

func TestAllocate_ZeroBalanceMemberUntouched(t *testing.T) {
	allocations, _, err := Allocate([]MemberBalance{
		{ShipID: "S1", CB: 80},
		{ShipID: "S2", CB: 0},
		{ShipID: "S3", CB: -30},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, allocations[1].CBBefore)
	assert.Equal(t, 0.0, allocations[1].CBAfter)
}

func TestAllocate_AllSurplusUnchanged(t *testing.T) {
	members := []MemberBalance{
		{ShipID: "S1", CB: 30},
		{ShipID: "S2", CB: 70},
	}
	allocations, sum, err := Allocate(members)
	require.NoError(t, err)
	assert.InDelta(t, 100, sum, 1e-9)
	for i, a := range allocations {
		assert.Equal(t, members[i].CB, a.CBAfter)
	}
}

// Settlement only moves balance around: the pool total is conserved, deficit
// ships end at zero, and no surplus ship ever goes negative or gains.
func TestAllocate_Invariants(t *testing.T) {
	cases := [][]MemberBalance{
		{{ShipID: "a", CB: 5}, {ShipID: "b", CB: -3}, {ShipID: "c", CB: -2}},
		{{ShipID: "a", CB: 1000}, {ShipID: "b", CB: -999.5}},
		{{ShipID: "a", CB: 10}, {ShipID: "b", CB: 10}, {ShipID: "c", CB: 10}, {ShipID: "d", CB: -29}},
		{{ShipID: "a", CB: 0.1}, {ShipID: "b", CB: 0.2}, {ShipID: "c", CB: -0.3}},
	}

	for _, members := range cases {
		allocations, sum, err := Allocate(members)
		require.NoError(t, err)

		totalAfter := 0.0
		for i, a := range allocations {
			totalAfter += a.CBAfter
			if members[i].CB < 0 {
				assert.InDelta(t, 0, a.CBAfter, 1e-9)
			} else {
				assert.GreaterOrEqual(t, a.CBAfter, -1e-9)
				assert.LessOrEqual(t, a.CBAfter, a.CBBefore+1e-9)
			}
		}
		assert.InDelta(t, sum, totalAfter, 1e-9)
	}
}
