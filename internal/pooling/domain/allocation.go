package domain

import (
	"errors"
	"sort"
)

// MemberBalance is the allocation input: a ship and its adjusted compliance
// balance at pool creation time.
type MemberBalance struct {
	ShipID string
	CB     float64
}

// Allocation is the settlement outcome for one member.
type Allocation struct {
	ShipID   string
	CBBefore float64
	CBAfter  float64
}

// ErrNegativeSum rejects a pool whose member balances sum below zero.
var ErrNegativeSum = errors.New("pool_sum_negative")

// Allocate redistributes surplus from surplus ships to deficit ships.
//
// Providers are visited in descending balance order (largest surplus drained
// first); deficits are served most negative first. A single pointer walks the
// provider list across all deficits, so the transfer loop is O(n) after
// sorting. Because the total surplus covers the total deficit whenever the
// sum is non-negative, every deficit ship ends at exactly zero; surplus ships
// keep whatever is left after giving, and never go below zero.
//
// The returned allocations preserve input order. The second return value is
// the pool's balance sum.
func Allocate(members []MemberBalance) ([]Allocation, float64, error) {
	sum := 0.0
	for _, m := range members {
		sum += m.CB
	}
	if sum < 0 {
		return nil, sum, ErrNegativeSum
	}

	allocations := make([]Allocation, len(members))
	for i, m := range members {
		allocations[i] = Allocation{
			ShipID:   m.ShipID,
			CBBefore: m.CB,
			CBAfter:  m.CB,
		}
	}

	var surplus, deficit []int
	for i, m := range members {
		switch {
		case m.CB > 0:
			surplus = append(surplus, i)
		case m.CB < 0:
			deficit = append(deficit, i)
		}
	}
	sort.SliceStable(surplus, func(a, b int) bool {
		return members[surplus[a]].CB > members[surplus[b]].CB
	})
	sort.SliceStable(deficit, func(a, b int) bool {
		return members[deficit[a]].CB < members[deficit[b]].CB
	})

	provider := 0
	for _, d := range deficit {
		needed := -allocations[d].CBAfter
		for needed > 0 && provider < len(surplus) {
			p := surplus[provider]
			available := allocations[p].CBAfter
			if available >= needed {
				allocations[p].CBAfter -= needed
				allocations[d].CBAfter = 0
				needed = 0
			} else {
				allocations[p].CBAfter = 0
				allocations[d].CBAfter += available
				needed -= available
				provider++
			}
		}
	}

	return allocations, sum, nil
}
