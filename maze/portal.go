package maze

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/devlikebear/gamehub-sub000/parameter"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

// drawPortals flags up to count nodes as portals and returns their indices in draw order
func drawPortals(nodes []Node, count int, rng *vmath.Rand) []int {
	chosen := selectPortals(len(nodes), count, rng)
	for _, idx := range chosen {
		nodes[idx].IsPortal = true
	}
	return chosen
}

// selectPortals draws distinct indices with a bounded number of attempts.
// A sparse ring or an unlucky sequence may yield fewer than count.
func selectPortals(n, count int, rng *vmath.Rand) []int {
	if n <= 0 || count <= 0 {
		return nil
	}
	if count > n {
		count = n
	}

	chosen := make([]int, 0, count)
	taken := mapset.New[int]()
	attempts := parameter.MazePortalDrawAttemptsPerNode * n
	for a := 0; a < attempts && len(chosen) < count; a++ {
		idx := rng.Intn(n)
		if taken.Has(idx) {
			continue
		}
		taken.Put(idx)
		chosen = append(chosen, idx)
	}
	return chosen
}

// reconfigurePortals redraws a ring's portals in place.
// When the new draw equals the previous set exactly, one element is swapped for a
// node outside it. Individual portals may survive a rotation, and the swap is
// skipped silently when every node was already a portal.
func reconfigurePortals(nodes []Node, rng *vmath.Rand) {
	prev := mapset.New[int]()
	for i := range nodes {
		if nodes[i].IsPortal {
			prev.Put(i)
		}
		nodes[i].IsPortal = false
	}

	chosen := selectPortals(len(nodes), reconfigureCount(len(nodes)), rng)
	if sameIndexSet(chosen, prev) {
		swapOne(chosen, prev, len(nodes), rng)
	}

	for _, idx := range chosen {
		nodes[idx].IsPortal = true
	}
}

// reconfigureCount is roughly a fifth of the ring, never zero
func reconfigureCount(n int) int {
	c := int(math.Round(float64(n) * parameter.MazePortalReconfigureRatio))
	if c < 1 {
		c = 1
	}
	return c
}

func sameIndexSet(chosen []int, prev mapset.Set[int]) bool {
	if len(chosen) != prev.Size() {
		return false
	}
	for _, idx := range chosen {
		if !prev.Has(idx) {
			return false
		}
	}
	return true
}

// swapOne replaces the last chosen index with the first non-portal found scanning from a seeded start
func swapOne(chosen []int, prev mapset.Set[int], n int, rng *vmath.Rand) bool {
	if len(chosen) == 0 || n == 0 {
		return false
	}
	start := rng.Intn(n)
	for off := 0; off < n; off++ {
		c := (start + off) % n
		if !prev.Has(c) {
			chosen[len(chosen)-1] = c
			return true
		}
	}
	return false
}

// collectPortals aggregates flagged nodes, ordered by layer then ring index
func collectPortals(layers []Layer) []PortalRef {
	var refs []PortalRef
	for _, l := range layers {
		for _, n := range l.Nodes {
			if n.IsPortal {
				refs = append(refs, PortalRef{LayerID: l.ID, NodeID: n.ID})
			}
		}
	}
	return refs
}
