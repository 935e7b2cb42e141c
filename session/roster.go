package session

import (
	"fmt"

	"github.com/devlikebear/gamehub-sub000/maze"
	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

// rosterSeedOffset decorrelates anchor draws from the maze's own sequence
const rosterSeedOffset = 104729

// BuildRoster creates one pursuer per archetype with a patrol loop sampled off
// the maze layout. The innermost ring is left to the player unless it is the
// only ring.
func BuildRoster(state maze.State, archetypes []pursuer.Archetype, seed int64) []pursuer.Pursuer {
	if len(state.Layers) == 0 {
		return nil
	}
	rng := vmath.NewRand(seed + rosterSeedOffset)

	roster := make([]pursuer.Pursuer, 0, len(archetypes))
	for i, a := range archetypes {
		layer := anchorLayer(i, len(state.Layers))
		nodes := state.Layers[layer].Nodes
		anchor := rng.Intn(len(nodes))
		path := PatrolPath(nodes, anchor, pursuer.ConfigFor(a).PatrolRadius)

		roster = append(roster, pursuer.New(fmt.Sprintf("%s-%d", a, i), a, path))
	}
	return roster
}

func anchorLayer(i, layers int) int {
	if layers <= 1 {
		return 0
	}
	return layers - 1 - i%(layers-1)
}

// PatrolPath returns the contiguous arc of ring nodes within radius of the anchor,
// in ring order. The arc always spans at least the anchor and both neighbours.
func PatrolPath(nodes []maze.Node, anchor int, radius float64) []vmath.Vec2 {
	n := len(nodes)
	if n == 0 {
		return nil
	}
	if n <= 3 {
		path := make([]vmath.Vec2, n)
		for k := range nodes {
			path[k] = nodes[(anchor+k)%n].Position
		}
		return path
	}

	center := nodes[anchor].Position
	within := func(k int) bool {
		return nodes[k].Position.Dist(center) <= radius
	}

	back := 1
	for back < n-2 && within((anchor-back-1+2*n)%n) {
		back++
	}
	fwd := 1
	for back+fwd < n-1 && within((anchor+fwd+1)%n) {
		fwd++
	}

	path := make([]vmath.Vec2, 0, back+fwd+1)
	for k := -back; k <= fwd; k++ {
		path = append(path, nodes[(anchor+k+n)%n].Position)
	}
	return path
}
