package maze

import (
	"time"

	"github.com/devlikebear/gamehub-sub000/invariant"
)

// Step advances every ring's portal timer by dt.
// A ring whose timer elapsed, or every ring when ForceReconfigure is set, gets a
// fresh portal set and a zeroed timer; other rings only accumulate elapsed time.
// The input state is not modified.
func Step(s State, dt time.Duration, opts StepOptions) State {
	if dt < 0 {
		dt = 0
	}

	next := s
	next.Layers = make([]Layer, len(s.Layers))
	rng := s.Rand

	for i, l := range s.Layers {
		l.Elapsed += dt
		if opts.ForceReconfigure || l.Elapsed >= l.PortalRotation {
			l.Nodes = append([]Node(nil), l.Nodes...)
			reconfigurePortals(l.Nodes, &rng)
			l.Elapsed = 0
		}
		next.Layers[i] = l
	}

	next.Rand = rng
	next.ActivePortals = collectPortals(next.Layers)

	if invariant.Enabled {
		invariant.CheckErr(Validate(next))
	}
	return next
}

// Reconfigured reports which layers changed their portal set between two states
func Reconfigured(prev, next State) []string {
	var ids []string
	for i := range next.Layers {
		if i >= len(prev.Layers) {
			break
		}
		if !samePortals(prev.Layers[i], next.Layers[i]) {
			ids = append(ids, next.Layers[i].ID)
		}
	}
	return ids
}

func samePortals(a, b Layer) bool {
	if len(a.Nodes) != len(b.Nodes) {
		return false
	}
	for i := range a.Nodes {
		if a.Nodes[i].IsPortal != b.Nodes[i].IsPortal {
			return false
		}
	}
	return true
}
