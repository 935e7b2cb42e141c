package session

import (
	"math"

	"github.com/devlikebear/gamehub-sub000/parameter"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

// Autopilot is a deterministic player policy for headless runs and demos.
// It heads for the nearest open outer portal, cloaks when a pursuer is close and
// sprints only when nobody is near.
type Autopilot struct{}

// Decide returns the input for the session's current state
func (Autopilot) Decide(s *Session) Input {
	goal, ok := nearestExit(s)
	if !ok {
		return Input{}
	}

	player := s.Player()
	closest := math.Inf(1)
	for _, p := range s.Pursuers() {
		ratio := p.Position.Dist(player) / p.Config.DetectionRadius
		closest = math.Min(closest, ratio)
	}

	return Input{
		Move:    goal.Sub(player),
		Cloaked: closest <= parameter.AutopilotCloakRadiusFactor,
		Sprint:  closest > 2*parameter.AutopilotCloakRadiusFactor,
	}
}

func nearestExit(s *Session) (vmath.Vec2, bool) {
	player := s.Player()
	best := math.Inf(1)
	var goal vmath.Vec2
	for _, n := range s.Maze().Outermost().Nodes {
		if !n.IsPortal {
			continue
		}
		if d := n.Position.Dist(player); d < best {
			best, goal = d, n.Position
		}
	}
	return goal, !math.IsInf(best, 1)
}
