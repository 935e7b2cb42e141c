package pursuer

import (
	"time"

	"github.com/devlikebear/gamehub-sub000/invariant"
	"github.com/devlikebear/gamehub-sub000/parameter"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

// Pursuer is one hunter walking a closed patrol loop.
// PathCursor indexes the waypoint currently being approached.
type Pursuer struct {
	ID         string
	Archetype  Archetype
	Position   vmath.Vec2
	PatrolPath []vmath.Vec2
	PathCursor int
	Awareness  float64
	Config     Config
}

// AdvanceOptions controls a single movement step
type AdvanceOptions struct {
	// TimeScale is clamped to [0.1, 1.5]
	TimeScale float64
	// PursuitTarget is chased while hunting; nil disables pursuit
	PursuitTarget *vmath.Vec2
}

// AwarenessOptions carries one perception sample
type AwarenessOptions struct {
	TargetPosition vmath.Vec2
	// ThreatLevel is the shared detection probability, clamped to [0,1]
	ThreatLevel float64
	DeltaTime   time.Duration
}

// New creates a pursuer at the start of its patrol path.
// An empty path degrades to a single point at the origin.
func New(id string, archetype Archetype, patrolPath []vmath.Vec2) Pursuer {
	path := append([]vmath.Vec2(nil), patrolPath...)
	if len(path) == 0 {
		path = []vmath.Vec2{{}}
	}

	return Pursuer{
		ID:         id,
		Archetype:  archetype,
		Position:   path[0],
		PatrolPath: path,
		PathCursor: 1 % len(path),
		Config:     ConfigFor(archetype),
	}
}

// Band classifies current awareness
func (p Pursuer) Band() Band {
	return BandOf(p.Awareness)
}

// HasCaptured reports the terminal detection threshold
func (p Pursuer) HasCaptured() bool {
	return p.Awareness >= parameter.CaptureAwareness
}

// StepDistance is how far the pursuer patrols over dt at the given time scale
func (p Pursuer) StepDistance(dt time.Duration, timeScale float64) float64 {
	if dt <= 0 {
		return 0
	}
	scale := vmath.Clamp(timeScale, parameter.PursuerTimeScaleMin, parameter.PursuerTimeScaleMax)
	return p.Config.Speed * dt.Seconds() * scale
}

// Advance walks the patrol loop by the full step distance, wrapping past the last
// waypoint, then biases toward the pursuit target while hunting.
func Advance(p Pursuer, dt time.Duration, opts AdvanceOptions) Pursuer {
	step := p.StepDistance(dt, opts.TimeScale)
	if step <= 0 {
		return p
	}

	p.Position, p.PathCursor = walkLoop(p.PatrolPath, p.Position, p.PathCursor, step)

	if opts.PursuitTarget != nil && p.Band() == Hunting {
		p.Position, _ = vmath.MoveToward(p.Position, *opts.PursuitTarget, step*parameter.PursuerPursuitShare)
	}
	return p
}

// UpdateAwareness raises awareness while the target is inside the detection radius,
// faster the closer it is, and decays it otherwise.
func UpdateAwareness(p Pursuer, opts AwarenessOptions) Pursuer {
	if opts.DeltaTime <= 0 {
		return p
	}
	secs := opts.DeltaTime.Seconds()
	threat := vmath.Clamp01(opts.ThreatLevel)
	radius := p.Config.DetectionRadius
	dist := p.Position.Dist(opts.TargetPosition)

	if radius > 0 && dist <= radius {
		proximity := vmath.Clamp(1-dist/radius, parameter.PursuerProximityFloor, parameter.PursuerProximityCeiling)
		p.Awareness += threat * p.Config.AwarenessGainRate * secs * proximity
	} else {
		p.Awareness -= p.Config.AwarenessDecayRate * secs
	}
	p.Awareness = vmath.Clamp01(p.Awareness)

	invariant.Check(p.Awareness >= 0 && p.Awareness <= 1, "pursuer %s awareness %f out of range", p.ID, p.Awareness)
	return p
}

// --- Helpers ---

// walkLoop consumes dist along the closed polyline starting from pos heading to path[cursor]
func walkLoop(path []vmath.Vec2, pos vmath.Vec2, cursor int, dist float64) (vmath.Vec2, int) {
	n := len(path)
	if n == 0 {
		return pos, 0
	}
	cursor = ((cursor % n) + n) % n

	// Consecutive zero-length legs: a full lap of them means the loop has no length
	idle := 0
	for dist > 0 && idle <= n {
		target := path[cursor]
		var moved float64
		pos, moved = vmath.MoveToward(pos, target, dist)
		dist -= moved

		if pos != target {
			break
		}
		if moved == 0 {
			idle++
		} else {
			idle = 0
		}
		cursor = (cursor + 1) % n
	}
	return pos, cursor
}
