// Package session orchestrates one level attempt: it owns the maze, the stealth
// meter and the pursuer roster and steps them in a fixed order every tick.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devlikebear/gamehub-sub000/maze"
	"github.com/devlikebear/gamehub-sub000/parameter"
	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/stealth"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

// Outcome is the terminal state of an attempt
type Outcome uint8

const (
	Running Outcome = iota
	Captured
	Escaped
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Captured:
		return "captured"
	case Escaped:
		return "escaped"
	default:
		return fmt.Sprintf("outcome(%d)", o)
	}
}

// MarshalYAML encodes the outcome by name
func (o Outcome) MarshalYAML() (any, error) {
	return o.String(), nil
}

// Options configures a session. Zero fields take defaults from parameter.
type Options struct {
	Seed            int64
	Level           int
	Width, Height   float64
	PortalsPerLayer int
	Roster          []pursuer.Archetype
	// TimeScale slows or hastens every pursuer, clamped by the pursuer package
	TimeScale float64

	// Observer receives a snapshot after every tick
	Observer func(Snapshot)
	// EventSink receives every recorded event as it happens
	EventSink func(Event)
	// EventLimit caps retained events; 0 keeps everything
	EventLimit int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = parameter.SessionDefaultWidth
	}
	if o.Height <= 0 {
		o.Height = parameter.SessionDefaultHeight
	}
	if o.PortalsPerLayer <= 0 {
		o.PortalsPerLayer = parameter.SessionDefaultPortalsPerLayer
	}
	if o.Roster == nil {
		o.Roster = append([]pursuer.Archetype(nil), pursuer.Archetypes...)
	}
	if o.TimeScale == 0 {
		o.TimeScale = 1
	}
	return o
}

// Input is the player's intent for one tick
type Input struct {
	// Move is a direction; its length is ignored
	Move    vmath.Vec2
	Sprint  bool
	Cloaked bool
	// Reshuffle forces every ring to redraw its portals this tick
	Reshuffle bool
}

// Session is a single level attempt
type Session struct {
	opts Options

	id       uuid.UUID
	seed     int64
	ticks    int
	elapsed  time.Duration
	outcome  Outcome
	maze     maze.State
	meter    stealth.Meter
	roster   []pursuer.Pursuer
	player   vmath.Vec2
	cooldown time.Duration

	log *EventLog
}

// New creates the maze, meter and roster for opts
func New(opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		opts: opts,
		log:  NewEventLog(opts.EventLimit, opts.EventSink),
	}
	s.reset(opts.Seed)
	return s
}

// Retry discards the attempt wholesale and starts over with a seed derived from
// the level and the elapsed wall-clock time
func (s *Session) Retry(elapsed time.Duration) {
	s.reset(DeriveSeed(s.opts.Level, elapsed))
}

func (s *Session) reset(seed int64) {
	if seed <= 0 {
		seed = 1
	}
	s.seed = seed
	s.id = AttemptID(s.opts.Level, seed)
	s.ticks = 0
	s.elapsed = 0
	s.outcome = Running
	s.cooldown = 0
	s.maze = maze.Create(s.opts.Width, s.opts.Height, seed, s.opts.PortalsPerLayer)
	s.meter = stealth.New()
	s.roster = BuildRoster(s.maze, s.opts.Roster, seed)
	s.player = s.startPosition()

	s.log.Add(0, "--", "outcome", "start", fmt.Sprintf("attempt %s seed %d", s.id, seed), float64(seed))
}

func (s *Session) startPosition() vmath.Vec2 {
	if len(s.maze.Layers) == 0 || len(s.maze.Layers[0].Nodes) == 0 {
		return s.maze.Center()
	}
	return s.maze.Layers[0].Nodes[0].Position
}

// Tick advances the attempt by dt. Terminal outcomes are sticky.
func (s *Session) Tick(dt time.Duration, in Input) Outcome {
	if s.outcome != Running {
		return s.outcome
	}
	if dt < 0 {
		dt = 0
	}
	s.ticks++
	s.elapsed += dt

	// 1. Player movement and the stealth action it produces
	moving := !in.Move.IsZero()
	if moving {
		s.player = vmath.ClampToRect(
			s.player.Add(in.Move.Normalize().Scale(playerSpeed(in)*dt.Seconds())),
			s.maze.Width, s.maze.Height)
	}

	// 2. Stealth: actions at a fixed cadence while moving, decay every tick
	s.cooldown -= dt
	if moving && s.cooldown <= 0 {
		s.meter = s.meter.ApplyAction(ActionFor(in))
		s.cooldown = parameter.StealthActionInterval
	}
	s.meter = s.meter.Decay(dt, stealth.DecayOptions{Cloaked: in.Cloaked})

	// 3. Detection probability is fixed before any pursuer perceives
	threat := s.meter.DetectionProbability()

	// 4. Maze portal timers
	prev := s.maze
	s.maze = maze.Step(s.maze, dt, maze.StepOptions{ForceReconfigure: in.Reshuffle})
	for _, id := range maze.Reconfigured(prev, s.maze) {
		s.log.Add(s.ticks, id, "portal", "rotate", fmt.Sprintf("%d active", len(s.maze.ActivePortals)), 0)
	}

	// 5. Pursuers move, then perceive
	target := s.player
	for i, p := range s.roster {
		before := p.Band()
		p = pursuer.Advance(p, dt, pursuer.AdvanceOptions{TimeScale: s.opts.TimeScale, PursuitTarget: &target})
		p = pursuer.UpdateAwareness(p, pursuer.AwarenessOptions{
			TargetPosition: target,
			ThreatLevel:    threat,
			DeltaTime:      dt,
		})
		if after := p.Band(); after != before {
			s.log.Add(s.ticks, p.ID, "band", "change", fmt.Sprintf("%s -> %s", before, after), p.Awareness)
		}
		s.roster[i] = p
	}

	// 6. Terminal checks, capture first
	s.outcome = s.evaluate()
	if s.outcome != Running {
		s.log.Add(s.ticks, "--", "outcome", s.outcome.String(), fmt.Sprintf("after %v", s.elapsed), threat)
	}

	if s.opts.Observer != nil {
		s.opts.Observer(s.Snapshot())
	}
	return s.outcome
}

func (s *Session) evaluate() Outcome {
	for _, p := range s.roster {
		if p.HasCaptured() {
			return Captured
		}
	}
	if _, ok := s.reachablePortal(); ok {
		return Escaped
	}
	return Running
}

// reachablePortal finds an active outermost portal within reach of the player
func (s *Session) reachablePortal() (maze.Node, bool) {
	outer := s.maze.Outermost()
	for _, n := range outer.Nodes {
		if n.IsPortal && n.Position.Dist(s.player) <= parameter.PortalReachRadius {
			return n, true
		}
	}
	return maze.Node{}, false
}

// ActionFor maps movement intent to the noise and exposure it generates
func ActionFor(in Input) stealth.Action {
	if in.Move.IsZero() {
		return stealth.Action{}
	}
	switch {
	case in.Sprint && in.Cloaked:
		return stealth.Action{Noise: parameter.NoiseSprintCloaked, Visibility: parameter.VisibilitySprintCloaked}
	case in.Sprint:
		return stealth.Action{Noise: parameter.NoiseSprintOpen, Visibility: parameter.VisibilitySprintOpen}
	case in.Cloaked:
		return stealth.Action{Noise: parameter.NoiseWalkCloaked, Visibility: parameter.VisibilityWalkCloaked}
	default:
		return stealth.Action{Noise: parameter.NoiseWalkOpen, Visibility: parameter.VisibilityWalkOpen}
	}
}

func playerSpeed(in Input) float64 {
	speed := parameter.PlayerWalkSpeed
	if in.Sprint {
		speed = parameter.PlayerSprintSpeed
	}
	if in.Cloaked {
		speed *= parameter.PlayerCloakSpeedFactor
	}
	return speed
}

// --- Accessors ---

func (s *Session) ID() uuid.UUID                 { return s.id }
func (s *Session) Seed() int64                   { return s.seed }
func (s *Session) Level() int                    { return s.opts.Level }
func (s *Session) Ticks() int                    { return s.ticks }
func (s *Session) Elapsed() time.Duration        { return s.elapsed }
func (s *Session) Outcome() Outcome              { return s.outcome }
func (s *Session) Maze() maze.State              { return s.maze }
func (s *Session) Meter() stealth.Meter          { return s.meter }
func (s *Session) Player() vmath.Vec2            { return s.player }
func (s *Session) Log() *EventLog                { return s.log }
func (s *Session) DetectionProbability() float64 { return s.meter.DetectionProbability() }

// Pursuers returns a copy of the roster
func (s *Session) Pursuers() []pursuer.Pursuer {
	return append([]pursuer.Pursuer(nil), s.roster...)
}

// SetPlayer teleports the player, clamped to the maze extents
func (s *Session) SetPlayer(p vmath.Vec2) {
	s.player = vmath.ClampToRect(p, s.maze.Width, s.maze.Height)
}
