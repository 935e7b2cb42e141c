package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/devlikebear/gamehub-sub000/maze"
	"github.com/devlikebear/gamehub-sub000/parameter"
	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/stealth"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

const tick = parameter.SessionTickInterval

func TestNew_Defaults(t *testing.T) {
	s := New(Options{Seed: 42})

	m := s.Maze()
	if m.Width != parameter.SessionDefaultWidth || m.Height != parameter.SessionDefaultHeight {
		t.Errorf("Expected default extents, got %vx%v", m.Width, m.Height)
	}
	if len(s.Pursuers()) != len(pursuer.Archetypes) {
		t.Errorf("Expected one pursuer per archetype, got %d", len(s.Pursuers()))
	}
	if s.Meter() != stealth.New() {
		t.Errorf("Expected fresh meter, got %+v", s.Meter())
	}
	if s.Player() != m.Layers[0].Nodes[0].Position {
		t.Errorf("Expected player on the innermost ring, got %v", s.Player())
	}
	if s.Outcome() != Running || s.Ticks() != 0 {
		t.Errorf("Expected a running attempt at tick 0")
	}
	if s.Log().Count("outcome", "start") != 1 {
		t.Error("Expected a start event")
	}
}

func TestTick_DeterministicReplay(t *testing.T) {
	inputs := []Input{
		{Move: vmath.V(1, 0)},
		{Move: vmath.V(1, 1), Sprint: true},
		{},
		{Move: vmath.V(0, -1), Cloaked: true},
		{Reshuffle: true},
	}

	run := func() []Snapshot {
		var out []Snapshot
		s := New(Options{Seed: 9, Observer: func(snap Snapshot) { out = append(out, snap) }})
		for i := 0; i < 200; i++ {
			s.Tick(tick, inputs[i%len(inputs)])
		}
		return out
	}

	a, b := run(), run()
	if len(a) == 0 || !reflect.DeepEqual(a, b) {
		t.Fatal("Expected identical snapshot sequences for identical inputs")
	}
}

// pin parks every pursuer and the player at the maze center
func pin(s *Session) {
	center := s.Maze().Center()
	for i := range s.roster {
		s.roster[i].Position = center
		s.roster[i].PatrolPath = []vmath.Vec2{center}
	}
	s.SetPlayer(center)
}

func TestTick_DetectionFeedsEveryPursuer(t *testing.T) {
	s := New(Options{Seed: 3, Roster: []pursuer.Archetype{pursuer.Seeker, pursuer.Warden}})
	pin(s)

	s.Tick(tick, Input{Move: vmath.V(0.0001, 0), Sprint: true})

	for _, p := range s.Pursuers() {
		if p.Awareness <= 0 {
			t.Errorf("%s: expected awareness gain from the shared detection signal", p.ID)
		}
	}
}

func TestTick_AwarenessUsesThisTickDetection(t *testing.T) {
	s := New(Options{Seed: 5, Roster: []pursuer.Archetype{pursuer.Seeker}})
	pin(s)
	p := s.Pursuers()[0]

	in := Input{Move: vmath.V(1e-9, 0), Sprint: true}
	meter := s.Meter().ApplyAction(ActionFor(in)).Decay(tick, stealth.DecayOptions{})

	s.Tick(tick, in)

	if s.Meter() != meter {
		t.Errorf("Expected meter %+v, got %+v", meter, s.Meter())
	}
	target := s.Player()
	want := pursuer.UpdateAwareness(
		pursuer.Advance(p, tick, pursuer.AdvanceOptions{TimeScale: 1, PursuitTarget: &target}),
		pursuer.AwarenessOptions{TargetPosition: target, ThreatLevel: meter.DetectionProbability(), DeltaTime: tick})
	if got := s.Pursuers()[0].Awareness; got != want.Awareness || got <= 0 {
		t.Errorf("Expected awareness %f, got %f", want.Awareness, got)
	}
}

func TestTick_CaptureIsTerminal(t *testing.T) {
	s := New(Options{Seed: 11, Roster: []pursuer.Archetype{pursuer.Seeker}})
	pin(s)
	s.roster[0].Awareness = 0.97

	var got Outcome
	for i := 0; i < 200 && got == Running; i++ {
		got = s.Tick(tick, Input{Move: vmath.V(0, 1e-9), Sprint: true})
	}
	if got != Captured {
		t.Fatalf("Expected capture, got %v", got)
	}

	ticks := s.Ticks()
	if again := s.Tick(tick, Input{}); again != Captured || s.Ticks() != ticks {
		t.Error("Expected terminal outcome to stick without advancing")
	}
	if s.Log().Count("outcome", "captured") != 1 {
		t.Error("Expected exactly one capture event")
	}
}

func TestTick_EscapeThroughOuterPortal(t *testing.T) {
	s := New(Options{Seed: 21, Roster: []pursuer.Archetype{}})
	portals := s.Maze().Outermost().PortalIndices()
	if len(portals) == 0 {
		t.Fatal("Expected an outer portal")
	}
	s.SetPlayer(s.Maze().Outermost().Nodes[portals[0]].Position)

	if got := s.Tick(tick, Input{}); got != Escaped {
		t.Fatalf("Expected escape, got %v", got)
	}
}

func TestTick_IdleDoesNotReportActions(t *testing.T) {
	s := New(Options{Seed: 2, Roster: []pursuer.Archetype{}})
	before := s.Meter()
	s.Tick(tick, Input{})
	if s.Meter().Threat >= before.Threat {
		t.Errorf("Expected idle tick to only decay threat, got %f from %f", s.Meter().Threat, before.Threat)
	}
}

func TestTick_ActionCadence(t *testing.T) {
	s := New(Options{Seed: 2, Roster: []pursuer.Archetype{}})
	in := Input{Move: vmath.V(0, 0.01)}

	applied := 0
	prevHeat := s.Meter().Heat
	for i := 0; i < int(time.Second/tick); i++ {
		s.Tick(tick, in)
		if s.Meter().Heat > prevHeat {
			applied++
		}
		prevHeat = s.Meter().Heat
		if s.Outcome() != Running {
			t.Fatalf("Unexpected outcome %v", s.Outcome())
		}
	}
	if want := int(time.Second / parameter.StealthActionInterval); applied != want {
		t.Errorf("Expected %d actions per second, got %d", want, applied)
	}
}

func TestTick_ReshuffleLogsPortalRotation(t *testing.T) {
	s := New(Options{Seed: 4, Roster: []pursuer.Archetype{}})
	s.Tick(tick, Input{Reshuffle: true})
	if got := s.Log().Count("portal", "rotate"); got != len(s.Maze().Layers) {
		t.Errorf("Expected %d rotation events, got %d", len(s.Maze().Layers), got)
	}
}

func TestRetry_RecreatesWholesale(t *testing.T) {
	s := New(Options{Seed: 1, Level: 3})
	for i := 0; i < 10; i++ {
		s.Tick(tick, Input{Move: vmath.V(1, 0), Sprint: true})
	}
	oldID := s.ID()

	s.Retry(1500 * time.Millisecond)

	if want := DeriveSeed(3, 1500*time.Millisecond); s.Seed() != want {
		t.Errorf("Expected seed %d, got %d", want, s.Seed())
	}
	if s.ID() == oldID {
		t.Error("Expected a new attempt id")
	}
	if s.Ticks() != 0 || s.Outcome() != Running || s.Meter() != stealth.New() {
		t.Error("Expected fresh attempt state")
	}
	fresh := maze.Create(parameter.SessionDefaultWidth, parameter.SessionDefaultHeight, s.Seed(), parameter.SessionDefaultPortalsPerLayer)
	if !reflect.DeepEqual(s.Maze().ActivePortals, fresh.ActivePortals) {
		t.Error("Expected maze recreated from the derived seed")
	}
}

func TestSnapshot_Contents(t *testing.T) {
	s := New(Options{Seed: 42, Level: 2})
	s.Tick(tick, Input{})
	snap := s.Snapshot()

	if snap.AttemptID != AttemptID(2, 42).String() || snap.Seed != 42 || snap.Tick != 1 {
		t.Errorf("Unexpected header %+v", snap)
	}
	if len(snap.Pursuers) != len(s.Pursuers()) || len(snap.Portals) != len(s.Maze().ActivePortals) {
		t.Error("Expected pursuers and portals copied into the snapshot")
	}
	if snap.Detection != s.DetectionProbability() {
		t.Errorf("Expected detection %f, got %f", s.DetectionProbability(), snap.Detection)
	}
}

func TestAutopilot_ReachesAnExitOrGetsCaught(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		s := New(Options{Seed: seed})
		var pilot Autopilot
		for i := 0; i < 4000 && s.Outcome() == Running; i++ {
			s.Tick(tick, pilot.Decide(s))
		}
		if s.Outcome() == Running {
			t.Errorf("seed %d: expected the autopilot run to finish", seed)
		}
	}
}

func TestActionFor(t *testing.T) {
	move := vmath.V(1, 0)
	tests := []struct {
		in   Input
		want stealth.Action
	}{
		{Input{}, stealth.Action{}},
		{Input{Move: move}, stealth.Action{Noise: parameter.NoiseWalkOpen, Visibility: parameter.VisibilityWalkOpen}},
		{Input{Move: move, Cloaked: true}, stealth.Action{Noise: parameter.NoiseWalkCloaked, Visibility: parameter.VisibilityWalkCloaked}},
		{Input{Move: move, Sprint: true}, stealth.Action{Noise: parameter.NoiseSprintOpen, Visibility: parameter.VisibilitySprintOpen}},
		{Input{Move: move, Sprint: true, Cloaked: true}, stealth.Action{Noise: parameter.NoiseSprintCloaked, Visibility: parameter.VisibilitySprintCloaked}},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.in); got != tt.want {
			t.Errorf("ActionFor(%+v) = %+v, expected %+v", tt.in, got, tt.want)
		}
	}
}
