package stealth

import (
	"math"
	"testing"
	"time"

	"github.com/devlikebear/gamehub-sub000/vmath"
)

const eps = 1e-12

func TestNew_AmbientDefaults(t *testing.T) {
	m := New()
	if m.Threat != 0.12 || m.Visibility != 0.25 || m.Heat != 0 {
		t.Errorf("Expected {0.12 0.25 0}, got %+v", m)
	}
	if m.DetectionProbability() <= 0 {
		t.Error("Expected a resting player to carry some detection risk")
	}
}

func TestApplyAction_Formula(t *testing.T) {
	m := Meter{Threat: 0.1, Visibility: 0.5, Heat: 0.2}
	got := m.ApplyAction(Action{Noise: 0.3, Visibility: 0.4})

	want := Meter{
		Threat:     0.1 + 0.3*0.65 + 0.4*0.45*0.6,
		Visibility: 0.5*0.7 + 0.4*0.3,
		Heat:       0.2 + 0.3*0.5 + 0.4*0.15,
	}
	if math.Abs(got.Threat-want.Threat) > eps ||
		math.Abs(got.Visibility-want.Visibility) > eps ||
		math.Abs(got.Heat-want.Heat) > eps {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestApplyAction_ClampsInputsAndChannels(t *testing.T) {
	m := Meter{Threat: 0.9, Visibility: 0.9, Heat: 0.9}
	got := m.ApplyAction(Action{Noise: 4, Visibility: 9})
	if got.Threat != 1 || got.Heat != 1 || got.Visibility > 1 {
		t.Errorf("Expected saturated channels, got %+v", got)
	}

	same := New().ApplyAction(Action{Noise: -1, Visibility: -1})
	zero := New().ApplyAction(Action{})
	if same != zero {
		t.Errorf("Expected negative inputs to act as zero, got %+v vs %+v", same, zero)
	}
}

func TestDecay_Rates(t *testing.T) {
	m := Meter{Threat: 0.8, Visibility: 0.5, Heat: 0.6}
	dt := 100 * time.Millisecond

	open := m.Decay(dt, DecayOptions{})
	if math.Abs(open.Threat-(0.8-0.06)) > eps || math.Abs(open.Heat-(0.6-0.04)) > eps || math.Abs(open.Visibility-0.49) > eps {
		t.Errorf("Unexpected uncloaked decay: %+v", open)
	}

	cloaked := m.Decay(dt, DecayOptions{Cloaked: true})
	if math.Abs(cloaked.Threat-(0.8-0.145)) > eps || math.Abs(cloaked.Heat-(0.6-0.1)) > eps || math.Abs(cloaked.Visibility-0.46) > eps {
		t.Errorf("Unexpected cloaked decay: %+v", cloaked)
	}

	if cloaked.DetectionProbability() >= open.DetectionProbability() {
		t.Error("Expected cloaking to lower detection faster")
	}
}

func TestDecay_VisibilityPerCall(t *testing.T) {
	m := Meter{Visibility: 0.5}
	short := m.Decay(time.Millisecond, DecayOptions{})
	long := m.Decay(time.Minute, DecayOptions{})
	if short.Visibility != long.Visibility {
		t.Errorf("Expected visibility decay independent of dt, got %f vs %f", short.Visibility, long.Visibility)
	}
}

func TestDecay_FloorsAtZero(t *testing.T) {
	got := New().Decay(time.Hour, DecayOptions{Cloaked: true})
	if got.Threat != 0 || got.Heat != 0 {
		t.Errorf("Expected drained threat and heat, got %+v", got)
	}
	if neg := New().Decay(-time.Second, DecayOptions{}); neg.Threat != New().Threat {
		t.Errorf("Expected negative dt to leave threat alone, got %f", neg.Threat)
	}
}

func TestDetectionProbability_Weights(t *testing.T) {
	m := Meter{Threat: 0.4, Visibility: 0.2, Heat: 0.8}
	want := 0.4*0.5 + 0.2*0.35 + 0.8*0.25
	if got := m.DetectionProbability(); math.Abs(got-want) > eps {
		t.Errorf("Expected %f, got %f", want, got)
	}
	if got := (Meter{Threat: 1, Visibility: 1, Heat: 1}).DetectionProbability(); got != 1 {
		t.Errorf("Expected clamp to 1, got %f", got)
	}
	if got := (Meter{Threat: -3, Visibility: 2, Heat: math.NaN()}).DetectionProbability(); got < 0 || got > 1 {
		t.Errorf("Expected out-of-range meter to stay bounded, got %f", got)
	}
}

func TestMeter_BoundsUnderRandomSequences(t *testing.T) {
	rng := vmath.NewRand(2024)
	m := New()
	for i := 0; i < 5000; i++ {
		switch rng.Intn(3) {
		case 0:
			m = m.ApplyAction(Action{Noise: rng.Next()*3 - 1, Visibility: rng.Next()*3 - 1})
		case 1:
			m = m.Decay(time.Duration(rng.Intn(2000))*time.Millisecond, DecayOptions{Cloaked: rng.Next() < 0.5})
		default:
			m = m.ApplyAction(Action{Noise: 1, Visibility: 1})
		}

		for name, v := range map[string]float64{"threat": m.Threat, "visibility": m.Visibility, "heat": m.Heat, "p": m.DetectionProbability()} {
			if v < 0 || v > 1 {
				t.Fatalf("step %d: %s out of bounds: %f", i, name, v)
			}
		}
	}
}
