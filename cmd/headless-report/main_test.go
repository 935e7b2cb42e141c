package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devlikebear/gamehub-sub000/config"
	"github.com/devlikebear/gamehub-sub000/session"
)

func TestRunAutopilot_Deterministic(t *testing.T) {
	cfg := config.Default()
	a := runAutopilot(cfg, 1, 42, 1200)
	b := runAutopilot(cfg, 1, 42, 1200)

	if a.outcome != b.outcome || a.endTick != b.endTick || a.bandChanges != b.bandChanges {
		t.Fatalf("expected identical runs, got %+v and %+v", a, b)
	}
	if a.attemptID != session.AttemptID(cfg.Level, 42).String() {
		t.Errorf("expected attempt id for level %d seed 42, got %s", cfg.Level, a.attemptID)
	}
	if a.endTick <= 0 || a.endTick > 1200 {
		t.Errorf("expected end tick within the budget, got %d", a.endTick)
	}
}

func TestRunAutopilot_TickBudget(t *testing.T) {
	rs := runAutopilot(config.Default(), 1, 7, 3)
	if rs.endTick > 3 {
		t.Fatalf("expected at most 3 ticks, got %d", rs.endTick)
	}
}

func TestSummarize(t *testing.T) {
	all := []runStats{
		{outcome: session.Escaped, endTick: 100, portalRotations: 4, peakDetection: 0.2},
		{outcome: session.Captured, endTick: 50, portalRotations: 2, peakDetection: 0.7},
		{outcome: session.Running, endTick: 300, portalRotations: 0, peakDetection: 0.1},
	}

	agg := summarize(all)
	if agg.escaped != 1 || agg.captured != 1 || agg.timedOut != 1 {
		t.Fatalf("expected one of each outcome, got %+v", agg)
	}
	if agg.meanEndTick != 150 || agg.meanRotations != 2 || agg.peakDetection != 0.7 {
		t.Fatalf("unexpected aggregate %+v", agg)
	}
	if empty := summarize(nil); empty.runs != 0 || empty.meanEndTick != 0 {
		t.Fatalf("expected zero aggregate for no runs, got %+v", empty)
	}
}

func TestWriteSnapshots(t *testing.T) {
	rs := runAutopilot(config.Default(), 1, 11, 40)
	path := filepath.Join(t.TempDir(), "runs.yaml")

	if err := writeSnapshots(path, []runStats{rs}); err != nil {
		t.Fatalf("writeSnapshots: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(data)
	for _, want := range []string{"attempt_id: " + rs.attemptID, "outcome: " + rs.outcome.String(), "pursuers:", "band: "} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in snapshot file:\n%s", want, out)
		}
	}
}

func TestTickOrDash(t *testing.T) {
	if tickOrDash(-1) != "-" || tickOrDash(12) != "12" {
		t.Fatal("unexpected tick formatting")
	}
}
