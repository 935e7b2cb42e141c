package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devlikebear/gamehub-sub000/config"
	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/session"
)

type runStats struct {
	runIndex  int
	seed      int64
	attemptID string

	outcome session.Outcome
	endTick int

	firstSuspiciousTick int
	firstHuntingTick    int

	bandChanges     int
	portalRotations int
	peakDetection   float64

	final session.Snapshot
}

type aggregate struct {
	runs     int
	captured int
	escaped  int
	timedOut int

	meanEndTick   float64
	meanRotations float64
	peakDetection float64
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var configPath string
	var snapshotPath string

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 2400, "tick budget per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.StringVar(&snapshotPath, "snapshot", "", "write final snapshots of every run to this YAML file")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Stealth Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d tick=%v roster=%v\n\n",
		runs, ticks, seedBase, seedStep, cfg.TickInterval(), cfg.Roster)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(cfg, i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(summarize(all))

	if snapshotPath != "" {
		if err := writeSnapshots(snapshotPath, all); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("\nsnapshots written to %s\n", snapshotPath)
	}
}

func runAutopilot(cfg config.Config, runIndex int, seed int64, ticks int) runStats {
	opts := cfg.SessionOptions()
	opts.Seed = seed

	stats := runStats{runIndex: runIndex, seed: seed, firstSuspiciousTick: -1, firstHuntingTick: -1}
	opts.Observer = func(snap session.Snapshot) {
		if snap.Detection > stats.peakDetection {
			stats.peakDetection = snap.Detection
		}
		for _, p := range snap.Pursuers {
			if p.Band >= pursuer.Suspicious && stats.firstSuspiciousTick < 0 {
				stats.firstSuspiciousTick = snap.Tick
			}
			if p.Band == pursuer.Hunting && stats.firstHuntingTick < 0 {
				stats.firstHuntingTick = snap.Tick
			}
		}
	}

	s := session.New(opts)
	dt := cfg.TickInterval()
	var pilot session.Autopilot
	for i := 0; i < ticks && s.Outcome() == session.Running; i++ {
		s.Tick(dt, pilot.Decide(s))
	}

	stats.attemptID = s.ID().String()
	stats.outcome = s.Outcome()
	stats.endTick = s.Ticks()
	stats.bandChanges = s.Log().Count("band", "change")
	stats.portalRotations = s.Log().Count("portal", "rotate")
	stats.final = s.Snapshot()
	return stats
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all)}
	if len(all) == 0 {
		return agg
	}

	var ticks, rotations int
	for _, rs := range all {
		switch rs.outcome {
		case session.Captured:
			agg.captured++
		case session.Escaped:
			agg.escaped++
		default:
			agg.timedOut++
		}
		ticks += rs.endTick
		rotations += rs.portalRotations
		if rs.peakDetection > agg.peakDetection {
			agg.peakDetection = rs.peakDetection
		}
	}
	agg.meanEndTick = float64(ticks) / float64(len(all))
	agg.meanRotations = float64(rotations) / float64(len(all))
	return agg
}

func printRun(rs runStats) {
	fmt.Printf("run %d seed=%d attempt=%s\n", rs.runIndex, rs.seed, rs.attemptID)
	fmt.Printf("  outcome=%s end_tick=%d\n", rs.outcome, rs.endTick)
	fmt.Printf("  first_suspicious=%s first_hunting=%s\n", tickOrDash(rs.firstSuspiciousTick), tickOrDash(rs.firstHuntingTick))
	fmt.Printf("  band_changes=%d portal_rotations=%d peak_detection=%.3f\n\n", rs.bandChanges, rs.portalRotations, rs.peakDetection)
}

func printAggregate(agg aggregate) {
	fmt.Printf("=== Aggregate (%d runs) ===\n", agg.runs)
	if agg.runs == 0 {
		return
	}
	fmt.Printf("escaped=%d (%.0f%%) captured=%d (%.0f%%) timed_out=%d\n",
		agg.escaped, pct(agg.escaped, agg.runs), agg.captured, pct(agg.captured, agg.runs), agg.timedOut)
	fmt.Printf("mean_end_tick=%.1f mean_portal_rotations=%.1f peak_detection=%.3f\n",
		agg.meanEndTick, agg.meanRotations, agg.peakDetection)
}

type snapshotFile struct {
	Generated string             `yaml:"generated"`
	Runs      []session.Snapshot `yaml:"runs"`
}

func writeSnapshots(path string, all []runStats) error {
	doc := snapshotFile{Generated: time.Now().UTC().Format(time.RFC3339)}
	for _, rs := range all {
		doc.Runs = append(doc.Runs, rs.final)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode snapshots: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshots: %w", err)
	}
	return nil
}

func tickOrDash(tick int) string {
	if tick < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", tick)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
