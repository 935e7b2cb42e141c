package main

import (
	"testing"

	"github.com/devlikebear/gamehub-sub000/session"
)

func TestInput_ReshuffleConsumedUnderAutopilot(t *testing.T) {
	g := &Game{sess: session.New(session.Options{Seed: 42}), autopilot: true, reshuffle: true}

	if in := g.input(); !in.Reshuffle {
		t.Error("Expected the pending reshuffle to ride along with the autopilot input")
	}
	if g.reshuffle {
		t.Fatal("Expected the reshuffle request cleared after one tick")
	}

	g.autopilot = false
	if in := g.input(); in.Reshuffle {
		t.Error("Expected no stale reshuffle after leaving autopilot")
	}
}

func TestInput_ManualReshuffleFiresOnce(t *testing.T) {
	g := &Game{sess: session.New(session.Options{Seed: 42}), reshuffle: true}

	if in := g.input(); !in.Reshuffle {
		t.Error("Expected the reshuffle on the first tick")
	}
	if in := g.input(); in.Reshuffle {
		t.Error("Expected the reshuffle to fire only once")
	}
}
