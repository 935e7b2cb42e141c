package main

import (
	"log"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/session"
)

const cueSampleRate = beep.SampleRate(44100)

// Cues turns session events into short tones. A Cues that failed to init stays silent.
type Cues struct {
	enabled bool
}

// NewCues opens the speaker; on failure the game continues without audio
func NewCues(enabled bool) *Cues {
	if !enabled {
		return &Cues{}
	}
	if err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed, continuing without audio: %v", err)
		return &Cues{}
	}
	return &Cues{enabled: true}
}

// OnEvent is a session.EventSink
func (c *Cues) OnEvent(e session.Event) {
	if !c.enabled {
		return
	}

	switch {
	case e.Category == "band" && strings.HasSuffix(e.Value, pursuer.Hunting.String()):
		c.play(tone{660, 60 * time.Millisecond}, tone{880, 90 * time.Millisecond})
	case e.Category == "band" && strings.HasSuffix(e.Value, pursuer.Suspicious.String()):
		c.play(tone{440, 50 * time.Millisecond})
	case e.Category == "outcome" && e.Key == session.Captured.String():
		c.play(tone{330, 120 * time.Millisecond}, tone{220, 250 * time.Millisecond})
	case e.Category == "outcome" && e.Key == session.Escaped.String():
		c.play(tone{523, 80 * time.Millisecond}, tone{659, 80 * time.Millisecond}, tone{784, 140 * time.Millisecond})
	case e.Category == "portal":
		c.play(tone{1320, 20 * time.Millisecond})
	}
}

type tone struct {
	freq     float64
	duration time.Duration
}

func (c *Cues) play(tones ...tone) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(cueSampleRate, t.freq)
		if err != nil {
			log.Printf("cue %vHz: %v", t.freq, err)
			return
		}
		parts = append(parts, beep.Take(cueSampleRate.N(t.duration), sine))
	}
	speaker.Play(beep.Seq(parts...))
}

// Close releases the speaker
func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
	}
}
