package session

import (
	"fmt"
)

// Event is one recorded occurrence during a run
type Event struct {
	Tick     int
	Actor    string  // pursuer id, layer id, or "--" for run-wide events
	Category string  // band, portal, outcome
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] seeker-1   band     change       suspicious -> hunting
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-10s %-8s %-12s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// EventLog collects structured events. A positive limit keeps only the newest entries.
type EventLog struct {
	entries []Event
	limit   int
	sink    func(Event)
}

// NewEventLog creates a log; limit <= 0 means unbounded
func NewEventLog(limit int, sink func(Event)) *EventLog {
	return &EventLog{limit: limit, sink: sink}
}

// Add records a new entry and forwards it to the sink
func (l *EventLog) Add(tick int, actor, category, key, value string, numVal float64) {
	e := Event{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	}
	l.entries = append(l.entries, e)
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = append(l.entries[:0], l.entries[len(l.entries)-l.limit:]...)
	}
	if l.sink != nil {
		l.sink(e)
	}
}

// Entries returns a copy of the retained entries, oldest first
func (l *EventLog) Entries() []Event {
	return append([]Event(nil), l.entries...)
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns the number of entries matching category and key
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}
