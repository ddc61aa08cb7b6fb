package app

import "time"

// Stats counts what one editing session did. It is owned by the control
// loop and needs no locking.
type Stats struct {
	start time.Time

	cycles      uint64
	keys        uint64
	renders     uint64
	renderTotal time.Duration
	renderMax   time.Duration
	saves       uint64
}

// NewStats starts a session clock.
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// RecordCycle counts one pass of the control loop.
func (s *Stats) RecordCycle() {
	s.cycles++
}

// RecordKey counts one handled key event.
func (s *Stats) RecordKey() {
	s.keys++
}

// RecordRender records how long a frame took to paint.
func (s *Stats) RecordRender(d time.Duration) {
	s.renders++
	s.renderTotal += d
	if d > s.renderMax {
		s.renderMax = d
	}
}

// RecordSave counts a completed save.
func (s *Stats) RecordSave() {
	s.saves++
}

// StatsSnapshot is a point-in-time view of Stats.
type StatsSnapshot struct {
	Uptime    time.Duration
	Cycles    uint64
	Keys      uint64
	Renders   uint64
	AvgRender time.Duration
	MaxRender time.Duration
	Saves     uint64
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	var avg time.Duration
	if s.renders > 0 {
		avg = s.renderTotal / time.Duration(s.renders)
	}
	return StatsSnapshot{
		Uptime:    time.Since(s.start),
		Cycles:    s.cycles,
		Keys:      s.keys,
		Renders:   s.renders,
		AvgRender: avg,
		MaxRender: s.renderMax,
		Saves:     s.saves,
	}
}

// Fields returns the snapshot as logger fields.
func (s StatsSnapshot) Fields() map[string]any {
	return map[string]any{
		"uptime":     s.Uptime.Round(time.Millisecond),
		"cycles":     s.Cycles,
		"keys":       s.Keys,
		"renders":    s.Renders,
		"avg_render": s.AvgRender,
		"max_render": s.MaxRender,
		"saves":      s.Saves,
	}
}
