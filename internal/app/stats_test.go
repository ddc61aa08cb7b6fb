package app

import (
	"testing"
	"time"
)

func TestStats(t *testing.T) {
	s := NewStats()
	if snap := s.Snapshot(); snap.AvgRender != 0 || snap.Renders != 0 {
		t.Errorf("fresh snapshot = %+v", snap)
	}

	s.RecordCycle()
	s.RecordCycle()
	s.RecordKey()
	s.RecordRender(2 * time.Millisecond)
	s.RecordRender(4 * time.Millisecond)
	s.RecordSave()

	snap := s.Snapshot()
	if snap.Cycles != 2 || snap.Keys != 1 || snap.Renders != 2 || snap.Saves != 1 {
		t.Errorf("counters = %+v", snap)
	}
	if snap.AvgRender != 3*time.Millisecond || snap.MaxRender != 4*time.Millisecond {
		t.Errorf("render timing avg %v max %v", snap.AvgRender, snap.MaxRender)
	}
	if f := snap.Fields(); f["saves"] != uint64(1) || f["keys"] != uint64(1) {
		t.Errorf("Fields() = %v", f)
	}
}
