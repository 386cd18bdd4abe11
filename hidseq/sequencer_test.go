package hidseq

import "testing"

func TestSequencerIdleWithNothingQueued(t *testing.T) {
	s := NewSequencer()
	if !s.Idle() {
		t.Fatal("a fresh sequencer should be idle")
	}
	if p := s.Tick(0); p != PulseNone {
		t.Fatalf("Tick on an idle sequencer = %v, want PulseNone", p)
	}
}

func TestSequencerSingleClickPulses(t *testing.T) {
	s := NewSequencer()
	s.Enqueue(1, 0)

	if p := s.Tick(0); p != PulseDown {
		t.Fatalf("first tick = %v, want PulseDown", p)
	}
	if p := s.Tick(5); p != PulseNone {
		t.Fatalf("tick before press_ms elapses = %v, want PulseNone", p)
	}
	if p := s.Tick(10); p != PulseUp {
		t.Fatalf("tick at press_ms = %v, want PulseUp", p)
	}
	if !s.Idle() {
		t.Fatal("sequencer should be idle once the single click's up pulse fires")
	}
}

func TestSequencerDoubleClickSpacing(t *testing.T) {
	s := NewSequencer()
	s.Enqueue(2, 0)

	if p := s.Tick(0); p != PulseDown {
		t.Fatalf("click 1 down = %v, want PulseDown", p)
	}
	if p := s.Tick(10); p != PulseUp {
		t.Fatalf("click 1 up = %v, want PulseUp", p)
	}
	if p := s.Tick(20); p != PulseNone {
		t.Fatalf("tick before gap_ms elapses = %v, want PulseNone", p)
	}
	if p := s.Tick(40); p != PulseNone {
		t.Fatalf("tick at gap_ms just ends the gap, one pulse per call, got %v", p)
	}
	if p := s.Tick(41); p != PulseDown {
		t.Fatalf("click 2 down on the next tick = %v, want PulseDown", p)
	}
	if p := s.Tick(51); p != PulseUp {
		t.Fatalf("click 2 up = %v, want PulseUp", p)
	}
	if !s.Idle() {
		t.Fatal("sequencer should be idle after both clicks complete")
	}
}

func TestSequencerEnqueueDuringActiveSequenceRestarts(t *testing.T) {
	s := NewSequencer()
	s.Enqueue(3, 0)
	s.Tick(0) // consume the first down pulse

	s.Enqueue(1, 5) // a fresh click request interrupts the triple-click
	if p := s.Tick(5); p != PulseDown {
		t.Fatalf("re-enqueue should restart from a fresh down pulse, got %v", p)
	}
	if p := s.Tick(15); p != PulseUp {
		t.Fatalf("restarted sequence up pulse = %v, want PulseUp", p)
	}
	if !s.Idle() {
		t.Fatal("sequencer should be idle after the restarted single click completes")
	}
}
