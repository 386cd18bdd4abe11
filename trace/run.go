package trace

import (
	"fmt"

	"github.com/nobmurakita/trackgest/gesture"
	"github.com/nobmurakita/trackgest/hidseq"
	"github.com/nobmurakita/trackgest/sink"
)

// tickGranularityMS is how finely Run steps time between samples so
// hidseq pulse timing and the engine's tap-chain/drag-hold deadlines
// land on the same millisecond a live poll loop would observe them.
const tickGranularityMS = 1

// RecordedAction pairs an engine Action with the timestamp it was
// produced at, for tests and tooling that want to inspect a replay
// without a Sink in the loop.
type RecordedAction struct {
	TimeMS int64
	Action gesture.Action
}

// Run replays a Trace through a fresh engine and click sequencer,
// driving sink for every resulting pointer effect, and returns every
// non-none Action the engine produced in order.
func Run(t Trace, cfg gesture.Config, snk sink.Sink) ([]RecordedAction, error) {
	state := gesture.NewState(cfg)
	seq := hidseq.NewSequencer()

	var recorded []RecordedAction
	var now int64

	advanceTo := func(target int64) error {
		for now < target {
			now += tickGranularityMS
			if action := state.Tick(now); !action.IsNone() {
				recorded = append(recorded, RecordedAction{TimeMS: now, Action: action})
				if err := apply(action, &seq, now, snk); err != nil {
					return err
				}
			}
			if err := drainSequencer(&seq, now, snk); err != nil {
				return err
			}
		}
		return nil
	}

	for _, sample := range t.Samples {
		if err := advanceTo(sample.TimeMS); err != nil {
			return recorded, err
		}
		now = sample.TimeMS

		ev := gesture.Event{Type: sample.Type, X: sample.X, Y: sample.Y}
		action := state.ProcessInput(ev, now)
		if !action.IsNone() {
			recorded = append(recorded, RecordedAction{TimeMS: now, Action: action})
			if err := apply(action, &seq, now, snk); err != nil {
				return recorded, err
			}
		}
		if err := drainSequencer(&seq, now, snk); err != nil {
			return recorded, err
		}
	}

	// Flush any tap chain still pending past the trace's last sample,
	// and let any queued click pulses finish, the way a live poll loop
	// keeps ticking after the input goes quiet.
	drainDeadline := now + cfg.Tuning.MultiTapWindowMS + tickGranularityMS
	if err := advanceTo(drainDeadline); err != nil {
		return recorded, err
	}
	for !seq.Idle() {
		now += tickGranularityMS
		if err := drainSequencer(&seq, now, snk); err != nil {
			return recorded, err
		}
	}

	return recorded, nil
}

func apply(action gesture.Action, seq *hidseq.Sequencer, now int64, snk sink.Sink) error {
	switch action.Kind {
	case gesture.ActionMove, gesture.ActionDragMove:
		return snk.Move(action.DX, action.DY)
	case gesture.ActionClick:
		seq.Enqueue(action.Clicks, now)
		return nil
	case gesture.ActionDragStart:
		return snk.Button(0, true)
	case gesture.ActionDragEnd:
		return snk.Button(0, false)
	case gesture.ActionScrollV:
		return snk.Scroll(action.ScrollUnits, false)
	case gesture.ActionScrollH:
		return snk.Scroll(action.ScrollUnits, true)
	case gesture.ActionDragPending, gesture.ActionNone:
		return nil
	default:
		return fmt.Errorf("trace: unhandled action kind %v", action.Kind)
	}
}

func drainSequencer(seq *hidseq.Sequencer, now int64, snk sink.Sink) error {
	switch seq.Tick(now) {
	case hidseq.PulseDown:
		return snk.Button(0, true)
	case hidseq.PulseUp:
		return snk.Button(0, false)
	default:
		return nil
	}
}
