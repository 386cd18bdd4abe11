// Command padgestd turns a touchscreen's raw ABS_X/ABS_Y/BTN_TOUCH
// stream into synthesized mouse movement, clicks, drags, and scroll,
// via the gesture engine. It can also run in -replay mode against a
// recorded JSON trace, with no device or display required.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nobmurakita/trackgest/gesture"
	"github.com/nobmurakita/trackgest/hidseq"
	"github.com/nobmurakita/trackgest/hostconfig"
	"github.com/nobmurakita/trackgest/sampler"
	"github.com/nobmurakita/trackgest/sink"
	"github.com/nobmurakita/trackgest/trace"
)

// reopenBackoff is how long runLoop waits before retrying newLiveSource
// after the touch device disappears.
const reopenBackoff = 500 * time.Millisecond

const pollInterval = 4 * time.Millisecond

func main() {
	var (
		replayPath = flag.String("replay", "", "replay a recorded JSON trace instead of polling a live device")
		configPath = flag.String("config", "", "path to a trackgest.toml config file (default: XDG config dir)")
		devicePath = flag.String("device", "/dev/input/event0", "evdev touchscreen device path")
		backend    = flag.String("backend", "evdev", "pointer sink backend: evdev or x11")
		hres       = flag.Int("hres", 1920, "panel horizontal resolution in pixels")
		vres       = flag.Int("vres", 1080, "panel vertical resolution in pixels")
	)
	flag.Parse()

	logger := sink.NewStdLogger("[padgestd] ")

	if *replayPath != "" {
		if err := runReplay(*replayPath, int32(*hres), int32(*vres)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig(*configPath, int32(*hres), int32(*vres))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := newLiveSource(*devicePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snk, err := newLiveSink(*backend, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer snk.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("padgestd started")
	runLoop(cfg, src, snk, logger, stop, *devicePath)
	logger.Info("padgestd stopped")
}

func loadConfig(path string, hres, vres int32) (gesture.Config, error) {
	if path == "" {
		if err := hostconfig.EnsureDefault(hres, vres); err != nil {
			return gesture.Config{}, err
		}
		path = hostconfig.Path()
	}
	return hostconfig.Load(path)
}

func runReplay(path string, hres, vres int32) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	tr, err := trace.Decode(f)
	if err != nil {
		return err
	}

	cfg, err := hostconfig.Default(hres, vres)
	if err != nil {
		return err
	}

	logger := sink.NewStdLogger("[replay] ")
	recorded, err := trace.Run(tr, cfg, sink.NewLogSink(logger))
	if err != nil {
		return err
	}
	for _, r := range recorded {
		fmt.Printf("%6dms %-12s dx=%d dy=%d clicks=%d scroll=%d\n",
			r.TimeMS, r.Action.Kind, r.Action.DX, r.Action.DY, r.Action.Clicks, r.Action.ScrollUnits)
	}
	return nil
}

// runLoop owns src for the duration of the run: on ErrDeviceGone it
// closes the stale handle, reopens the device, and resets the gesture
// engine so a hot-unplug/replug doesn't leave a contact stuck mid-phase.
func runLoop(cfg gesture.Config, src liveSource, snk sink.Sink, logger sink.Logger, stop <-chan os.Signal, devicePath string) {
	state := gesture.NewState(cfg)
	seq := hidseq.NewSequencer()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	defer func() { src.Close() }()

	start := time.Now()
	now := func() int64 { return time.Since(start).Milliseconds() }

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t := now()

			for {
				ev, ok, err := src.Poll()
				if err != nil {
					if errors.Is(err, sampler.ErrDeviceGone) {
						reopened, ok := reopenSource(src, devicePath, logger, stop)
						if !ok {
							return
						}
						src = reopened
						state.Reset()
						break
					}
					logger.Error("source poll failed", "error", err)
					return
				}
				if !ok {
					break
				}
				dispatch(state.ProcessInput(ev, t), &seq, t, snk, logger)
			}

			dispatch(state.Tick(t), &seq, t, snk, logger)
			drainSequencer(&seq, t, snk, logger)
		}
	}
}

// reopenSource closes the stale device handle and retries newLiveSource
// until it succeeds or stop fires, in which case ok is false and the
// caller should shut down without a usable source.
func reopenSource(stale liveSource, devicePath string, logger sink.Logger, stop <-chan os.Signal) (src liveSource, ok bool) {
	stale.Close()
	logger.Warn("touch device gone, reopening", "device", devicePath)
	for {
		src, err := newLiveSource(devicePath)
		if err == nil {
			logger.Info("touch device reopened", "device", devicePath)
			return src, true
		}
		logger.Warn("reopen failed, retrying", "device", devicePath, "error", err)
		select {
		case <-stop:
			return nil, false
		case <-time.After(reopenBackoff):
		}
	}
}

func dispatch(action gesture.Action, seq *hidseq.Sequencer, now int64, snk sink.Sink, logger sink.Logger) {
	var err error
	switch action.Kind {
	case gesture.ActionNone, gesture.ActionDragPending:
		return
	case gesture.ActionMove, gesture.ActionDragMove:
		err = snk.Move(action.DX, action.DY)
	case gesture.ActionClick:
		seq.Enqueue(action.Clicks, now)
		return
	case gesture.ActionDragStart:
		err = snk.Button(0, true)
	case gesture.ActionDragEnd:
		err = snk.Button(0, false)
	case gesture.ActionScrollV:
		err = snk.Scroll(action.ScrollUnits, false)
	case gesture.ActionScrollH:
		err = snk.Scroll(action.ScrollUnits, true)
	}
	if err != nil {
		logger.Warn("sink call failed", "action", action.Kind.String(), "error", err)
	}
}

func drainSequencer(seq *hidseq.Sequencer, now int64, snk sink.Sink, logger sink.Logger) {
	var err error
	switch seq.Tick(now) {
	case hidseq.PulseDown:
		err = snk.Button(0, true)
	case hidseq.PulseUp:
		err = snk.Button(0, false)
	default:
		return
	}
	if err != nil {
		logger.Warn("click pulse failed", "error", err)
	}
}
