package trace

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nobmurakita/trackgest/gesture"
)

// Sample is one recorded touch event with the timestamp it occurred
// at, in milliseconds on whatever monotonic clock the recording used.
type Sample struct {
	TimeMS int64             `json:"t"`
	Type   gesture.EventType `json:"type"`
	X      int32             `json:"x"`
	Y      int32             `json:"y"`
}

// Trace is a recorded sequence of samples, sorted by TimeMS.
type Trace struct {
	Samples []Sample `json:"samples"`
}

// Decode reads a JSON-encoded Trace.
func Decode(r io.Reader) (Trace, error) {
	var t Trace
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return Trace{}, fmt.Errorf("trace: decode: %w", err)
	}
	return t, nil
}

// Encode writes t as JSON.
func Encode(w io.Writer, t Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("trace: encode: %w", err)
	}
	return nil
}
