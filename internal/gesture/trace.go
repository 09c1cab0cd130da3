package gesture

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// traceSample is one recorded tracker observation. T is milliseconds from
// trace start; an empty landmark list records a frame with no hand.
type traceSample struct {
	T         int64        `json:"t"`
	Landmarks [][2]float64 `json:"landmarks"`
}

// Replay plays a recorded landmark trace into box at its recorded cadence on
// a background goroutine. Samples that fail validation are published as
// no-hand frames instead of aborting playback. The returned stop function
// ends playback and clears the mailbox; it is safe to call more than once.
func Replay(path string, box *Mailbox) (stop func(), err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	var samples []traceSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse trace %s: %w", path, err)
	}

	quit := make(chan struct{})
	go func() {
		start := time.Now()
		for _, s := range samples {
			at := start.Add(time.Duration(s.T) * time.Millisecond)
			if d := time.Until(at); d > 0 {
				select {
				case <-quit:
					return
				case <-time.After(d):
				}
			} else {
				select {
				case <-quit:
					return
				default:
				}
			}
			box.Publish(frameFromTrace(s.Landmarks))
		}
		box.Publish(nil)
	}()

	stopped := false
	return func() {
		if !stopped {
			stopped = true
			close(quit)
			box.Publish(nil)
		}
	}, nil
}

func frameFromTrace(raw [][2]float64) *Frame {
	pts := make([]Point, len(raw))
	for i, xy := range raw {
		pts[i] = Point{X: xy[0], Y: xy[1]}
	}
	f, err := NewFrame(pts)
	if err != nil {
		return nil // treat malformed as no hand
	}
	return f
}
