package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// audioTap wraps a beep.Streamer and keeps the last N mono samples in a ring
// buffer so the render tick can derive a drive level from recently played
// audio.
type audioTap struct {
	Source    beep.Streamer
	buffer    []float64
	nextIndex int
	mu        sync.RWMutex
}

func newAudioTap(src beep.Streamer, ringSize int) *audioTap {
	return &audioTap{
		Source: src,
		buffer: make([]float64, ringSize),
	}
}

func (t *audioTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = (samples[i][0] + samples[i][1]) * 0.5
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *audioTap) Err() error { return t.Source.Err() }

// level returns the RMS of the last n samples, power-compressed into [0,1]
// so quiet passages still move the field.
func (t *audioTap) level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n == 0 {
		return 0
	}
	var sumSquares float64
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		s := t.buffer[idx]
		sumSquares += s * s
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	rms := math.Sqrt(sumSquares / float64(n))
	return clamp01(math.Pow(rms, 0.3))
}
