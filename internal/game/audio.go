package game

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/curve-morph/internal/config"
	"github.com/iburimskiy/curve-morph/internal/engine"
	"github.com/iburimskiy/curve-morph/internal/gesture"
)

// Speaker state survives across drives; re-init only on a sample rate change.
var (
	speakerReady bool
	speakerRate  beep.SampleRate
)

// audioDrive plays an audio file and steers the control signals from its
// loudness instead of the gesture mailbox.
type audioDrive struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	tap      *audioTap
}

// startAudio decodes path by extension and starts playback through a tap.
func startAudio(path string) (*audioDrive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch filepath.Ext(path) {
	case ".wav", ".WAV":
		streamer, format, err = wav.Decode(f)
	case ".mp3", ".MP3":
		streamer, format, err = mp3.Decode(f)
	case ".flac", ".FLAC":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported file type: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	tap := newAudioTap(streamer, config.AudioRingSize)

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !speakerReady {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return nil, err
		}
		speakerReady = true
		speakerRate = format.SampleRate
	} else if speakerRate != format.SampleRate {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return nil, err
		}
		speakerRate = format.SampleRate
	} else {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}

	speaker.Play(tap)
	return &audioDrive{file: f, streamer: streamer, tap: tap}, nil
}

// apply maps the current playback level into the same target ranges the
// gesture mapper uses, so the smoothed signals never leave their documented
// bounds. Rotation returns to rest; the idle spin carries the motion.
func (a *audioDrive) apply(sig *engine.Signals) {
	lv := a.tap.level(2048)
	sig.Spread.Target = gesture.TargetSpread(lv)
	sig.Scale.Target = gesture.TargetScale(lv)
	sig.Rotation.Target = config.RestRotation
}

func (a *audioDrive) stop() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	_ = a.streamer.Close()
	_ = a.file.Close()
}
