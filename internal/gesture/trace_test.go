package gesture

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTrace(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func validLandmarksJSON() string {
	out := "["
	for i := 0; i < FrameSize; i++ {
		if i > 0 {
			out += ","
		}
		out += "[0.5,0.5]"
	}
	return out + "]"
}

func TestFrameFromTrace(t *testing.T) {
	raw := make([][2]float64, FrameSize)
	for i := range raw {
		raw[i] = [2]float64{0.4, 0.6}
	}
	f := frameFromTrace(raw)
	require.NotNil(t, f)
	assert.Equal(t, Point{X: 0.4, Y: 0.6}, f[0])

	assert.Nil(t, frameFromTrace(nil), "empty means no hand")
	assert.Nil(t, frameFromTrace(raw[:10]), "wrong count is malformed")

	raw[3] = [2]float64{1.5, 0.5}
	assert.Nil(t, frameFromTrace(raw), "out-of-range coordinate is malformed")
}

func TestReplayPublishesFrames(t *testing.T) {
	// One immediate frame, then one far enough out that we can observe the
	// first before playback moves on.
	body := `[{"t":0,"landmarks":` + validLandmarksJSON() + `},{"t":5000,"landmarks":[]}]`
	box := &Mailbox{}
	stop, err := Replay(writeTrace(t, body), box)
	require.NoError(t, err)
	defer stop()

	deadline := time.Now().Add(2 * time.Second)
	for box.Latest() == nil {
		if time.Now().After(deadline) {
			t.Fatal("no frame published before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
	f := box.Latest()
	require.NotNil(t, f)
	assert.Equal(t, Point{X: 0.5, Y: 0.5}, f[wrist])

	stop()
	assert.Nil(t, box.Latest(), "stop clears the mailbox")
	stop() // idempotent
}

func TestReplayErrors(t *testing.T) {
	_, err := Replay(filepath.Join(t.TempDir(), "missing.json"), &Mailbox{})
	assert.Error(t, err)

	_, err = Replay(writeTrace(t, "{not json"), &Mailbox{})
	assert.Error(t, err)
}
