package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type call struct {
	name string
	args []string
}

func newTestPlayer(t *testing.T, dir string, err error) (*ClipPlayer, chan call, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	p, ok := New(dir, "aplay -q", zap.New(core)).(*ClipPlayer)
	require.True(t, ok)

	calls := make(chan call, 1)
	p.run = func(name string, args ...string) error {
		calls <- call{name: name, args: args}
		return err
	}
	return p, calls, logs
}

func TestNewWithoutSettingsIsNop(t *testing.T) {
	assert.IsType(t, Nop{}, New("", "aplay", nil))
	assert.IsType(t, Nop{}, New("clips", "  ", nil))
	assert.IsType(t, &ClipPlayer{}, New("clips", "aplay", nil))
}

func TestPlayRunsCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ka.wav"), []byte("RIFF"), 0o644))
	p, calls, _ := newTestPlayer(t, dir, nil)

	p.Play("ka")

	select {
	case c := <-calls:
		assert.Equal(t, "aplay", c.name)
		assert.Equal(t, []string{"-q", filepath.Join(dir, "ka.wav")}, c.args)
	case <-time.After(2 * time.Second):
		t.Fatal("player command was not started")
	}
}

func TestPlayMissingClipIsQuiet(t *testing.T) {
	p, calls, logs := newTestPlayer(t, t.TempDir(), nil)

	p.Play("shi")

	assert.Empty(t, calls)
	require.Equal(t, 1, logs.FilterMessage("no clip for kana").Len())
}

func TestPlayRejectsPathKeys(t *testing.T) {
	p, calls, logs := newTestPlayer(t, t.TempDir(), nil)

	p.Play("../secret")
	p.Play("")

	assert.Empty(t, calls)
	assert.Equal(t, 2, logs.FilterMessage("refusing clip key").Len())
}

func TestPlayFailureIsLogged(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsu.wav"), []byte("RIFF"), 0o644))
	p, calls, logs := newTestPlayer(t, dir, errors.New("device busy"))

	p.Play("tsu")
	<-calls

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("failed to play clip").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNopPlay(t *testing.T) {
	assert.NotPanics(t, func() { Nop{}.Play("a") })
}
