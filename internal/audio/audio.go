// Package audio plays pronunciation clips on a best-effort basis. Nothing
// here reports errors to callers; problems end up in the log.
package audio

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Player plays the clip for a romaji key, if there is one.
type Player interface {
	Play(romaji string)
}

// Nop never plays anything.
type Nop struct{}

func (Nop) Play(string) {}

// runner starts an external command and waits for it.
type runner func(name string, args ...string) error

func execRun(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// ClipPlayer resolves <dir>/<romaji>.wav and hands it to an external player
// command in the background.
type ClipPlayer struct {
	dir     string
	command []string
	log     *zap.Logger
	run     runner
}

// New returns a ClipPlayer, or Nop when dir or command is empty.
func New(dir, command string, log *zap.Logger) Player {
	fields := strings.Fields(command)
	if dir == "" || len(fields) == 0 {
		return Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ClipPlayer{dir: dir, command: fields, log: log, run: execRun}
}

// ClipPath is where the clip for romaji is expected.
func (p *ClipPlayer) ClipPath(romaji string) string {
	return filepath.Join(p.dir, romaji+".wav")
}

// Play starts playback and returns immediately.
func (p *ClipPlayer) Play(romaji string) {
	romaji = strings.TrimSpace(romaji)
	if romaji == "" || strings.ContainsAny(romaji, `/\`) {
		p.log.Warn("refusing clip key", zap.String("romaji", romaji))
		return
	}

	path := p.ClipPath(romaji)
	if _, err := os.Stat(path); err != nil {
		p.log.Debug("no clip for kana", zap.String("romaji", romaji), zap.Error(err))
		return
	}

	args := append(append([]string(nil), p.command[1:]...), path)
	go func() {
		if err := p.run(p.command[0], args...); err != nil {
			p.log.Warn("failed to play clip",
				zap.String("romaji", romaji),
				zap.String("path", path),
				zap.Error(err))
		}
	}()
}
