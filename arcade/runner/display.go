package runner

import (
	"fmt"
	"math"
)

// DisplaySink receives the status text. An empty string means no message.
type DisplaySink interface {
	SetText(s string)
}

// Surface is the rendering collaborator. Sync is called after every frame
// with the current world; Resize forwards viewport changes.
type Surface interface {
	Sync(w *World)
	Resize(width, height int)
}

const (
	HomeText    = "NEON RUN\nPress Enter to start"
	restartHint = "Press Enter to restart"
)

// Text returns the display text for a game state.
func Text(s GameState) string {
	switch s.Mode {
	case ModePlaying:
		msg := fmt.Sprintf("Score: %d", int64(math.Floor(s.Score)))
		if s.BoostTimer > 0 {
			msg += " BOOST!"
		}
		return msg
	case ModeGameOver:
		return fmt.Sprintf("Game Over! Final Score: %d\n%s", int64(math.Floor(s.Score)), restartHint)
	default:
		return HomeText
	}
}

type nopSink struct{}

func (nopSink) SetText(string) {}

type nopSurface struct{}

func (nopSurface) Sync(*World)     {}
func (nopSurface) Resize(int, int) {}
