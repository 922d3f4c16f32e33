package app

import (
	"fmt"

	"neonrun/arcade/runner"
	"neonrun/arcade/scene"
	"neonrun/hal"
	"neonrun/internal/buildinfo"
)

type Config struct {
	Seed uint64
	// AutoStart begins a run at boot instead of waiting on the home screen.
	AutoStart bool
	// Tuning overrides runner.DefaultTuning when non-zero.
	Tuning runner.Tuning
}

type system struct {
	log  hal.Logger
	disp hal.Display
	keys <-chan hal.KeyEvent

	surface *scene.Surface
	loop    *runner.Loop

	fbW, fbH int
}

// New builds the game with default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds the game and returns its step function. The host
// calls step once per frame.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		return func() error { return err }
	}
	return guard(s.log, s.step)
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	s := &system{
		log:     h.Logger(),
		disp:    h.Display(),
		surface: scene.New(),
	}
	if s.log == nil {
		s.log = discardLogger{}
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}

	loop, err := runner.New(runner.Options{
		Tuning:       cfg.Tuning,
		Seed:         cfg.Seed,
		Display:      s.surface,
		Surface:      s.surface,
		OnTransition: s.logTransition,
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s.loop = loop

	s.logf("boot %s seed=%d", buildinfo.String(), cfg.Seed)
	if fb := s.framebuffer(); fb != nil {
		s.checkResize(fb)
	}
	if cfg.AutoStart {
		s.loop.StartGame()
	}
	return s, nil
}

func (s *system) step() error {
	if err := s.drainKeys(); err != nil {
		return err
	}
	fb := s.framebuffer()
	if fb != nil {
		s.checkResize(fb)
	}

	s.loop.Step()

	if fb == nil {
		return nil
	}
	if err := s.surface.Render(fb); err != nil {
		return fmt.Errorf("app: render: %w", err)
	}
	return nil
}

func (s *system) framebuffer() hal.Framebuffer {
	if s.disp == nil {
		return nil
	}
	return s.disp.Framebuffer()
}

// checkResize forwards framebuffer size changes to the loop.
func (s *system) checkResize(fb hal.Framebuffer) {
	w, h := fb.Width(), fb.Height()
	if w == s.fbW && h == s.fbH {
		return
	}
	s.fbW, s.fbH = w, h
	s.loop.Resize(w, h)
	s.logf("display %dx%d", w, h)
}

func (s *system) logTransition(t runner.Transition) {
	s.logf("%s -> %s frame=%d score=%d", t.From, t.To, t.Frame, int64(t.Score))
	if t.To == runner.ModeGameOver {
		s.logf("hit obstacle %d pickups=%d", s.loop.HitIndex(), s.loop.Pickups())
	}
}

func (s *system) logf(format string, args ...any) {
	s.log.WriteLineString("neonrun: " + fmt.Sprintf(format, args...))
}

type discardLogger struct{}

func (discardLogger) WriteLineString(string) {}
func (discardLogger) WriteLineBytes([]byte)  {}
