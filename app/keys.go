package app

import (
	"neonrun/arcade/runner"
	"neonrun/hal"
)

func runnerKey(c hal.KeyCode) runner.Key {
	switch c {
	case hal.KeyLeft:
		return runner.KeyArrowLeft
	case hal.KeyRight:
		return runner.KeyArrowRight
	case hal.KeyA:
		return runner.KeyA
	case hal.KeyD:
		return runner.KeyD
	case hal.KeySpace:
		return runner.KeySpace
	case hal.KeyEnter:
		return runner.KeyEnter
	default:
		return runner.KeyNone
	}
}

// drainKeys feeds every pending key event to the loop. Escape asks the
// host to exit.
func (s *system) drainKeys() error {
	if s.keys == nil {
		return nil
	}
	for {
		select {
		case ev := <-s.keys:
			if ev.Code == hal.KeyEscape && ev.Press {
				s.logf("exit requested")
				return hal.ErrExit
			}
			k := runnerKey(ev.Code)
			if k == runner.KeyNone {
				continue
			}
			if ev.Press {
				s.loop.OnKeyDown(k)
			} else {
				s.loop.OnKeyUp(k)
			}
		default:
			return nil
		}
	}
}
