package runner

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewStartsAtHome(t *testing.T) {
	sink := &textSink{}
	surf := &countingSurface{}
	l := newTestLoop(t, Options{Display: sink, Surface: surf})

	if l.Mode() != ModeHome {
		t.Fatalf("mode = %s, want home", l.Mode())
	}
	if sink.last() != HomeText {
		t.Fatalf("text = %q, want home text", sink.last())
	}
	if surf.syncs != 1 {
		t.Fatalf("syncs = %d, want 1", surf.syncs)
	}
	if got := len(l.World().Arena.Obstacles()); got != 10 {
		t.Fatalf("obstacles = %d, want 10", got)
	}
	if got := len(l.World().Arena.Pads()); got != 5 {
		t.Fatalf("pads = %d, want 5", got)
	}
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	tun := DefaultTuning()
	tun.Obstacles = MaxObstacles + 1
	_, err := New(Options{Tuning: tun})
	if !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("err = %v, want ErrInvalidTuning", err)
	}
}

func TestStepOutsidePlayingIsPassive(t *testing.T) {
	l := newTestLoop(t, Options{})
	before := *l.World()
	for i := 0; i < 10; i++ {
		l.Step()
	}
	if *l.World() != before {
		t.Fatal("world changed while at home")
	}
}

func TestConfirmStartsFromHomeAndGameOver(t *testing.T) {
	var trans []Transition
	l := newTestLoop(t, Options{OnTransition: func(tr Transition) { trans = append(trans, tr) }})

	l.OnKeyDown(KeyEnter)
	if l.Mode() != ModePlaying {
		t.Fatalf("mode = %s, want playing", l.Mode())
	}
	l.OnKeyDown(KeyEnter)
	if len(trans) != 1 {
		t.Fatalf("confirm while playing produced a transition: %+v", trans)
	}

	l.World().State.Mode = ModeGameOver
	l.OnKeyDown(KeyEnter)
	if l.Mode() != ModePlaying {
		t.Fatalf("mode = %s, want playing after restart", l.Mode())
	}
	if trans[0].From != ModeHome || trans[0].To != ModePlaying {
		t.Fatalf("first transition = %+v", trans[0])
	}
	if last := trans[len(trans)-1]; last.From != ModeGameOver || last.To != ModePlaying {
		t.Fatalf("last transition = %+v", last)
	}
}

func TestStartGameResetsStateShape(t *testing.T) {
	for _, from := range []Mode{ModeHome, ModeGameOver} {
		l := newTestLoop(t, Options{Source: constSource(0.5)})
		w := l.World()
		w.State = GameState{Mode: from, Score: 99, Speed: 3, BoostTimer: 7}
		w.Player.Pos.X = -2.5
		w.FloorZ = 4
		for i := 0; i < w.Arena.Len(); i++ {
			w.Arena.At(i).Pos.Z = 3
		}
		w.Latch.Left = true

		l.OnKeyDown(KeyEnter)

		if w.State.Mode != ModePlaying || w.State.Score != 0 || w.State.BoostTimer != 0 {
			t.Fatalf("from %s: state = %+v", from, w.State)
		}
		if w.State.Speed != l.Tuning().InitialSpeed {
			t.Fatalf("from %s: speed = %v", from, w.State.Speed)
		}
		if w.Player.Pos.X != 0 {
			t.Fatalf("from %s: player x = %v", from, w.Player.Pos.X)
		}
		if !w.Latch.Left {
			t.Fatalf("from %s: latch was cleared", from)
		}
		// constSource(0.5): initial z = -(0.5*100 + 20) = -70, x = 0.
		for i := 0; i < w.Arena.Len(); i++ {
			e := w.Arena.At(i)
			if e.Pos.Z != -70 || e.Pos.X != 0 {
				t.Fatalf("from %s: entity %d at %+v", from, i, e.Pos)
			}
		}
	}
}

func TestStartGameClearsText(t *testing.T) {
	sink := &textSink{}
	l := newTestLoop(t, Options{Display: sink})
	l.OnKeyDown(KeyEnter)
	if sink.last() != "" {
		t.Fatalf("text = %q, want empty", sink.last())
	}
	l.Step()
	if !strings.HasPrefix(sink.last(), "Score: ") {
		t.Fatalf("text = %q, want score line", sink.last())
	}
}

func TestPlayerStaysInsideLimits(t *testing.T) {
	tun := DefaultTuning()
	tun.Obstacles = 0
	tun.Pads = 0
	l := newTestLoop(t, Options{Tuning: tun})
	l.StartGame()

	l.OnKeyDown(KeyArrowLeft)
	for i := 0; i < 500; i++ {
		l.Step()
		if x := l.World().Player.Pos.X; x < -3 || x > 3 {
			t.Fatalf("frame %d: x = %v", i, x)
		}
	}
	if x := l.World().Player.Pos.X; x != -3 {
		t.Fatalf("x = %v, want -3 after holding left", x)
	}

	l.OnKeyUp(KeyArrowLeft)
	l.OnKeyDown(KeyD)
	for i := 0; i < 500; i++ {
		l.Step()
		if x := l.World().Player.Pos.X; x < -3 || x > 3 {
			t.Fatalf("frame %d: x = %v", i, x)
		}
	}
	if x := l.World().Player.Pos.X; x != 3 {
		t.Fatalf("x = %v, want 3 after holding right", x)
	}
}

func TestStrafeStepIgnoresSpeed(t *testing.T) {
	tun := DefaultTuning()
	tun.Obstacles = 0
	tun.Pads = 0
	l := newTestLoop(t, Options{Tuning: tun})
	l.StartGame()
	l.World().State.Speed = 5
	l.OnKeyDown(KeyArrowRight)
	l.Step()
	if x := l.World().Player.Pos.X; x != tun.StrafeStep {
		t.Fatalf("x = %v, want %v", x, tun.StrafeStep)
	}
}

func TestScoreIncreasesWhilePlaying(t *testing.T) {
	tun := DefaultTuning()
	tun.Obstacles = 0
	l := newTestLoop(t, Options{Tuning: tun})
	l.StartGame()

	prev := l.World().State.Score
	prevSpeed := l.World().State.Speed
	for i := 0; i < 1000; i++ {
		if i%100 == 0 {
			l.OnKeyDown(KeySpace)
		} else if i%100 == 50 {
			l.OnKeyUp(KeySpace)
		}
		l.Step()
		s := l.World().State
		if s.Score <= prev {
			t.Fatalf("frame %d: score %v did not increase from %v", i, s.Score, prev)
		}
		if s.Speed <= prevSpeed {
			t.Fatalf("frame %d: base speed %v did not grow", i, s.Speed)
		}
		prev = s.Score
		prevSpeed = s.Speed
	}
}

func TestScoreFlatWithZeroSpeed(t *testing.T) {
	tun := DefaultTuning()
	tun.Obstacles = 0
	tun.Pads = 0
	tun.InitialSpeed = 0
	tun.Acceleration = 0
	l := newTestLoop(t, Options{Tuning: tun})
	l.StartGame()
	for i := 0; i < 10; i++ {
		l.Step()
	}
	if s := l.World().State.Score; s != 0 {
		t.Fatalf("score = %v, want 0", s)
	}
}

func TestCurrentSpeedCombinesBoosts(t *testing.T) {
	l := newTestLoop(t, Options{})
	l.StartGame()
	tun := l.Tuning()
	base := tun.InitialSpeed

	if got := l.CurrentSpeed(); got != base {
		t.Fatalf("speed = %v, want %v", got, base)
	}
	l.OnKeyDown(KeySpace)
	if got, want := l.CurrentSpeed(), base+tun.ManualBoostDelta; got != want {
		t.Fatalf("speed = %v, want %v", got, want)
	}
	l.World().State.BoostTimer = 3
	if got, want := l.CurrentSpeed(), base+tun.ManualBoostDelta+tun.PadBoostDelta; got != want {
		t.Fatalf("speed = %v, want %v", got, want)
	}
}

func TestBoostTimerExpires(t *testing.T) {
	tun := DefaultTuning()
	tun.Obstacles = 0
	tun.Pads = 0
	l := newTestLoop(t, Options{Tuning: tun})
	l.StartGame()
	l.World().State.BoostTimer = 1

	floor := l.World().FloorZ
	l.Step()
	if got := l.World().State.BoostTimer; got != 0 {
		t.Fatalf("boost timer = %d, want 0", got)
	}
	moved := l.World().FloorZ - floor
	if want := tun.InitialSpeed + tun.PadBoostDelta; !approx(moved, want) {
		t.Fatalf("boosted frame moved %v, want %v", moved, want)
	}

	if got := l.CurrentSpeed(); got != l.World().State.Speed {
		t.Fatalf("next speed = %v, want base %v", got, l.World().State.Speed)
	}
	floor = l.World().FloorZ
	base := l.World().State.Speed
	l.Step()
	if moved := l.World().FloorZ - floor; !approx(moved, base) {
		t.Fatalf("unboosted frame moved %v, want %v", moved, base)
	}
}

func TestEntitiesAdvanceEveryFrame(t *testing.T) {
	l := newTestLoop(t, Options{})
	l.StartGame()
	w := l.World()
	clearTrack(l)
	prev := make([]float64, w.Arena.Len())
	for i := range prev {
		prev[i] = w.Arena.At(i).Pos.Z
	}
	l.Step()
	for i := range prev {
		if z := w.Arena.At(i).Pos.Z; z <= prev[i] {
			t.Fatalf("entity %d z %v did not advance from %v", i, z, prev[i])
		}
	}
}

func TestPassedEntitiesAreRecycledBehindThePack(t *testing.T) {
	l := newTestLoop(t, Options{})
	l.StartGame()
	tun := l.Tuning()
	w := l.World()
	clearTrack(l)
	for i := 0; i < w.Arena.Len(); i++ {
		w.Arena.At(i).Pos.Z = tun.ViewerZ + tun.RecycleEpsilon + 0.5
	}
	l.Step()
	limit := tun.ViewerZ - tun.FarThreshold()
	for i := 0; i < w.Arena.Len(); i++ {
		e := w.Arena.At(i)
		if e.Pos.Z >= limit {
			t.Fatalf("entity %d z = %v, want < %v", i, e.Pos.Z, limit)
		}
		if e.Pos.X < -tun.SpawnHalfWidth || e.Pos.X >= tun.SpawnHalfWidth {
			t.Fatalf("entity %d x = %v out of spawn range", i, e.Pos.X)
		}
	}
}

func TestFloorWrapsAtFixedOffset(t *testing.T) {
	tun := DefaultTuning()
	tun.Obstacles = 0
	tun.Pads = 0
	l := newTestLoop(t, Options{Tuning: tun})
	l.StartGame()
	l.World().FloorZ = tun.ViewerZ + tun.FloorWrap - 0.01
	l.Step()
	if z := l.World().FloorZ; z != tun.FloorStart {
		t.Fatalf("floor z = %v, want %v", z, tun.FloorStart)
	}
}

func TestFrameCountCouplesSpeed(t *testing.T) {
	tun := DefaultTuning()
	tun.Obstacles = 0
	tun.Pads = 0
	slow := newTestLoop(t, Options{Tuning: tun})
	fast := newTestLoop(t, Options{Tuning: tun})
	slow.StartGame()
	fast.StartGame()

	// Same wall time, twice the refresh rate.
	for i := 0; i < 60; i++ {
		slow.Step()
		fast.Step()
		fast.Step()
	}
	if fast.World().State.Score <= slow.World().State.Score*1.9 {
		t.Fatalf("fast score %v not about double slow %v", fast.World().State.Score, slow.World().State.Score)
	}
}

func TestResizeForwardsToSurface(t *testing.T) {
	surf := &countingSurface{}
	l := newTestLoop(t, Options{Surface: surf})
	state := l.World().State
	l.Resize(640, 480)
	l.Resize(0, 10)
	if surf.width != 640 || surf.height != 480 {
		t.Fatalf("surface size = %dx%d", surf.width, surf.height)
	}
	if l.World().State != state {
		t.Fatal("resize changed game state")
	}
}
