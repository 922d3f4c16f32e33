package runner

import "fmt"

// Transition describes a mode change.
type Transition struct {
	From  Mode
	To    Mode
	Score float64
	Frame uint64
}

// Options configures a Loop. Zero-valued collaborators are replaced with
// no-ops; a nil Source uses NewXorShift(Seed).
type Options struct {
	Tuning  Tuning
	Source  Source
	Seed    uint64
	Display DisplaySink
	Surface Surface

	OnTransition func(Transition)
}

// Loop is the per-frame driver of a runner World.
//
// It is not safe for concurrent use: key handlers and Step must be called
// from the same goroutine.
type Loop struct {
	tuning  Tuning
	src     Source
	display DisplaySink
	surface Surface
	onTrans func(Transition)

	world *World
	frame uint64

	hitIndex int
	pickups  int
}

func New(opts Options) (*Loop, error) {
	if opts.Tuning == (Tuning{}) {
		opts.Tuning = DefaultTuning()
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	if opts.Source == nil {
		opts.Source = NewXorShift(opts.Seed)
	}
	if opts.Display == nil {
		opts.Display = nopSink{}
	}
	if opts.Surface == nil {
		opts.Surface = nopSurface{}
	}

	l := &Loop{
		tuning:   opts.Tuning,
		src:      opts.Source,
		display:  opts.Display,
		surface:  opts.Surface,
		onTrans:  opts.OnTransition,
		hitIndex: -1,
	}
	l.world = newWorld(l.tuning, l.src)
	l.display.SetText(Text(l.world.State))
	l.surface.Sync(l.world)
	return l, nil
}

func (l *Loop) World() *World  { return l.world }
func (l *Loop) Tuning() Tuning { return l.tuning }
func (l *Loop) Frame() uint64  { return l.frame }
func (l *Loop) Pickups() int   { return l.pickups }
func (l *Loop) Mode() Mode     { return l.world.State.Mode }

// HitIndex is the obstacle index that ended the last run, or -1.
func (l *Loop) HitIndex() int { return l.hitIndex }

// OnKeyDown latches k. Confirm starts a run from Home or GameOver.
func (l *Loop) OnKeyDown(k Key) {
	if l.world.Latch.set(k, true) {
		return
	}
	if k == KeyEnter && l.world.State.Mode != ModePlaying {
		l.StartGame()
	}
}

// OnKeyUp releases k.
func (l *Loop) OnKeyUp(k Key) {
	l.world.Latch.set(k, false)
}

// StartGame resets the run and enters Playing. Latch flags are kept.
func (l *Loop) StartGame() {
	w := l.world
	w.State.Score = 0
	w.State.Speed = l.tuning.InitialSpeed
	w.State.BoostTimer = 0
	w.Player.Pos.X = 0
	w.FloorZ = l.tuning.FloorStart
	w.Arena.placeAll(PlaceInitial, l.tuning, l.src)
	l.hitIndex = -1
	l.pickups = 0
	l.setMode(ModePlaying)
	l.display.SetText("")
	l.surface.Sync(w)
}

// CurrentSpeed is the forward speed the next Step will apply.
func (l *Loop) CurrentSpeed() float64 {
	s := l.world.State
	v := s.Speed
	if l.world.Latch.Boost {
		v += l.tuning.ManualBoostDelta
	}
	if s.BoostTimer > 0 {
		v += l.tuning.PadBoostDelta
	}
	return v
}

// Step advances one frame. Outside Playing the world is left untouched.
func (l *Loop) Step() {
	w := l.world
	l.frame++
	if w.State.Mode != ModePlaying {
		l.surface.Sync(w)
		return
	}
	t := l.tuning

	speed := l.CurrentSpeed()
	if w.State.BoostTimer > 0 {
		w.State.BoostTimer--
	}

	limit := t.ViewerZ + t.RecycleEpsilon
	for i := 0; i < w.Arena.Len(); i++ {
		e := w.Arena.At(i)
		e.Pos.Z += speed
		if e.Pos.Z > limit {
			w.Arena.Recycle(i, PlaceInFlight, t, l.src)
		}
	}

	w.FloorZ += speed
	if w.FloorZ > t.ViewerZ+t.FloorWrap {
		w.FloorZ = t.FloorStart
	}

	if w.Latch.Left {
		w.Player.Pos.X = max(-t.PlayerLimit, w.Player.Pos.X-t.StrafeStep)
	}
	if w.Latch.Right {
		w.Player.Pos.X = min(t.PlayerLimit, w.Player.Pos.X+t.StrafeStep)
	}

	w.State.Score += speed * t.ScoreMultiplier
	w.State.Speed += t.Acceleration

	l.checkCollisions()

	l.display.SetText(Text(w.State))
	l.surface.Sync(w)
}

// Resize forwards a viewport change to the surface. Game state is not
// affected.
func (l *Loop) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.surface.Resize(width, height)
}

func (l *Loop) setMode(m Mode) {
	from := l.world.State.Mode
	l.world.State.Mode = m
	if l.onTrans != nil && from != m {
		l.onTrans(Transition{From: from, To: m, Score: l.world.State.Score, Frame: l.frame})
	}
}
