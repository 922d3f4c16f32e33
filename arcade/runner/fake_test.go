package runner

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

type textSink struct {
	texts []string
}

func (s *textSink) SetText(v string) { s.texts = append(s.texts, v) }

func (s *textSink) last() string {
	if len(s.texts) == 0 {
		return ""
	}
	return s.texts[len(s.texts)-1]
}

type countingSurface struct {
	syncs  int
	width  int
	height int
}

func (c *countingSurface) Sync(*World) { c.syncs++ }

func (c *countingSurface) Resize(w, h int) {
	c.width = w
	c.height = h
}

func newTestLoop(t interface{ Fatalf(string, ...any) }, opts Options) *Loop {
	if opts.Source == nil {
		opts.Source = NewXorShift(42)
	}
	l, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

// clearTrack parks every arena entity far away from the player.
func clearTrack(l *Loop) {
	for i := 0; i < l.world.Arena.Len(); i++ {
		e := l.world.Arena.At(i)
		e.Pos.X = 100
		e.Pos.Z = -50
	}
}
