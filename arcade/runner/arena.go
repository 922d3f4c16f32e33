package runner

// Placement selects the respawn range.
type Placement uint8

const (
	// PlaceInitial uses the short, dense range that populates a fresh run.
	PlaceInitial Placement = iota
	// PlaceInFlight uses the long, sparse range behind the pack.
	PlaceInFlight
)

// Respawn moves e to a new random x and a z drawn from the placement range.
// Y and size are kept.
func Respawn(e *Entity, p Placement, t Tuning, src Source) {
	e.Pos.X = src.Float64()*2*t.SpawnHalfWidth - t.SpawnHalfWidth
	if p == PlaceInitial {
		e.Pos.Z = -(src.Float64()*t.InitialSpan + t.InitialNear)
		return
	}
	e.Pos.Z = -t.FlightNear - src.Float64()*t.FlightSpan
}

// Arena is the fixed pool of obstacles and pads. Obstacles occupy the
// first indexes, pads follow. Entities are never added or removed after
// init; recycling only repositions them.
type Arena struct {
	entities  [MaxObstacles + MaxPads]Entity
	obstacles int
	pads      int
}

func (a *Arena) init(obstacles, pads int) {
	a.obstacles = obstacles
	a.pads = pads
	for i := 0; i < obstacles; i++ {
		a.entities[i] = Entity{Pos: Vec3{Y: obstacleY}, Size: ObstacleSize}
	}
	for i := obstacles; i < obstacles+pads; i++ {
		a.entities[i] = Entity{Pos: Vec3{Y: padY}, Size: PadSize}
	}
}

func (a *Arena) Len() int { return a.obstacles + a.pads }

// Obstacles returns the obstacle slots. The slice aliases the arena.
func (a *Arena) Obstacles() []Entity { return a.entities[:a.obstacles] }

// Pads returns the boost pad slots. The slice aliases the arena.
func (a *Arena) Pads() []Entity { return a.entities[a.obstacles : a.obstacles+a.pads] }

// At returns the entity at index i (obstacles first, then pads).
func (a *Arena) At(i int) *Entity {
	if i < 0 || i >= a.Len() {
		return nil
	}
	return &a.entities[i]
}

// IsPad reports whether index i is a boost pad slot.
func (a *Arena) IsPad(i int) bool {
	return i >= a.obstacles && i < a.Len()
}

// Recycle respawns the entity at index i.
func (a *Arena) Recycle(i int, p Placement, t Tuning, src Source) {
	e := a.At(i)
	if e == nil {
		return
	}
	Respawn(e, p, t, src)
}

func (a *Arena) placeAll(p Placement, t Tuning, src Source) {
	for i := 0; i < a.Len(); i++ {
		a.Recycle(i, p, t, src)
	}
}
