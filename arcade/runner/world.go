package runner

const (
	MaxObstacles = 16
	MaxPads      = 8
)

// Vec3 is a position or extent in world units.
type Vec3 struct {
	X, Y, Z float64
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec3
}

// Intersects reports whether the boxes overlap. Touching faces count.
func (b Box) Intersects(o Box) bool {
	return !(o.Max.X < b.Min.X || o.Min.X > b.Max.X ||
		o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y ||
		o.Max.Z < b.Min.Z || o.Min.Z > b.Max.Z)
}

// Entity is a positioned box. Pos is the box center.
type Entity struct {
	Pos  Vec3
	Size Vec3
}

func (e Entity) Box() Box {
	h := Vec3{X: e.Size.X / 2, Y: e.Size.Y / 2, Z: e.Size.Z / 2}
	return Box{
		Min: Vec3{X: e.Pos.X - h.X, Y: e.Pos.Y - h.Y, Z: e.Pos.Z - h.Z},
		Max: Vec3{X: e.Pos.X + h.X, Y: e.Pos.Y + h.Y, Z: e.Pos.Z + h.Z},
	}
}

var (
	PlayerSize   = Vec3{X: 0.5, Y: 1, Z: 0.5}
	ObstacleSize = Vec3{X: 0.5, Y: 1, Z: 0.5}
	PadSize      = Vec3{X: 1, Y: 0.1, Z: 1}
)

const (
	playerY   = 0.5
	obstacleY = 0.5
	padY      = 0.05
)

// Mode is the game mode.
type Mode uint8

const (
	ModeHome Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

type GameState struct {
	Mode       Mode
	Score      float64
	Speed      float64 // base speed, without boosts
	BoostTimer int     // frames of pad boost left
}

// World is everything the loop mutates.
type World struct {
	State  GameState
	Player Entity
	Arena  Arena
	FloorZ float64
	Latch  Latch
}

func newWorld(t Tuning, src Source) *World {
	w := &World{
		State:  GameState{Mode: ModeHome, Speed: t.InitialSpeed},
		Player: Entity{Pos: Vec3{Y: playerY}, Size: PlayerSize},
		FloorZ: t.FloorStart,
	}
	w.Arena.init(t.Obstacles, t.Pads)
	w.Arena.placeAll(PlaceInitial, t, src)
	return w
}
