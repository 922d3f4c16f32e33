package runner

import (
	"errors"
	"fmt"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every per-frame constant of the runner.
//
// All speeds and steps are per Step call, not per second.
type Tuning struct {
	InitialSpeed     float64
	ManualBoostDelta float64 // added while the boost key is held
	PadBoostDelta    float64 // added while BoostTimer > 0
	PadBoostFrames   int

	// Acceleration is added to the base speed every playing frame. The
	// speed is never capped; long runs keep getting faster.
	Acceleration    float64
	ScoreMultiplier float64

	StrafeStep  float64
	PlayerLimit float64 // player x stays in [-PlayerLimit, PlayerLimit]

	Obstacles int
	Pads      int

	SpawnHalfWidth float64 // respawned x is in [-SpawnHalfWidth, SpawnHalfWidth)

	// Initial placement: z = -(r*InitialSpan + InitialNear).
	InitialNear float64
	InitialSpan float64
	// In-flight placement: z = -(FlightNear + r*FlightSpan).
	FlightNear float64
	FlightSpan float64

	ViewerZ        float64
	RecycleEpsilon float64

	FloorStart float64
	FloorWrap  float64 // floor wraps once z > ViewerZ + FloorWrap
}

func DefaultTuning() Tuning {
	return Tuning{
		InitialSpeed:     0.15,
		ManualBoostDelta: 0.1,
		PadBoostDelta:    0.15,
		PadBoostFrames:   120,
		Acceleration:     0.00002,
		ScoreMultiplier:  2,
		StrafeStep:       0.15,
		PlayerLimit:      3,
		Obstacles:        10,
		Pads:             5,
		SpawnHalfWidth:   2,
		InitialNear:      20,
		InitialSpan:      100,
		FlightNear:       100,
		FlightSpan:       50,
		ViewerZ:          5,
		RecycleEpsilon:   1,
		FloorStart:       -190,
		FloorWrap:        200,
	}
}

// FarThreshold is the distance behind the viewer that every in-flight
// respawn is guaranteed to exceed.
func (t Tuning) FarThreshold() float64 {
	return t.FlightNear
}

func (t Tuning) Validate() error {
	switch {
	case t.Obstacles < 0 || t.Obstacles > MaxObstacles:
		return fmt.Errorf("%w: obstacles %d not in [0, %d]", ErrInvalidTuning, t.Obstacles, MaxObstacles)
	case t.Pads < 0 || t.Pads > MaxPads:
		return fmt.Errorf("%w: pads %d not in [0, %d]", ErrInvalidTuning, t.Pads, MaxPads)
	case t.PlayerLimit <= 0:
		return fmt.Errorf("%w: player limit %v", ErrInvalidTuning, t.PlayerLimit)
	case t.InitialSpeed < 0 || t.Acceleration < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidTuning)
	case t.InitialSpan < 0 || t.FlightSpan < 0 || t.SpawnHalfWidth < 0:
		return fmt.Errorf("%w: negative spawn range", ErrInvalidTuning)
	case t.ViewerZ <= 0 || t.FlightNear <= 0:
		return fmt.Errorf("%w: viewer z %v and in-flight near %v must be positive", ErrInvalidTuning, t.ViewerZ, t.FlightNear)
	case t.PadBoostFrames < 0:
		return fmt.Errorf("%w: pad boost frames %d", ErrInvalidTuning, t.PadBoostFrames)
	}
	return nil
}
