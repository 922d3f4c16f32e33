package runner

// checkCollisions tests the player against obstacles, then pads.
//
// Obstacles are tested in arena order and the first hit ends the run.
// Pads are only tested while the run is still going; every overlapping
// pad grants the boost and is recycled.
func (l *Loop) checkCollisions() {
	w := l.world
	pb := w.Player.Box()

	for i, o := range w.Arena.Obstacles() {
		if pb.Intersects(o.Box()) {
			l.hitIndex = i
			l.setMode(ModeGameOver)
			return
		}
	}

	base := w.Arena.obstacles
	for i, p := range w.Arena.Pads() {
		if !pb.Intersects(p.Box()) {
			continue
		}
		w.State.BoostTimer = l.tuning.PadBoostFrames
		w.Arena.Recycle(base+i, PlaceInFlight, l.tuning, l.src)
		l.pickups++
	}
}
