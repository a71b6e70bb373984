package spacerun

import "math"

// Snapshot is a compact, comparable view of the simulation used by
// determinism tests and the headless runner. Positions are stored in
// hundredths of a scene unit.
type Snapshot struct {
	Tick      uint64
	Score     int
	Health    int
	FireRate  int // Milliseconds
	Boosted   bool
	GameOver  bool
	TouchHeld bool

	// Each entity is 5 ints: Category, Kind, X, Y, Scale (hundredths)
	EntityCount int
	EntityData  []int

	PendingTimers int
	RNGState      uint64
	StarRNGState  uint64
}

func hundredths(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.loop.Snapshot()
	snap.Tick = uint64(g.tickCount) //#nosec G115 -- tick count is always positive
	return snap
}

// Snapshot returns the current simulation state. Tick is left at zero.
func (l *GameLoop) Snapshot() Snapshot {
	entities := l.registry.All()
	data := make([]int, 0, len(entities)*5)
	for _, e := range entities {
		data = append(data, int(e.Category), int(e.Kind), hundredths(e.Pos.X), hundredths(e.Pos.Y), hundredths(e.Scale))
	}

	_, held := l.Touch()
	return Snapshot{
		Score:         l.player.Score,
		Health:        l.player.Health,
		FireRate:      int(math.Round(l.player.FireRate * 1000)),
		Boosted:       l.player.Boosted(),
		GameOver:      l.gameOver,
		TouchHeld:     held,
		EntityCount:   len(entities),
		EntityData:    data,
		PendingTimers: l.timers.Len(),
		RNGState:      l.rng.State(),
		StarRNGState:  l.starRNG.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireRate) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Boosted)
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.TouchHeld)
	h = h*31 + uint64(snap.EntityCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingTimers) //#nosec G115 -- hash computation

	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	h = h*31 + snap.StarRNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
