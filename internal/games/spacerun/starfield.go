package spacerun

import (
	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
)

// Starfield launches cosmetic stars from the top of the scene.
type Starfield struct {
	rng    Source
	cfg    config.StarfieldConfig
	width  float64
	height float64
}

// NewStarfield creates a starfield for a scene of the given size.
func NewStarfield(rng Source, cfg config.StarfieldConfig, width, height float64) *Starfield {
	return &Starfield{rng: rng, cfg: cfg, width: width, height: height}
}

// Launch makes one launch attempt at time now.
// Dimmer stars are smaller and fall more slowly.
func (f *Starfield) Launch(now float64) (Entity, bool) {
	if f.rng.Intn(100) >= f.cfg.Chance {
		return Entity{}, false
	}
	x := float64(f.rng.Intn(int(f.width)))
	alpha := 0.1 + float64(f.rng.Intn(10))/10
	size := core.V(3-alpha, 8-alpha)
	start := core.V(x, f.height)
	end := start.Add(core.V(0, -f.height-size.Y))
	return Entity{
		Category:  CategoryStar,
		Pos:       start,
		Size:      size,
		Alpha:     alpha,
		Motion:    Linear(start, end, now, 1.8-alpha),
		SpawnedAt: now,
	}, true
}
