package spacerun

import "github.com/vovakirdan/spacerun/internal/core"

// Category partitions entities for collision scans.
type Category int

const (
	CategoryShip Category = iota
	CategoryObstacle
	CategoryProjectile
	CategoryWeaponPowerUp
	CategoryHealthPowerUp
	CategoryStar
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case CategoryShip:
		return "ship"
	case CategoryObstacle:
		return "obstacle"
	case CategoryProjectile:
		return "projectile"
	case CategoryWeaponPowerUp:
		return "weapons-powerup"
	case CategoryHealthPowerUp:
		return "health-powerup"
	case CategoryStar:
		return "star"
	default:
		return "unknown"
	}
}

// Kind refines the obstacle category.
type Kind int

const (
	KindNone Kind = iota
	KindAsteroid
	KindEnemy
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindEnemy:
		return "enemy"
	default:
		return ""
	}
}

// EntityID identifies an entity for its whole lifetime. IDs are never reused
// within one game.
type EntityID uint64

// Entity is any spawned game object.
type Entity struct {
	ID        EntityID
	Category  Category
	Kind      Kind
	Pos       core.Vec // Centre in scene units
	Size      core.Vec // Unscaled width and height
	Scale     float64
	Angle     float64 // Radians
	Alpha     float64 // Stars only
	Motion    *Motion // nil for the ship
	SpawnedAt float64
	Removed   bool
}

// Bounds returns the scaled footprint used for intersection tests.
func (e *Entity) Bounds() core.Box {
	return core.BoxAround(e.Pos, e.Size.X*e.Scale, e.Size.Y*e.Scale)
}

// Overlaps reports whether two entities' footprints intersect.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.Bounds().Intersects(o.Bounds())
}

// Registry owns the live entities of one game.
// Removal is two-phase: MarkRemoved flags an entity so in-progress scans skip
// it, and Sweep deletes everything flagged.
type Registry struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	order    []EntityID // Spawn order, for deterministic iteration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[EntityID]*Entity),
		order:    make([]EntityID, 0, 64),
	}
}

// Spawn stores a copy of e under a fresh ID and returns the stored entity.
// A zero Scale is treated as 1.
func (r *Registry) Spawn(e Entity) *Entity {
	r.nextID++
	e.ID = r.nextID
	e.Removed = false
	if e.Scale == 0 {
		e.Scale = 1
	}
	stored := &e
	r.entities[e.ID] = stored
	r.order = append(r.order, e.ID)
	return stored
}

// Get returns a live entity. Entities marked for removal are not returned.
func (r *Registry) Get(id EntityID) (*Entity, bool) {
	e, ok := r.entities[id]
	if !ok || e.Removed {
		return nil, false
	}
	return e, true
}

// ByCategory returns a snapshot of the live entities of one category in
// spawn order. Later spawns and removals do not change the returned slice.
func (r *Registry) ByCategory(c Category) []*Entity {
	var out []*Entity
	for _, id := range r.order {
		e := r.entities[id]
		if !e.Removed && e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// All returns a snapshot of every live entity in spawn order.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, 0, len(r.order))
	for _, id := range r.order {
		if e := r.entities[id]; !e.Removed {
			out = append(out, e)
		}
	}
	return out
}

// MarkRemoved flags an entity for removal. It returns false if the entity is
// unknown or already flagged, so a second removal in the same frame is a no-op.
func (r *Registry) MarkRemoved(id EntityID) bool {
	e, ok := r.entities[id]
	if !ok || e.Removed {
		return false
	}
	e.Removed = true
	return true
}

// Sweep deletes all flagged entities and returns their IDs in spawn order.
func (r *Registry) Sweep() []EntityID {
	var removed []EntityID
	kept := r.order[:0]
	for _, id := range r.order {
		if r.entities[id].Removed {
			removed = append(removed, id)
			delete(r.entities, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return removed
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	n := 0
	for _, e := range r.entities {
		if !e.Removed {
			n++
		}
	}
	return n
}

// Count returns the number of live entities in one category.
func (r *Registry) Count(c Category) int {
	n := 0
	for _, e := range r.entities {
		if !e.Removed && e.Category == c {
			n++
		}
	}
	return n
}

// Clear drops every entity. IDs keep increasing.
func (r *Registry) Clear() {
	r.entities = make(map[EntityID]*Entity)
	r.order = r.order[:0]
}
