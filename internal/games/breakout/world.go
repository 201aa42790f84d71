package breakout

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"
)

// spatialCell is the side of a broadphase cell in field units.
const spatialCell = 20

// World is the session's entity registry. It maps identifiers to entities
// and keeps a spatial index so overlap queries only look at nearby bodies.
type World struct {
	nextID   EntityID
	entities map[EntityID]Entity
	objects  map[EntityID]*resolv.Object
	space    *resolv.Space
	bricks   int
}

// NewWorld creates an empty registry covering a field of the given size.
// The index extends past the field so escaping balls stay indexed.
func NewWorld(fieldWidth, fieldHeight float64) *World {
	cols := int(math.Ceil(fieldWidth/spatialCell)) + 2
	rows := int(math.Ceil(fieldHeight/spatialCell)) + 2
	return &World{
		nextID:   1,
		entities: make(map[EntityID]Entity),
		objects:  make(map[EntityID]*resolv.Object),
		space:    resolv.NewSpace(cols*spatialCell, rows*spatialCell, spatialCell, spatialCell),
	}
}

// NextID reserves a fresh entity identifier.
func (w *World) NextID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Add registers an entity. Adding an ID twice replaces the old entry.
func (w *World) Add(e Entity) {
	if _, ok := w.entities[e.ID()]; ok {
		w.Remove(e.ID())
	}
	w.entities[e.ID()] = e
	if e.Kind() == KindBrick {
		w.bricks++
	}

	x, y, width, height := indexBox(e)
	obj := resolv.NewObject(x, y, width, height, e.Kind().String())
	obj.Data = e.ID()
	w.space.Add(obj)
	w.objects[e.ID()] = obj
}

// Remove unregisters an entity. Unknown IDs are ignored.
func (w *World) Remove(id EntityID) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	if e.Kind() == KindBrick {
		w.bricks--
	}
	delete(w.entities, id)
	if obj, ok := w.objects[id]; ok {
		w.space.Remove(obj)
		delete(w.objects, id)
	}
}

// Lookup resolves an identifier.
func (w *World) Lookup(id EntityID) (Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Sync moves the index entry of an entity to its current bounds.
// Call it after the entity moved.
func (w *World) Sync(e Entity) {
	obj, ok := w.objects[e.ID()]
	if !ok {
		return
	}
	obj.X, obj.Y, obj.W, obj.H = indexBox(e)
	obj.Update()
}

// Overlapping returns the IDs of every other entity whose box overlaps the
// box of id, touching edges included, in creation order. Balls are never
// returned.
func (w *World) Overlapping(id EntityID) []EntityID {
	e, ok := w.entities[id]
	obj, indexed := w.objects[id]
	if !ok || !indexed {
		return nil
	}

	check := obj.Check(0, 0, KindPaddle.String(), KindBrick.String())
	if check == nil {
		return nil
	}

	box := e.Bounds()
	var ids []EntityID
	for _, other := range check.Objects {
		otherID, ok := other.Data.(EntityID)
		if !ok || otherID == id {
			continue
		}
		if candidate, ok := w.entities[otherID]; ok && box.Overlaps(candidate.Bounds()) {
			ids = append(ids, otherID)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// Resolve maps identifiers to entities, skipping unknown ones.
func (w *World) Resolve(ids []EntityID) []Entity {
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Bricks returns the number of live bricks.
func (w *World) Bricks() int {
	return w.bricks
}

// Len returns the number of registered entities.
func (w *World) Len() int {
	return len(w.entities)
}

// IDs returns every registered identifier in creation order.
func (w *World) IDs() []EntityID {
	ids := make([]EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// indexBox returns the broadphase rectangle of an entity. The ball probe is
// grown by a whole cell on every side so bodies that only touch it always
// share a cell with it; the exact test in Overlapping drops the extras.
func indexBox(e Entity) (x, y, w, h float64) {
	b := e.Bounds()
	pad := 0.0
	if e.Kind() == KindBall {
		pad = spatialCell
	}
	return b.Left - pad, b.Top - pad, b.Width() + 2*pad, b.Height() + 2*pad
}
