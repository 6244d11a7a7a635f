package ecs

import "github.com/milk9111/starfall/ecs/component"

// World owns entities, their components and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]storage
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]storage)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// false when e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, st := range w.stores {
		st.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if e, ok := w.entities.current(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) CreateEntity() Entity { return CreateEntity(w) }
func (w *World) DestroyEntity(e Entity) bool { return DestroyEntity(w, e) }
func (w *World) IsAlive(e Entity) bool { return IsAlive(w, e) }
func (w *World) Entities() []Entity { return Entities(w) }

// HasKind is the untyped form of Has.
func (w *World) HasKind(e Entity, k component.Kinder) bool {
	if w == nil || k == nil || !w.entities.isAlive(e) {
		return false
	}
	st, ok := w.stores[k.ID()]
	return ok && st.has(e.id())
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// First returns any live entity that carries k.
func (w *World) First(k component.Kinder) (Entity, bool) {
	if w == nil || k == nil {
		return 0, false
	}
	st, ok := w.stores[k.ID()]
	if !ok {
		return 0, false
	}
	for _, id := range st.ids() {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}
