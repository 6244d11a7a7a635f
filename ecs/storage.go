package ecs

import "github.com/milk9111/starfall/ecs/component"

// storeFor returns the typed sparse set for kind, creating it on demand when
// create is set.
func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if st, ok := w.stores[kind.ID()]; ok {
		typed, _ := st.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]storage)
	}
	st := &sparseSet[T]{}
	w.stores[kind.ID()] = st
	return st
}

// entitiesOf resolves the live handles for every slot id in ids.
func (w *World) entitiesOf(ids []entityID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}
