package ecs

import "github.com/milk9111/starfall/ecs/component"

// Query returns the live entities carrying every kind. The smallest store
// drives the iteration.
func (w *World) Query(kinds ...component.Kinder) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]storage, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		st, ok := w.stores[k.ID()]
		if !ok || st.len() == 0 {
			return nil
		}
		sets = append(sets, st)
	}
	driver := 0
	for i, st := range sets {
		if st.len() < sets[driver].len() {
			driver = i
		}
	}

	ids := make([]entityID, 0, sets[driver].len())
	for _, id := range sets[driver].ids() {
		match := true
		for i, st := range sets {
			if i != driver && !st.has(id) {
				match = false
				break
			}
		}
		if match {
			ids = append(ids, id)
		}
	}
	return w.entitiesOf(ids)
}

// ForEach calls fn for every entity carrying a. The id list is copied first so
// fn may add, remove or destroy freely.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(a) {
		av, ok := Get(w, e, a)
		if !ok {
			continue
		}
		fn(e, av)
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(a, b) {
		av, okA := Get(w, e, a)
		bv, okB := Get(w, e, b)
		if !okA || !okB {
			continue
		}
		fn(e, av, bv)
	}
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(a, b, c) {
		av, okA := Get(w, e, a)
		bv, okB := Get(w, e, b)
		cv, okC := Get(w, e, c)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, av, bv, cv)
	}
}

func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(a, b, c, d) {
		av, okA := Get(w, e, a)
		bv, okB := Get(w, e, b)
		cv, okC := Get(w, e, c)
		dv, okD := Get(w, e, d)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, av, bv, cv, dv)
	}
}
