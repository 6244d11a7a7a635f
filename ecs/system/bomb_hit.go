package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"golang.org/x/image/colornames"
)

// BombHitSystem ends the game on the first player/bomb overlap.
type BombHitSystem struct {
	logger *log.Logger
}

func NewBombHitSystem(logger *log.Logger) *BombHitSystem {
	return &BombHitSystem{logger: orDiscard(logger)}
}

func (s *BombHitSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Collisions(ecs.CollisionEventHitHazard) {
		s.HitBomb(w, evt.Entity, evt.Other)
	}
}

// HitBomb removes the bomb, freezes the simulation, tints the player red and
// flags game over. Later hits are ignored.
func (s *BombHitSystem) HitBomb(w *ecs.World, player, bomb ecs.Entity) {
	if GameOver(w) {
		return
	}

	setActive(w, bomb, false)

	if ent, ok := w.First(component.PhysicsStateComponent.Kind()); ok {
		st, _ := ecs.Get(w, ent, component.PhysicsStateComponent.Kind())
		st.Paused = true
	}

	if tint, ok := ecs.Get(w, player, component.TintComponent.Kind()); ok {
		tint.Color = colornames.Red
	} else {
		_ = ecs.Add(w, player, component.TintComponent.Kind(), &component.Tint{Color: colornames.Red})
	}
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		anim.Play(animTurn, false)
	}

	if ent, ok := w.First(component.GameStateComponent.Kind()); ok {
		st, _ := ecs.Get(w, ent, component.GameStateComponent.Kind())
		st.Over = true
	}
	requestSound(w, "explode")

	score := 0
	if ent, ok := w.First(component.ScoreComponent.Kind()); ok {
		sc, _ := ecs.Get(w, ent, component.ScoreComponent.Kind())
		score = sc.Value
	}
	s.logger.Info("player hit by bomb", "bomb", bomb, "score", score)
}
