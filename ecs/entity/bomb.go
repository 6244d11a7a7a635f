package entity

import (
	"fmt"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

func NewBomb(w *ecs.World, x, y, vx, vy float64, opts BuildOptions) (ecs.Entity, error) {
	e, err := BuildEntityWith(w, "bomb.yaml", opts)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("bomb: set transform: %w", err)
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.SetVelocity(vx, vy)
	}
	return e, nil
}

// BombFactory binds opts so bombs can be spawned mid-game.
func BombFactory(opts BuildOptions) func(w *ecs.World, x, y, vx, vy float64) (ecs.Entity, error) {
	return func(w *ecs.World, x, y, vx, vy float64) (ecs.Entity, error) {
		return NewBomb(w, x, y, vx, vy, opts)
	}
}
