package entity

import (
	"fmt"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// NewStar places a star whose respawn point is x,y and whose restitution is
// bounce.
func NewStar(w *ecs.World, x, y, bounce float64, opts BuildOptions) (ecs.Entity, error) {
	e, err := BuildEntityWith(w, "star.yaml", opts)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("star: set transform: %w", err)
	}
	if star, ok := ecs.Get(w, e, component.StarComponent.Kind()); ok {
		star.OriginX = x
		star.OriginY = y
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Elasticity = bounce
	}
	return e, nil
}
