package entity

import (
	"fmt"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// NewSceneState creates the entity carrying score, game-over flag, physics
// pause switch and playfield bounds.
func NewSceneState(w *ecs.World, width, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{}); err != nil {
		return 0, fmt.Errorf("scene state: add score: %w", err)
	}
	if err := ecs.Add(w, e, component.GameStateComponent.Kind(), &component.GameState{}); err != nil {
		return 0, fmt.Errorf("scene state: add game state: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsStateComponent.Kind(), &component.PhysicsState{}); err != nil {
		return 0, fmt.Errorf("scene state: add physics state: %w", err)
	}
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("scene state: add bounds: %w", err)
	}
	return e, nil
}

func NewSky(w *ecs.World, x, y float64, opts BuildOptions) (ecs.Entity, error) {
	e, err := BuildEntityWith(w, "sky.yaml", opts)
	if err != nil {
		return 0, err
	}
	return e, SetEntityTransform(w, e, x, y)
}

// NewPlatform places a static platform. A scale other than 1 enlarges the
// sprite and refreshes the collider to the scaled size.
func NewPlatform(w *ecs.World, x, y, scale float64, opts BuildOptions) (ecs.Entity, error) {
	e, err := BuildEntityWith(w, "platform.yaml", opts)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("platform: set transform: %w", err)
	}
	if scale == 0 || scale == 1 {
		return e, nil
	}
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	t.ScaleX, t.ScaleY = scale, scale
	if err := RefreshBody(w, e); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

// RefreshBody resizes e's collider to its sprite frame times its current scale
// and drops the built shape so the physics system recreates it.
func RefreshBody(w *ecs.World, e ecs.Entity) error {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return fmt.Errorf("refresh body: entity %v has no physics body", e)
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("refresh body: entity %v has no transform", e)
	}
	fw, fh, ok := spriteFrameSize(w, e)
	if !ok {
		return fmt.Errorf("refresh body: entity %v has no sized sprite", e)
	}
	sx, sy := t.Scale()
	body.Width = fw * sx
	body.Height = fh * sy
	body.Body = nil
	body.Shape = nil
	return nil
}

func spriteFrameSize(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || sprite.Width <= 0 || sprite.Height <= 0 {
		return 0, 0, false
	}
	return sprite.Width, sprite.Height, true
}
