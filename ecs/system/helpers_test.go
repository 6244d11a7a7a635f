package system

import (
	"testing"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func testAnimation() *component.Animation {
	return &component.Animation{
		Defs: map[string]component.AnimationDef{
			animLeft:  {Name: animLeft, ColStart: 0, FrameCount: 4, FrameW: 32, FrameH: 48, FPS: 10, Loop: true},
			animTurn:  {Name: animTurn, ColStart: 4, FrameCount: 1, FrameW: 32, FrameH: 48, FPS: 20},
			animRight: {Name: animRight, ColStart: 5, FrameCount: 4, FrameW: 32, FrameH: 48, FPS: 10, Loop: true},
		},
	}
}

// newState adds the scene-wide score, game and physics state entity.
func newState(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.ScoreComponent.Kind(), &component.Score{})
	mustAdd(t, w, e, component.GameStateComponent.Kind(), &component.GameState{})
	mustAdd(t, w, e, component.PhysicsStateComponent.Kind(), &component.PhysicsState{})
	return e
}

func newTestPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 260, JumpSpeed: 330})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), testAnimation())
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:              32,
		Height:             48,
		Elasticity:         0.2,
		CollideWorldBounds: true,
	})
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.CollisionCategoryPlayer,
		Mask:     component.CollisionCategoryPlatform | component.CollisionCategoryStar | component.CollisionCategoryBomb | component.CollisionCategoryBounds,
	})
	return e
}

func newTestStar(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.StarComponent.Kind(), &component.Star{OriginX: x, OriginY: y, Points: 10})
	mustAdd(t, w, e, component.ActiveComponent.Kind(), &component.Active{Enabled: true})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 24, Height: 22, Elasticity: 0.5, Friction: 1})
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.CollisionCategoryStar,
		Mask:     component.CollisionCategoryPlatform | component.CollisionCategoryPlayer,
	})
	return e
}

func newTestPlatform(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Static: true, Friction: 1})
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.CollisionCategoryPlatform,
		Mask:     ^uint32(0),
	})
	return e
}

func newScoreText(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.ScoreTextTagComponent.Kind(), &component.ScoreTextTag{})
	mustAdd(t, w, e, component.TextComponent.Kind(), &component.Text{Value: "score: 0"})
	return e
}

func scoreOf(w *ecs.World) int {
	e, ok := w.First(component.ScoreComponent.Kind())
	if !ok {
		return 0
	}
	s, _ := ecs.Get(w, e, component.ScoreComponent.Kind())
	return s.Value
}
