package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

const (
	defaultMoveSpeed = 260.0
	defaultJumpSpeed = 330.0

	animLeft  = "left"
	animRight = "right"
	animTurn  = "turn"
)

// PlayerControllerSystem turns held directions into player velocity and picks
// the matching animation. It does nothing once the game is over.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || GameOver(w) {
		return
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, input *component.Input) {
		moveSpeed, jumpSpeed := defaultMoveSpeed, defaultJumpSpeed
		if tuning, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			moveSpeed, jumpSpeed = tuning.MoveSpeed, tuning.JumpSpeed
		}

		bodyComp, hasBody := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

		switch {
		case input.Left:
			if hasBody {
				bodyComp.SetVelocityX(-moveSpeed)
			}
			anim.Play(animLeft, true)
		case input.Right:
			if hasBody {
				bodyComp.SetVelocityX(moveSpeed)
			}
			anim.Play(animRight, true)
		default:
			if hasBody {
				bodyComp.SetVelocityX(0)
			}
			anim.Play(animTurn, false)
		}

		if input.Up && hasBody && grounded(w, e) {
			bodyComp.SetVelocityY(-jumpSpeed)
		}
	})
}

func grounded(w *ecs.World, e ecs.Entity) bool {
	pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
	return ok && pc.Grounded
}

// GameOver reports whether the scene state entity has been flagged.
func GameOver(w *ecs.World) bool {
	ent, ok := w.First(component.GameStateComponent.Kind())
	if !ok {
		return false
	}
	st, ok := ecs.Get(w, ent, component.GameStateComponent.Kind())
	return ok && st.Over
}
