package system

import (
	"testing"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

type fixedReader struct{ left, right, up bool }

func (r fixedReader) Directions() (bool, bool, bool) { return r.left, r.right, r.up }

func TestPlayerControllerMovement(t *testing.T) {
	cases := []struct {
		name     string
		input    fixedReader
		grounded bool
		wantVX   float64
		wantVY   float64
		wantAnim string
	}{
		{"idle", fixedReader{}, true, 0, 0, animTurn},
		{"left", fixedReader{left: true}, true, -260, 0, animLeft},
		{"right", fixedReader{right: true}, true, 260, 0, animRight},
		{"left_beats_right", fixedReader{left: true, right: true}, true, -260, 0, animLeft},
		{"jump_grounded", fixedReader{up: true}, true, 0, -330, animTurn},
		{"jump_airborne", fixedReader{up: true}, false, 0, 0, animTurn},
		{"run_and_jump", fixedReader{right: true, up: true}, true, 260, -330, animRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			newState(t, w)
			player := newTestPlayer(t, w, 100, 450)
			pc, _ := ecs.Get(w, player, component.PlayerCollisionComponent.Kind())
			pc.Grounded = c.grounded

			NewInputSystem(c.input).Update(w)
			NewPlayerControllerSystem().Update(w)

			body, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
			vx, vy := body.Velocity()
			if vx != c.wantVX || vy != c.wantVY {
				t.Fatalf("velocity = (%v, %v), want (%v, %v)", vx, vy, c.wantVX, c.wantVY)
			}
			anim, _ := ecs.Get(w, player, component.AnimationComponent.Kind())
			if anim.Current != c.wantAnim {
				t.Fatalf("animation = %q, want %q", anim.Current, c.wantAnim)
			}
		})
	}
}

func TestPlayerControllerUsesTuning(t *testing.T) {
	w := ecs.NewWorld()
	newState(t, w)
	player := newTestPlayer(t, w, 100, 450)
	tuning, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	tuning.MoveSpeed = 100

	NewInputSystem(fixedReader{right: true}).Update(w)
	NewPlayerControllerSystem().Update(w)

	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if vx, _ := body.Velocity(); vx != 100 {
		t.Fatalf("vx = %v, want 100", vx)
	}
}

func TestPlayerControllerIdleAfterGameOver(t *testing.T) {
	w := ecs.NewWorld()
	state := newState(t, w)
	player := newTestPlayer(t, w, 100, 450)
	pc, _ := ecs.Get(w, player, component.PlayerCollisionComponent.Kind())
	pc.Grounded = true
	gs, _ := ecs.Get(w, state, component.GameStateComponent.Kind())
	gs.Over = true

	NewInputSystem(fixedReader{right: true, up: true}).Update(w)
	NewPlayerControllerSystem().Update(w)

	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if vx, vy := body.Velocity(); vx != 0 || vy != 0 {
		t.Fatalf("velocity = (%v, %v), want unchanged zero", vx, vy)
	}
}

func TestInputSystemNilReader(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w, 0, 0)
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	input.Left, input.Up = true, true

	NewInputSystem(nil).Update(w)

	if input.Left || input.Right || input.Up {
		t.Fatalf("input = %+v, want nothing held", *input)
	}
}
