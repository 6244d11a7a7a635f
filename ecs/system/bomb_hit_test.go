package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"golang.org/x/image/colornames"
)

func newTestBomb(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.BombComponent.Kind(), &component.Bomb{})
	mustAdd(t, w, e, component.ActiveComponent.Kind(), &component.Active{Enabled: true})
	return e
}

func TestHitBombEndsGame(t *testing.T) {
	w := ecs.NewWorld()
	state := newState(t, w)
	player := newTestPlayer(t, w, 100, 450)
	bomb := newTestBomb(t, w)
	sc, _ := ecs.Get(w, state, component.ScoreComponent.Kind())
	sc.Value = 40

	NewBombHitSystem(nil).HitBomb(w, player, bomb)

	if !GameOver(w) {
		t.Fatalf("game not over after hit")
	}
	ps, _ := ecs.Get(w, state, component.PhysicsStateComponent.Kind())
	if !ps.Paused {
		t.Fatalf("physics still running after hit")
	}
	if isActive(w, bomb) {
		t.Fatalf("bomb still active after hit")
	}
	tint, ok := ecs.Get(w, player, component.TintComponent.Kind())
	if !ok || !sameColor(tint.Color, colornames.Red) {
		t.Fatalf("player tint = %v, want red", tint)
	}
	anim, _ := ecs.Get(w, player, component.AnimationComponent.Kind())
	if anim.Current != animTurn {
		t.Fatalf("animation = %q, want %q", anim.Current, animTurn)
	}
	if got := scoreOf(w); got != 40 {
		t.Fatalf("score = %d, want 40", got)
	}
}

func TestHitBombOnlyOnce(t *testing.T) {
	w := ecs.NewWorld()
	newState(t, w)
	player := newTestPlayer(t, w, 100, 450)
	first := newTestBomb(t, w)
	second := newTestBomb(t, w)

	sys := NewBombHitSystem(nil)
	w.Events().PushCollision(ecs.CollisionEvent{Entity: player, Other: first, Kind: ecs.CollisionEventHitHazard})
	w.Events().PushCollision(ecs.CollisionEvent{Entity: player, Other: second, Kind: ecs.CollisionEventHitHazard})
	sys.Update(w)

	if !GameOver(w) {
		t.Fatalf("game not over")
	}
	if !isActive(w, second) {
		t.Fatalf("second bomb was also consumed")
	}
}

func TestGameOverIsPermanent(t *testing.T) {
	w := ecs.NewWorld()
	newState(t, w)
	player := newTestPlayer(t, w, 100, 450)
	NewBombHitSystem(nil).HitBomb(w, player, newTestBomb(t, w))

	sched := ecs.NewScheduler(
		NewInputSystem(fixedReader{right: true}),
		NewPlayerControllerSystem(),
		NewPhysicsSystem(),
		NewBombHitSystem(nil),
	)
	for i := 0; i < 30; i++ {
		sched.Update(w)
	}
	if !GameOver(w) {
		t.Fatalf("game over was cleared")
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != 100 || tr.Y != 450 {
		t.Fatalf("player moved to (%v, %v) while frozen", tr.X, tr.Y)
	}
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return false
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
