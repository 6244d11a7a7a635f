package system

import (
	"testing"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

func newBoundedWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	state := newState(t, w)
	mustAdd(t, w, state, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 800, Height: 600})
	return w
}

func stepN(ps *PhysicsSystem, w *ecs.World, n int) {
	for i := 0; i < n; i++ {
		w.Events().Flush()
		ps.Update(w)
	}
}

func TestPhysicsPlayerLandsOnPlatform(t *testing.T) {
	w := newBoundedWorld(t)
	newTestPlatform(t, w, 400, 568, 800, 64)
	player := newTestPlayer(t, w, 400, 500)

	ps := NewPhysicsSystem()
	stepN(ps, w, 120)

	pc, _ := ecs.Get(w, player, component.PlayerCollisionComponent.Kind())
	if !pc.Grounded {
		t.Fatalf("player not grounded after landing")
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	// platform top is 536, player half height 24
	if tr.Y < 505 || tr.Y > 515 {
		t.Fatalf("player y = %v, want resting near 512", tr.Y)
	}
}

func TestPhysicsAirborneIsNotGrounded(t *testing.T) {
	w := newBoundedWorld(t)
	newTestPlatform(t, w, 400, 568, 800, 64)
	player := newTestPlayer(t, w, 400, 100)

	ps := NewPhysicsSystem()
	stepN(ps, w, 5)

	pc, _ := ecs.Get(w, player, component.PlayerCollisionComponent.Kind())
	if pc.Grounded {
		t.Fatalf("falling player reported grounded")
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.Y <= 100 {
		t.Fatalf("player did not fall: y = %v", tr.Y)
	}
}

func TestPhysicsOverlapEvents(t *testing.T) {
	cases := []struct {
		name   string
		active bool
		want   int
	}{
		{"active_star", true, 1},
		{"hidden_star", false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newBoundedWorld(t)
			player := newTestPlayer(t, w, 300, 300)
			star := newTestStar(t, w, 300, 300)
			a, _ := ecs.Get(w, star, component.ActiveComponent.Kind())
			a.Enabled = c.active

			NewPhysicsSystem().Update(w)

			events := w.Events().Collisions(ecs.CollisionEventCollect)
			if len(events) != c.want {
				t.Fatalf("collect events = %d, want %d", len(events), c.want)
			}
			if c.want > 0 && (events[0].Entity != player || events[0].Other != star) {
				t.Fatalf("event = %+v, want player %v / star %v", events[0], player, star)
			}
		})
	}
}

func TestPhysicsBombOverlapRaisesHazard(t *testing.T) {
	w := newBoundedWorld(t)
	player := newTestPlayer(t, w, 300, 300)
	bomb := newTestBomb(t, w)
	mustAdd(t, w, bomb, component.TransformComponent.Kind(), &component.Transform{X: 300, Y: 300})
	mustAdd(t, w, bomb, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 7, Elasticity: 1, CollideWorldBounds: true})
	mustAdd(t, w, bomb, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.CollisionCategoryBomb,
		Mask:     component.CollisionCategoryPlatform | component.CollisionCategoryBounds | component.CollisionCategoryPlayer,
	})

	NewPhysicsSystem().Update(w)

	events := w.Events().Collisions(ecs.CollisionEventHitHazard)
	if len(events) != 1 || events[0].Entity != player || events[0].Other != bomb {
		t.Fatalf("hazard events = %+v, want one player/bomb event", events)
	}
}

func TestPhysicsPausedFreezesBodies(t *testing.T) {
	w := newBoundedWorld(t)
	player := newTestPlayer(t, w, 400, 100)
	state, _ := w.First(component.PhysicsStateComponent.Kind())
	ps, _ := ecs.Get(w, state, component.PhysicsStateComponent.Kind())
	ps.Paused = true

	stepN(NewPhysicsSystem(), w, 30)

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.Y != 100 {
		t.Fatalf("player y = %v, want 100 while paused", tr.Y)
	}
}

func TestPhysicsRespawnedStarReentersAtOrigin(t *testing.T) {
	w := newBoundedWorld(t)
	newTestPlatform(t, w, 400, 568, 800, 64)
	star := newTestStar(t, w, 82, 0)

	ps := NewPhysicsSystem()
	stepN(ps, w, 60)

	a, _ := ecs.Get(w, star, component.ActiveComponent.Kind())
	a.Enabled = false
	stepN(ps, w, 1)

	tr, _ := ecs.Get(w, star, component.TransformComponent.Kind())
	body, _ := ecs.Get(w, star, component.PhysicsBodyComponent.Kind())
	tr.X, tr.Y = 82, 0
	body.Teleport(82, 0, 0, 0)
	a.Enabled = true
	stepN(ps, w, 1)

	if tr.Y > 5 {
		t.Fatalf("respawned star y = %v, want near 0", tr.Y)
	}
	if tr.X != 82 {
		t.Fatalf("respawned star x = %v, want 82", tr.X)
	}
}
