package entity

import (
	"testing"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

var headless = BuildOptions{SkipMedia: true}

func TestBuildPrefabs(t *testing.T) {
	cases := []struct {
		prefab string
		check  func(t *testing.T, w *ecs.World, e ecs.Entity)
	}{
		{"player.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) || !ecs.Has(w, e, component.InputComponent.Kind()) {
				t.Fatalf("player is missing tag or input")
			}
			p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
			if p.MoveSpeed != 260 || p.JumpSpeed != 330 {
				t.Fatalf("tuning = %+v, want 260/330", *p)
			}
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if body.Width != 32 || body.Height != 48 || !body.CollideWorldBounds {
				t.Fatalf("body = %+v", *body)
			}
			anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
			if anim.Current != "turn" || len(anim.Defs) != 3 {
				t.Fatalf("animation current=%q defs=%d", anim.Current, len(anim.Defs))
			}
			sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			if !sprite.UseSource || sprite.Source.Dx() != 32 || sprite.Source.Min.X != 4*32 {
				t.Fatalf("sprite source = %v, want turn frame", sprite.Source)
			}
		}},
		{"star.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			s, _ := ecs.Get(w, e, component.StarComponent.Kind())
			if s.Points != 10 {
				t.Fatalf("points = %d, want 10", s.Points)
			}
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if body.Width <= 0 || body.Height <= 0 || body.CollideWorldBounds {
				t.Fatalf("star body = %+v", *body)
			}
			layer, _ := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
			if layer.Mask&component.CollisionCategoryBomb != 0 {
				t.Fatalf("star collides with bombs")
			}
		}},
		{"bomb.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if body.Elasticity != 1 || !body.CollideWorldBounds {
				t.Fatalf("bomb body = %+v", *body)
			}
			layer, _ := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
			if layer.Mask&component.CollisionCategoryStar != 0 {
				t.Fatalf("bomb collides with stars")
			}
		}},
		{"platform.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !body.Static {
				t.Fatalf("platform is not static")
			}
		}},
		{"sfx.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
			if len(a.Names) != 2 || a.Names[0] != "collect" || a.Names[1] != "explode" {
				t.Fatalf("clips = %v", a.Names)
			}
			if a.Players[0] != nil {
				t.Fatalf("headless build loaded an audio player")
			}
		}},
		{"score_text.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			txt, _ := ecs.Get(w, e, component.TextComponent.Kind())
			if txt.Value != "score: 0" || txt.Face == nil {
				t.Fatalf("text = %+v", *txt)
			}
		}},
	}

	for _, c := range cases {
		t.Run(c.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildEntityWith(w, c.prefab, headless)
			if err != nil {
				t.Fatalf("BuildEntityWith(%s): %v", c.prefab, err)
			}
			c.check(t, w, e)
		})
	}
}

func TestBuildUnknownPrefab(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildEntityWith(w, "missing.yaml", headless); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
	if n := len(w.Entities()); n != 0 {
		t.Fatalf("failed build left %d entities", n)
	}
}

func TestNewPlatformScaled(t *testing.T) {
	w := ecs.NewWorld()
	plain, err := NewPlatform(w, 600, 400, 1, headless)
	if err != nil {
		t.Fatal(err)
	}
	big, err := NewPlatform(w, 400, 568, 2, headless)
	if err != nil {
		t.Fatal(err)
	}

	pb, _ := ecs.Get(w, plain, component.PhysicsBodyComponent.Kind())
	bb, _ := ecs.Get(w, big, component.PhysicsBodyComponent.Kind())
	if bb.Width != 2*pb.Width || bb.Height != 2*pb.Height {
		t.Fatalf("scaled collider %vx%v, want twice %vx%v", bb.Width, bb.Height, pb.Width, pb.Height)
	}
	tr, _ := ecs.Get(w, big, component.TransformComponent.Kind())
	if tr.X != 400 || tr.Y != 568 || tr.ScaleX != 2 {
		t.Fatalf("transform = %+v", *tr)
	}
}

func TestNewStarKeepsOriginAndBounce(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewStar(w, 152, 0, 0.63, headless)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := ecs.Get(w, e, component.StarComponent.Kind())
	if s.OriginX != 152 || s.OriginY != 0 {
		t.Fatalf("origin = (%v, %v)", s.OriginX, s.OriginY)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if body.Elasticity != 0.63 {
		t.Fatalf("bounce = %v, want 0.63", body.Elasticity)
	}
}

func TestNewBombSeedsVelocity(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewBomb(w, 500, 16, -120, 20, headless)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if vx, vy := body.Velocity(); vx != -120 || vy != 20 {
		t.Fatalf("velocity = (%v, %v), want (-120, 20)", vx, vy)
	}
}

func TestReloadPlayerTuning(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, 100, 450, headless)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	p.MoveSpeed, p.JumpSpeed = 1, 1

	got, err := ReloadPlayerTuning(w)
	if err != nil {
		t.Fatal(err)
	}
	if got.MoveSpeed != 260 || p.MoveSpeed != 260 || p.JumpSpeed != 330 {
		t.Fatalf("tuning after reload = %+v", *p)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"black", false},
		{"Red", false},
		{"not-a-colour", true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			_, err := parseColor(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("parseColor(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			}
		})
	}
}
