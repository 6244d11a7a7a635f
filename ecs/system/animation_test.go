package system

import (
	"testing"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

func TestAnimationAdvance(t *testing.T) {
	cases := []struct {
		name        string
		clip        string
		ticks       int
		wantFrame   int
		wantPlaying bool
	}{
		// 10fps at 60tps is one frame every 6 ticks
		{"first_frame_held", animLeft, 5, 0, true},
		{"second_frame", animLeft, 6, 1, true},
		{"loops", animLeft, 24, 0, true},
		{"single_frame_stops", animTurn, 3, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := w.CreateEntity()
			anim := testAnimation()
			anim.Play(c.clip, false)
			mustAdd(t, w, e, component.AnimationComponent.Kind(), anim)
			mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})

			sys := NewAnimationSystem()
			for i := 0; i < c.ticks; i++ {
				sys.Update(w)
			}

			if anim.Frame != c.wantFrame || anim.Playing != c.wantPlaying {
				t.Fatalf("frame=%d playing=%v, want %d %v", anim.Frame, anim.Playing, c.wantFrame, c.wantPlaying)
			}
			sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			x, _, _, _, _ := anim.FrameRect()
			if !sprite.UseSource || sprite.Source.Min.X != x {
				t.Fatalf("sprite source %v does not match frame x %d", sprite.Source, x)
			}
		})
	}
}

func TestAnimationPlayIgnoreIfPlaying(t *testing.T) {
	anim := testAnimation()
	anim.Play(animLeft, false)
	anim.Frame = 2

	anim.Play(animLeft, true)
	if anim.Frame != 2 {
		t.Fatalf("ignoreIfPlaying restarted the clip")
	}
	anim.Play(animLeft, false)
	if anim.Frame != 0 {
		t.Fatalf("restart kept frame %d", anim.Frame)
	}
	anim.Play("missing", false)
	if anim.Current != animLeft {
		t.Fatalf("unknown clip replaced %q", anim.Current)
	}
}

func TestAudioClearsRequests(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	a := &component.Audio{Names: []string{"collect", "explode"}, Volume: []float64{0.5, 0.7}, Play: make([]bool, 2)}
	mustAdd(t, w, e, component.AudioComponent.Kind(), a)

	if !a.Request("explode") || a.Request("missing") {
		t.Fatalf("Request reported wrong result")
	}
	NewAudioSystem().Update(w)

	if a.Play[0] || a.Play[1] {
		t.Fatalf("play flags not cleared: %v", a.Play)
	}
}
