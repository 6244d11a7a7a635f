package system

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// AnimationSystem advances clips at their own FPS and points the sprite at the
// current frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing {
			advance(anim, def)
		}

		x, y, fw, fh, ok := anim.FrameRect()
		if !ok {
			return
		}
		sprite.Source = image.Rect(x, y, x+fw, y+fh)
		sprite.UseSource = true
		if anim.Sheet != nil {
			sprite.Image = anim.Sheet
		}
	})
}

func advance(anim *component.Animation, def component.AnimationDef) {
	ticksPerFrame := 1
	if def.FPS > 0 {
		ticksPerFrame = int(math.Round(common.TPS / def.FPS))
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	anim.FrameTimer++
	if anim.FrameTimer < ticksPerFrame {
		return
	}
	anim.FrameTimer = 0
	anim.Frame++
	if anim.Frame < def.FrameCount {
		return
	}
	if def.Loop {
		anim.Frame = 0
		return
	}
	anim.Frame = def.FrameCount - 1
	anim.Playing = false
}

// frameImage returns the sub-image a sprite should draw.
func frameImage(s *component.Sprite) *ebiten.Image {
	if s.Image == nil {
		return nil
	}
	if !s.UseSource {
		return s.Image
	}
	if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
		return sub
	}
	return s.Image
}
