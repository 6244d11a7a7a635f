package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// RenderSystem draws sprites and text in RenderLayer order. Inactive entities
// are skipped.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.TransformComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		if !isActive(w, e) {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			drawSprite(w, e, screen, t, s)
		}
		if label, ok := ecs.Get(w, e, component.TextComponent.Kind()); ok {
			drawText(screen, t, label)
		}
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func drawSprite(w *ecs.World, e ecs.Entity, screen *ebiten.Image, t *component.Transform, s *component.Sprite) {
	img := frameImage(s)
	if img == nil {
		return
	}
	bounds := img.Bounds()
	sx, sy := t.Scale()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.OriginX*float64(bounds.Dx()), -s.OriginY*float64(bounds.Dy()))
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(t.X, t.Y)
	if tint, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok && tint.Color != nil {
		op.ColorScale.ScaleWithColor(tint.Color)
	}
	screen.DrawImage(img, op)
}

func drawText(screen *ebiten.Image, t *component.Transform, label *component.Text) {
	if label.Face == nil || label.Value == "" {
		return
	}
	width, height := text.Measure(label.Value, label.Face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X-width*label.OriginX, t.Y-height*label.OriginY)
	if label.Color != nil {
		op.ColorScale.ScaleWithColor(label.Color)
	}
	text.Draw(screen, label.Value, label.Face, op)
}
