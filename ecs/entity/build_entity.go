package entity

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/assets"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
	"golang.org/x/image/colornames"
)

// BuildOptions tunes how prefabs are turned into entities. SkipMedia leaves
// sprite images and audio players unset; collider sizes are still read from
// the image headers. Tests use it to build worlds without a graphics device.
type BuildOptions struct {
	SkipMedia bool
}

type buildContext struct {
	PrefabPath string
	Options    BuildOptions
	// frame size of the sprite (or animation frame) added so far
	FrameW, FrameH int
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":       addPlayerTag,
	"platform_tag":     addPlatformTag,
	"score_text_tag":   addScoreTextTag,
	"player":           addPlayer,
	"input":            addInput,
	"player_collision": addPlayerCollision,
	"star":             addStar,
	"bomb":             addBomb,
	"transform":        addTransform,
	"sprite":           addSprite,
	"animation":        addAnimation,
	"render_layer":     addRenderLayer,
	"text":             addText,
	"audio":            addAudio,
	"collision_layer":  addCollisionLayer,
	"physics_body":     addPhysicsBody,
	"active":           addActive,
}

// Sprite and animation must precede physics_body so colliders can default to
// the frame size.
var componentBuildOrder = []string{
	"player_tag",
	"platform_tag",
	"score_text_tag",
	"player",
	"input",
	"player_collision",
	"star",
	"bomb",
	"transform",
	"sprite",
	"animation",
	"render_layer",
	"text",
	"audio",
	"collision_layer",
	"physics_body",
	"active",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return BuildEntityWith(w, prefabPath, BuildOptions{})
}

func BuildEntityWith(w *ecs.World, prefabPath string, opts BuildOptions) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Options: opts}

	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	}
	t.X = x
	t.Y = y
	return nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addPlatformTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{})
}

func addScoreTextTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ScoreTextTagComponent.Kind(), &component.ScoreTextTag{})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addPlayerCollision(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{})
}

func addStar(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.StarComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode star spec: %w", err)
	}
	return ecs.Add(w, e, component.StarComponent.Kind(), &component.Star{Points: spec.Points})
}

func addBomb(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BombComponent.Kind(), &component.Bomb{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.X,
		Y:      spec.Y,
		ScaleX: spec.ScaleX,
		ScaleY: spec.ScaleY,
	})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{OriginX: 0.5, OriginY: 0.5}
	if spec.OriginX != nil {
		sprite.OriginX = *spec.OriginX
	}
	if spec.OriginY != nil {
		sprite.OriginY = *spec.OriginY
	}

	if spec.Image != "" {
		iw, ih, err := assets.ImageSize(spec.Image)
		if err != nil {
			return fmt.Errorf("size image %q: %w", spec.Image, err)
		}
		ctx.FrameW, ctx.FrameH = iw, ih
		sprite.Width, sprite.Height = float64(iw), float64(ih)
		if !ctx.Options.SkipMedia {
			img, err := assets.LoadImage(spec.Image)
			if err != nil {
				return fmt.Errorf("load image %q: %w", spec.Image, err)
			}
			sprite.Image = img
		}
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if len(spec.Defs) == 0 {
		return fmt.Errorf("animation defines no clips")
	}

	var sheet *ebiten.Image
	if !ctx.Options.SkipMedia {
		sheet, err = assets.LoadImage(spec.Sheet)
		if err != nil {
			return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
		}
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.FrameCount <= 0 || def.FrameW <= 0 || def.FrameH <= 0 {
			return fmt.Errorf("animation %q: frame size and count must be positive", name)
		}
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}

	anim := &component.Animation{Sheet: sheet, Defs: defs}
	current := spec.Current
	if _, ok := defs[current]; !ok {
		names := make([]string, 0, len(defs))
		for name := range defs {
			names = append(names, name)
		}
		sort.Strings(names)
		current = names[0]
	}
	anim.Play(current, false)

	// Point the sprite at the first frame so nothing draws the whole sheet.
	if x, y, fw, fh, ok := anim.FrameRect(); ok {
		ctx.FrameW, ctx.FrameH = fw, fh
		if sprite, has := ecs.Get(w, e, component.SpriteComponent.Kind()); has {
			sprite.Source = image.Rect(x, y, x+fw, y+fh)
			sprite.UseSource = true
			sprite.Width, sprite.Height = float64(fw), float64(fh)
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addText(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TextComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode text spec: %w", err)
	}
	if spec.Size <= 0 {
		spec.Size = 16
	}
	face, err := assets.Face(spec.Size)
	if err != nil {
		return err
	}
	clr, err := parseColor(spec.Color)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TextComponent.Kind(), &component.Text{
		Value:   spec.Value,
		Face:    face,
		Color:   clr,
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
	})
}

// parseColor accepts an SVG colour name. Empty means black.
func parseColor(name string) (color.Color, error) {
	if name == "" {
		return colornames.Black, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AudioComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	comp, err := buildAudioComponent(spec.Clips, ctx.Options.SkipMedia)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	if comp == nil {
		return nil
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

var collisionCategories = map[string]uint32{
	"player":   component.CollisionCategoryPlayer,
	"platform": component.CollisionCategoryPlatform,
	"star":     component.CollisionCategoryStar,
	"bomb":     component.CollisionCategoryBomb,
	"bounds":   component.CollisionCategoryBounds,
	"all":      ^uint32(0),
}

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollisionLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	category, ok := collisionCategories[spec.Category]
	if !ok {
		return fmt.Errorf("unknown collision category %q", spec.Category)
	}
	var mask uint32
	for _, name := range spec.Mask {
		bit, ok := collisionCategories[name]
		if !ok {
			return fmt.Errorf("unknown collision category %q in mask", name)
		}
		mask |= bit
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: category,
		Mask:     mask,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}

	width, height := spec.Width, spec.Height
	if width == 0 {
		width = float64(ctx.FrameW)
	}
	if height == 0 {
		height = float64(ctx.FrameH)
	}
	if spec.Radius <= 0 && (width <= 0 || height <= 0) {
		return fmt.Errorf("physics body needs a size or a sprite to take it from")
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:              width,
		Height:             height,
		Radius:             spec.Radius,
		Mass:               spec.Mass,
		Friction:           spec.Friction,
		Elasticity:         spec.Elasticity,
		Static:             spec.Static,
		CollideWorldBounds: spec.CollideWorldBounds,
	})
}

func addActive(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ActiveComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode active spec: %w", err)
	}
	enabled := spec.Enabled == nil || *spec.Enabled
	return ecs.Add(w, e, component.ActiveComponent.Kind(), &component.Active{Enabled: enabled})
}
