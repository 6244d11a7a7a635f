// animview previews the animation clips of a prefab. Left and right cycle
// through the clips.
package main

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/ecs/system"
)

const viewSize = 256

var (
	flagScale float64
	logger    = log.NewWithOptions(os.Stderr, log.Options{Prefix: "animview"})
)

type viewer struct {
	world  *ecs.World
	target ecs.Entity
	clips  []string
	idx    int

	animation *system.AnimationSystem
	render    *system.RenderSystem
}

func newViewer(prefab string, scale float64) (*viewer, error) {
	w := ecs.NewWorld()
	e, err := entity.BuildEntity(w, prefab)
	if err != nil {
		return nil, err
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("%s has no animation", prefab)
	}
	if err := entity.SetEntityTransform(w, e, viewSize/2, viewSize/2); err != nil {
		return nil, err
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.ScaleX, t.ScaleY = scale, scale
	}

	clips := make([]string, 0, len(anim.Defs))
	for name := range anim.Defs {
		clips = append(clips, name)
	}
	sort.Strings(clips)

	v := &viewer{
		world:     w,
		target:    e,
		clips:     clips,
		animation: system.NewAnimationSystem(),
		render:    system.NewRenderSystem(),
	}
	for i, name := range clips {
		if name == anim.Current {
			v.idx = i
		}
	}
	return v, nil
}

func (v *viewer) Update() error {
	step := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		step = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		step = -1
	}
	if step != 0 {
		v.idx = (v.idx + step + len(v.clips)) % len(v.clips)
		anim, _ := ecs.Get(v.world, v.target, component.AnimationComponent.Kind())
		anim.Play(v.clips[v.idx], false)
	}
	v.animation.Update(v.world)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff})
	v.render.Draw(v.world, screen)

	anim, _ := ecs.Get(v.world, v.target, component.AnimationComponent.Kind())
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d  (%d/%d)", anim.Current, anim.Frame, v.idx+1, len(v.clips)))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

var rootCmd = &cobra.Command{
	Use:          "animview [prefab]",
	Short:        "Preview a prefab's animation clips",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefab := "player.yaml"
		if len(args) > 0 {
			prefab = args[0]
		}
		v, err := newViewer(prefab, flagScale)
		if err != nil {
			return err
		}
		logger.Info("previewing", "prefab", prefab, "clips", v.clips)

		ebiten.SetWindowSize(viewSize*2, viewSize*2)
		ebiten.SetWindowTitle("animview - " + prefab)
		return ebiten.RunGame(v)
	},
}

func main() {
	rootCmd.Flags().Float64Var(&flagScale, "scale", 3, "sprite scale")
	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}
