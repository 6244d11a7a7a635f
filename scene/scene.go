// Package scene is the star-collecting level: it builds the entities once and
// runs the systems every tick.
package scene

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/ecs/system"
	"github.com/milk9111/starfall/prefabs"
)

// Config wires the scene to its surroundings. Zero values are usable: no
// input, a time-seeded random source, a discarding logger.
type Config struct {
	Input  system.InputReader
	Rand   *rand.Rand
	Logger *log.Logger
	// Headless skips images and audio so the scene can run without a
	// graphics or sound device.
	Headless bool
	// Debug draws collider outlines and player state.
	Debug bool
	// OnGameOver is called once, on the tick the player is hit.
	OnGameOver func(score int)
}

type Scene struct {
	cfg    Config
	logger *log.Logger
	layout prefabs.SceneSpec

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	collect   *system.StarCollectSystem
	hit       *system.BombHitSystem

	player    ecs.Entity
	state     ecs.Entity
	scoreText ecs.Entity
	stars     []ecs.Entity

	created      bool
	overReported bool
}

func New(cfg Config) *Scene {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scene{cfg: cfg, logger: logger}
}

func (s *Scene) buildOptions() entity.BuildOptions {
	return entity.BuildOptions{SkipMedia: s.cfg.Headless}
}

// Create builds the level. It must be called once before Update.
func (s *Scene) Create() error {
	if s.created {
		return fmt.Errorf("scene: create: already created")
	}

	layout, err := prefabs.LoadSceneSpec()
	if err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}
	s.layout = layout
	opts := s.buildOptions()
	w := ecs.NewWorld()
	s.world = w

	if s.state, err = entity.NewSceneState(w, layout.Width, layout.Height); err != nil {
		return fmt.Errorf("scene: create state: %w", err)
	}

	titleX := layout.Title.X
	if titleX < 0 {
		titleX += layout.Width
	}
	if _, err := entity.NewTitle(w, titleX, layout.Title.Y, Title()); err != nil {
		return fmt.Errorf("scene: create title: %w", err)
	}

	if _, err := entity.NewSky(w, layout.Sky.X, layout.Sky.Y, opts); err != nil {
		return fmt.Errorf("scene: create sky: %w", err)
	}

	for i, p := range layout.Platforms {
		if _, err := entity.NewPlatform(w, p.X, p.Y, p.Scale, opts); err != nil {
			return fmt.Errorf("scene: create platform %d: %w", i, err)
		}
	}

	if s.player, err = entity.NewPlayerAt(w, layout.Player.X, layout.Player.Y, opts); err != nil {
		return fmt.Errorf("scene: create player: %w", err)
	}

	row := layout.Stars
	s.stars = make([]ecs.Entity, 0, row.Count)
	for i := 0; i < row.Count; i++ {
		bounce := row.BounceMin + s.cfg.Rand.Float64()*(row.BounceMax-row.BounceMin)
		star, err := entity.NewStar(w, row.StartX+row.StepX*float64(i), row.Y, bounce, opts)
		if err != nil {
			return fmt.Errorf("scene: create stars: %w", err)
		}
		s.stars = append(s.stars, star)
	}

	if s.scoreText, err = entity.NewScoreText(w, layout.Score.X, layout.Score.Y); err != nil {
		return fmt.Errorf("scene: create score text: %w", err)
	}

	if !s.cfg.Headless {
		if _, err := entity.NewSFX(w, opts); err != nil {
			return fmt.Errorf("scene: create sfx: %w", err)
		}
	}

	spawn := system.BombSpawn{
		SplitX: layout.Bomb.SplitX,
		MinX:   layout.Bomb.MinX,
		MaxX:   layout.Bomb.MaxX,
		Y:      layout.Bomb.Y,
		MaxVX:  layout.Bomb.MaxVX,
		VY:     layout.Bomb.VY,
	}

	s.physics = system.NewPhysicsSystem()
	s.physics.SetGravity(layout.Gravity)
	s.collect = system.NewStarCollectSystem(s.cfg.Rand, entity.BombFactory(opts), spawn, s.logger)
	s.hit = system.NewBombHitSystem(s.logger)
	s.render = system.NewRenderSystem()

	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(s.cfg.Input),
		system.NewPlayerControllerSystem(),
		s.physics,
		s.collect,
		s.hit,
		system.NewAnimationSystem(),
		system.NewAudioSystem(),
	)

	s.created = true
	s.logger.Info("scene created", "scene", layout.Name, "stars", len(s.stars), "platforms", len(layout.Platforms))
	return nil
}

// Update runs one fixed tick: input, movement, physics step, overlap
// handlers, animation and audio.
func (s *Scene) Update() {
	if !s.created {
		return
	}
	s.scheduler.Update(s.world)

	if s.GameOver() && !s.overReported {
		s.overReported = true
		if s.cfg.OnGameOver != nil {
			s.cfg.OnGameOver(s.Score())
		}
	}
}

func (s *Scene) Draw(screen *ebiten.Image) {
	if !s.created {
		return
	}
	s.render.Draw(s.world, screen)
	if s.cfg.Debug {
		system.DrawPhysicsDebug(s.physics.Space(), screen)
		system.DrawPlayerDebug(s.world, screen)
	}
}

// CollectStar runs the collect handler for star as if the player had
// touched it.
func (s *Scene) CollectStar(star ecs.Entity) {
	if !s.created {
		return
	}
	s.collect.CollectStar(s.world, s.player, star)
}

// HitBomb runs the hazard handler for bomb as if the player had touched it.
func (s *Scene) HitBomb(bomb ecs.Entity) {
	if !s.created {
		return
	}
	s.hit.HitBomb(s.world, s.player, bomb)
}

// ReloadPrefab applies an edited prefab file to the running scene. Only
// player tuning is live-reloadable.
func (s *Scene) ReloadPrefab(name string) error {
	if !s.created || name != "player.yaml" {
		return nil
	}
	tuning, err := entity.ReloadPlayerTuning(s.world)
	if err != nil {
		return err
	}
	s.logger.Info("player tuning reloaded", "move_speed", tuning.MoveSpeed, "jump_speed", tuning.JumpSpeed)
	return nil
}

func (s *Scene) World() *ecs.World { return s.world }

func (s *Scene) Player() ecs.Entity { return s.player }

// Stars returns the fixed star batch in creation order.
func (s *Scene) Stars() []ecs.Entity { return append([]ecs.Entity(nil), s.stars...) }

// Bombs returns every bomb spawned so far, active or not.
func (s *Scene) Bombs() []ecs.Entity {
	if s.world == nil {
		return nil
	}
	return s.world.Query(component.BombComponent.Kind())
}

func (s *Scene) Score() int {
	if sc, ok := ecs.Get(s.world, s.state, component.ScoreComponent.Kind()); ok {
		return sc.Value
	}
	return 0
}

func (s *Scene) ScoreText() string {
	if t, ok := ecs.Get(s.world, s.scoreText, component.TextComponent.Kind()); ok {
		return t.Value
	}
	return ""
}

func (s *Scene) GameOver() bool {
	if st, ok := ecs.Get(s.world, s.state, component.GameStateComponent.Kind()); ok {
		return st.Over
	}
	return false
}

func (s *Scene) PhysicsPaused() bool {
	if st, ok := ecs.Get(s.world, s.state, component.PhysicsStateComponent.Kind()); ok {
		return st.Paused
	}
	return false
}
