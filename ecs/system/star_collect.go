package system

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// BombFactory creates a live bomb at x,y moving at vx,vy.
type BombFactory func(w *ecs.World, x, y, vx, vy float64) (ecs.Entity, error)

// BombSpawn describes where a bomb appears after a star wave is cleared. The
// bomb lands in the half of [MinX, MaxX] split at SplitX that the player is
// not in. Ranges are inclusive integers.
type BombSpawn struct {
	SplitX float64
	MinX   int
	MaxX   int
	Y      float64
	MaxVX  int
	VY     float64
}

// DefaultBombSpawn matches the 800px playfield.
var DefaultBombSpawn = BombSpawn{SplitX: 400, MinX: 0, MaxX: 800, Y: 16, MaxVX: 200, VY: 20}

// StarCollectSystem consumes player/star overlaps raised by the physics step.
type StarCollectSystem struct {
	rand      *rand.Rand
	spawnBomb BombFactory
	spawn     BombSpawn
	logger    *log.Logger
}

func NewStarCollectSystem(rng *rand.Rand, spawnBomb BombFactory, spawn BombSpawn, logger *log.Logger) *StarCollectSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &StarCollectSystem{rand: rng, spawnBomb: spawnBomb, spawn: spawn, logger: orDiscard(logger)}
}

func (s *StarCollectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	seen := make(map[ecs.Entity]struct{})
	for _, evt := range w.Events().Collisions(ecs.CollisionEventCollect) {
		if _, dup := seen[evt.Other]; dup {
			continue
		}
		seen[evt.Other] = struct{}{}
		s.CollectStar(w, evt.Entity, evt.Other)
	}
}

// CollectStar hides star, adds its points and, when it was the last active
// star, respawns the wave and drops one bomb. Nothing changes once the game
// is over.
func (s *StarCollectSystem) CollectStar(w *ecs.World, player, star ecs.Entity) {
	if GameOver(w) {
		return
	}
	starComp, ok := ecs.Get(w, star, component.StarComponent.Kind())
	if !ok || !isActive(w, star) {
		return
	}
	setActive(w, star, false)

	score := addScore(w, starComp.Points)
	setScoreText(w, fmt.Sprintf("Score: %d", score))
	requestSound(w, "collect")
	s.logger.Debug("star collected", "star", star, "score", score)

	if activeStars(w) > 0 {
		return
	}

	s.respawnStars(w)
	s.dropBomb(w, player)
}

func (s *StarCollectSystem) respawnStars(w *ecs.World) {
	ecs.ForEach2(w, component.StarComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, star *component.Star, t *component.Transform) {
		t.X = star.OriginX
		t.Y = 0
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			body.Teleport(t.X, t.Y, 0, 0)
		}
		setActive(w, e, true)
	})
}

func (s *StarCollectSystem) dropBomb(w *ecs.World, player ecs.Entity) {
	px := 0.0
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		px = t.X
	}
	x := s.BombX(px)
	vx := between(s.rand, -s.spawn.MaxVX, s.spawn.MaxVX)

	if s.spawnBomb == nil {
		return
	}
	bomb, err := s.spawnBomb(w, float64(x), s.spawn.Y, float64(vx), s.spawn.VY)
	if err != nil {
		s.logger.Error("spawn bomb", "err", err)
		return
	}
	s.logger.Info("bomb dropped", "bomb", bomb, "x", x, "vx", vx)
}

// BombX picks a spawn x on the opposite side of SplitX from playerX.
func (s *StarCollectSystem) BombX(playerX float64) int {
	split := int(s.spawn.SplitX)
	if playerX < s.spawn.SplitX {
		return between(s.rand, split, s.spawn.MaxX)
	}
	return between(s.rand, s.spawn.MinX, split)
}

// between returns an integer in [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.IntN(hi-lo+1)
}

func activeStars(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.StarComponent.Kind(), func(e ecs.Entity, _ *component.Star) {
		if isActive(w, e) {
			n++
		}
	})
	return n
}

func setActive(w *ecs.World, e ecs.Entity, enabled bool) {
	if a, ok := ecs.Get(w, e, component.ActiveComponent.Kind()); ok {
		a.Enabled = enabled
		return
	}
	_ = ecs.Add(w, e, component.ActiveComponent.Kind(), &component.Active{Enabled: enabled})
}

func addScore(w *ecs.World, points int) int {
	ent, ok := w.First(component.ScoreComponent.Kind())
	if !ok {
		return 0
	}
	score, _ := ecs.Get(w, ent, component.ScoreComponent.Kind())
	score.Value += points
	return score.Value
}

func setScoreText(w *ecs.World, value string) {
	ecs.ForEach2(w, component.ScoreTextTagComponent.Kind(), component.TextComponent.Kind(), func(_ ecs.Entity, _ *component.ScoreTextTag, t *component.Text) {
		t.Value = value
	})
}

func requestSound(w *ecs.World, name string) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		a.Request(name)
	})
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
