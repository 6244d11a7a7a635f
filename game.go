package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs/system"
	"github.com/milk9111/starfall/internal/storage"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/scene"
)

type GameConfig struct {
	RunID  string
	Seed   uint64
	Debug  bool
	Watch  bool
	Store  *storage.Store
	Logger *log.Logger
}

type Game struct {
	cfg     GameConfig
	logger  *log.Logger
	scene   *scene.Scene
	watcher *prefabs.Watcher

	gameOverUI *ebitenui.UI
	best       int
	quit       bool
}

func NewGame(cfg GameConfig) (*Game, error) {
	g := &Game{cfg: cfg, logger: cfg.Logger}

	g.scene = scene.New(scene.Config{
		Input:      system.KeyboardReader{},
		Rand:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		Logger:     cfg.Logger.WithPrefix("scene"),
		Debug:      cfg.Debug,
		OnGameOver: g.onGameOver,
	})
	if err := g.scene.Create(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			g.logger.Warn("prefab watch disabled", "dir", prefabs.Dir, "err", err)
		} else {
			g.watcher = w
			g.logger.Info("watching prefabs", "dir", prefabs.Dir)
		}
	}
	return g, nil
}

func (g *Game) onGameOver(score int) {
	g.logger.Info("game over", "run", g.cfg.RunID, "score", score)

	g.best = score
	if g.cfg.Store != nil {
		if _, err := g.cfg.Store.SaveScore(g.cfg.RunID, score); err != nil {
			g.logger.Warn("score not saved", "err", err)
		}
		if best, err := g.cfg.Store.HighScore(); err != nil {
			g.logger.Warn("high score unavailable", "err", err)
		} else if best > g.best {
			g.best = best
		}
	}

	ui, err := NewGameOverUI(g, score, g.best)
	if err != nil {
		g.logger.Warn("game over overlay unavailable", "err", err)
		return
	}
	g.gameOverUI = ui
}

func (g *Game) Update() error {
	for _, name := range g.watcher.Drain() {
		if err := g.scene.ReloadPrefab(name); err != nil {
			g.logger.Warn("prefab reload failed", "prefab", name, "err", err)
		}
	}

	g.scene.Update()

	if g.gameOverUI != nil {
		g.gameOverUI.Update()
	}
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.gameOverUI != nil {
		g.gameOverUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.logger.Warn("closing prefab watcher", "err", err)
		}
	}
}
