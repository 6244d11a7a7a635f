// starfall is a single-screen platformer: collect every star, dodge the
// bouncing bombs.
//
// Usage:
//
//	starfall           - play
//	starfall scores    - show the best runs
package main

import (
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/internal/storage"
)

var (
	flagSeed    uint64
	flagDBPath  string
	flagDebug   bool
	flagMonitor bool
	flagWatch   bool
	flagScale   float64
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "starfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "starfall",
	Short:        "Collect the stars, avoid the bombs",
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "draw colliders and player state")
	rootCmd.Flags().BoolVarP(&flagMonitor, "monitor", "m", false, "use base monitor instead of primary (for multi-monitor setups)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload prefabs/player.yaml when it changes on disk")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "window scale")

	rootCmd.AddCommand(scoresCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	runID := uuid.NewString()
	logger.Info("starting run", "run", runID, "seed", seed)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "err", err)
	}
	defer store.Close()

	game, err := NewGame(GameConfig{
		RunID:  runID,
		Seed:   seed,
		Debug:  flagDebug,
		Watch:  flagWatch,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	if flagMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}
	scale := flagScale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(common.ScreenWidth*scale), int(common.ScreenHeight*scale))
	ebiten.SetWindowTitle("starfall")
	ebiten.SetTPS(common.TPS)

	// Update returns ebiten.Termination on quit, which RunGame turns into nil.
	return ebiten.RunGame(game)
}
