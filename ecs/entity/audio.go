package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/starfall/assets"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

// NewSFX builds the entity holding the scene's one-shot sounds.
func NewSFX(w *ecs.World, opts BuildOptions) (ecs.Entity, error) {
	return BuildEntityWith(w, "sfx.yaml", opts)
}

func buildAudioComponent(clips []prefabs.AudioClipSpec, skipPlayers bool) (*component.Audio, error) {
	n := len(clips)
	if n == 0 {
		return nil, nil
	}

	comp := &component.Audio{
		Names:   make([]string, 0, n),
		Players: make([]*audio.Player, 0, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, n),
	}
	for i, clip := range clips {
		var player *audio.Player
		if !skipPlayers {
			var err error
			player, err = assets.LoadAudioPlayer(clip.File)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
		}
		comp.Names = append(comp.Names, clip.Name)
		comp.Players = append(comp.Players, player)
		comp.Volume = append(comp.Volume, clip.Volume)
	}
	return comp, nil
}
