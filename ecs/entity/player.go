package entity

import (
	"fmt"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

func NewPlayer(w *ecs.World, opts BuildOptions) (ecs.Entity, error) {
	return BuildEntityWith(w, "player.yaml", opts)
}

func NewPlayerAt(w *ecs.World, x, y float64, opts BuildOptions) (ecs.Entity, error) {
	entity, err := NewPlayer(w, opts)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}

// ReloadPlayerTuning re-reads player.yaml and copies its movement speeds onto
// every live player. Everything else in the prefab is left alone.
func ReloadPlayerTuning(w *ecs.World) (component.Player, error) {
	spec, err := prefabs.LoadEntityBuildSpec("player.yaml")
	if err != nil {
		return component.Player{}, fmt.Errorf("player: reload: %w", err)
	}
	tuning, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](spec.Components["player"])
	if err != nil {
		return component.Player{}, fmt.Errorf("player: decode tuning: %w", err)
	}
	out := component.Player{MoveSpeed: tuning.MoveSpeed, JumpSpeed: tuning.JumpSpeed}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		*p = out
	})
	return out, nil
}
