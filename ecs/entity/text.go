package entity

import (
	"fmt"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// NewTitle places the version banner. Its origin (1,0) anchors the text's
// top-right corner at x,y.
func NewTitle(w *ecs.World, x, y float64, value string) (ecs.Entity, error) {
	e, err := BuildEntity(w, "title.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("title: set transform: %w", err)
	}
	if t, ok := ecs.Get(w, e, component.TextComponent.Kind()); ok {
		t.Value = value
	}
	return e, nil
}

func NewScoreText(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "score_text.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("score text: set transform: %w", err)
	}
	return e, nil
}
