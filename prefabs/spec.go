package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformPlacementSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

type StarRowSpec struct {
	Count     int     `yaml:"count"`
	StartX    float64 `yaml:"start_x"`
	StepX     float64 `yaml:"step_x"`
	Y         float64 `yaml:"y"`
	BounceMin float64 `yaml:"bounce_min"`
	BounceMax float64 `yaml:"bounce_max"`
}

type BombSpawnSpec struct {
	SplitX float64 `yaml:"split_x"`
	MinX   int     `yaml:"min_x"`
	MaxX   int     `yaml:"max_x"`
	Y      float64 `yaml:"y"`
	MaxVX  int     `yaml:"max_vx"`
	VY     float64 `yaml:"vy"`
}

type TextPlacementSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SceneSpec is the level layout in scene.yaml. Negative title x is measured
// from the right edge.
type SceneSpec struct {
	Name      string                  `yaml:"name"`
	Width     float64                 `yaml:"width"`
	Height    float64                 `yaml:"height"`
	Gravity   float64                 `yaml:"gravity"`
	Sky       PointSpec               `yaml:"sky"`
	Platforms []PlatformPlacementSpec `yaml:"platforms"`
	Player    PointSpec               `yaml:"player"`
	Stars     StarRowSpec             `yaml:"stars"`
	Bomb      BombSpawnSpec           `yaml:"bomb"`
	Title     TextPlacementSpec       `yaml:"title"`
	Score     TextPlacementSpec       `yaml:"score"`
}

func LoadSceneSpec() (SceneSpec, error) {
	return LoadSpec[SceneSpec]("scene.yaml")
}
