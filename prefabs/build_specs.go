package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab file: a name plus raw component blocks keyed by
// registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

// SpriteComponentSpec origins are fractions of the frame size. A nil origin
// means centred.
type SpriteComponentSpec struct {
	Image   string   `yaml:"image"`
	OriginX *float64 `yaml:"origin_x"`
	OriginY *float64 `yaml:"origin_y"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type AnimationDefComponentSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Sheet   string                               `yaml:"sheet"`
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}

// PhysicsBodyComponentSpec sizes default to the sprite image when zero.
type PhysicsBodyComponentSpec struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Radius             float64 `yaml:"radius"`
	Mass               float64 `yaml:"mass"`
	Friction           float64 `yaml:"friction"`
	Elasticity         float64 `yaml:"elasticity"`
	Static             bool    `yaml:"static"`
	CollideWorldBounds bool    `yaml:"collide_world_bounds"`
}

// CollisionLayerComponentSpec names categories: player, platform, star, bomb,
// bounds or all.
type CollisionLayerComponentSpec struct {
	Category string   `yaml:"category"`
	Mask     []string `yaml:"mask"`
}

type StarComponentSpec struct {
	Points int `yaml:"points"`
}

type TextComponentSpec struct {
	Value   string  `yaml:"value"`
	Size    float64 `yaml:"size"`
	Color   string  `yaml:"color"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type ActiveComponentSpec struct {
	Enabled *bool `yaml:"enabled"`
}
