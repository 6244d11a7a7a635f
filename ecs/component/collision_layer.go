package component

// Collision categories. Shapes only collide when each one's mask contains the
// other's category.
const (
	CollisionCategoryPlayer   uint32 = 1 << 0
	CollisionCategoryPlatform uint32 = 1 << 1
	CollisionCategoryStar     uint32 = 1 << 2
	CollisionCategoryBomb     uint32 = 1 << 3
	CollisionCategoryBounds   uint32 = 1 << 4
)

// CollisionLayer declares an entity's collision category and mask. A zero
// Category is treated as 1 and a zero Mask as "collide with everything".
type CollisionLayer struct {
	Category uint32 `yaml:"category,omitempty"`
	Mask     uint32 `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
