package component

// LevelBounds is the playfield rectangle that CollideWorldBounds bodies are
// kept inside.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
