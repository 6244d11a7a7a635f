package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image (or the Source sub-rectangle of it) so that the point
// (OriginX, OriginY), given as fractions of the frame size, sits on the
// entity's Transform. Width and Height are the unscaled frame size, known
// even when Image is not loaded.
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	Width     float64
	Height    float64
}

var SpriteComponent = NewComponent[Sprite]()
