package component

import "image/color"

// Tint multiplies a sprite's colour when drawn.
type Tint struct {
	Color color.Color
}

var TintComponent = NewComponent[Tint]()
