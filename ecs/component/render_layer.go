package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// RenderLayer sorts draw order. Lower indices draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

// Text is a screen label drawn at the entity Transform. OriginX/OriginY align
// the text box the same way Sprite origins do.
type Text struct {
	Value   string
	Face    text.Face
	Color   color.Color
	OriginX float64
	OriginY float64
}

var TextComponent = NewComponent[Text]()
