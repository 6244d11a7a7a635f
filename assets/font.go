package assets

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce sync.Once
	fontErr  error
	goFont   *opentype.Font

	faceMu sync.Mutex
	faces  = make(map[float64]text.Face)
)

// Face returns the Go Regular face at size px.
func Face(size float64) (text.Face, error) {
	fontOnce.Do(func() {
		goFont, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("assets: parse font: %w", fontErr)
	}

	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	xface, err := opentype.NewFace(goFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("assets: face %.0fpx: %w", size, err)
	}
	f := text.NewGoXFace(xface)
	faces[size] = f
	return f, nil
}
