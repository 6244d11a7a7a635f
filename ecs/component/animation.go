package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationDef is a clip of consecutive frames in one sheet row.
type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

// Play switches to the named clip. With ignoreIfPlaying set, asking for the
// clip that is already running leaves it untouched; otherwise it restarts from
// its first frame. Unknown names are ignored.
func (a *Animation) Play(name string, ignoreIfPlaying bool) {
	if a == nil {
		return
	}
	if _, ok := a.Defs[name]; !ok {
		return
	}
	if ignoreIfPlaying && a.Playing && a.Current == name {
		return
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
}

// FrameRect returns the sheet rectangle of the current frame.
func (a *Animation) FrameRect() (x, y, w, h int, ok bool) {
	if a == nil {
		return 0, 0, 0, 0, false
	}
	def, found := a.Defs[a.Current]
	if !found {
		return 0, 0, 0, 0, false
	}
	col := def.ColStart + a.Frame
	return col * def.FrameW, def.Row * def.FrameH, def.FrameW, def.FrameH, true
}

var AnimationComponent = NewComponent[Animation]()
