package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named one-shot players. Systems request a sound by setting the
// matching Play flag; the audio system rewinds and starts it.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
}

// Request flags the named sound for playback this tick.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
