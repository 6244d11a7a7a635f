package component

// Transform is the world position of an entity's centre. Scale multiplies the
// sprite when drawn and the collider when a body is (re)built.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

// Scale returns the transform scale with zero treated as 1.
func (t Transform) Scale() (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

var TransformComponent = NewComponent[Transform]()
