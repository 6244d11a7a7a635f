package component

// Input stores the directional keys held this tick.
type Input struct {
	Left  bool
	Right bool
	Up    bool
}

var InputComponent = NewComponent[Input]()
