package component

// Player holds movement tuning in pixels per second.
type Player struct {
	MoveSpeed float64
	JumpSpeed float64
}

var PlayerComponent = NewComponent[Player]()
