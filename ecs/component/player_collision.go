package component

// PlayerCollision is rebuilt by the physics step. Grounded is true when the
// player rested on a platform during the last step.
type PlayerCollision struct {
	Grounded bool
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
