package component

// Star is a collectible. OriginX is where it returns on respawn.
type Star struct {
	OriginX float64
	OriginY float64
	Points  int
}

var StarComponent = NewComponent[Star]()

// Active marks whether an entity takes part in the simulation and is drawn.
// Entities without it are always active.
type Active struct {
	Enabled bool
}

var ActiveComponent = NewComponent[Active]()
