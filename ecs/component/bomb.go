package component

// Bomb marks an entity as lethal on overlap with the player.
type Bomb struct{}

var BombComponent = NewComponent[Bomb]()
