package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type PlatformTag struct{}

var PlatformTagComponent = NewComponent[PlatformTag]()

type ScoreTextTag struct{}

var ScoreTextTagComponent = NewComponent[ScoreTextTag]()

// Score counts collected points.
type Score struct {
	Value int
}

var ScoreComponent = NewComponent[Score]()

// GameState is set once when the player is hit and never cleared.
type GameState struct {
	Over bool
}

var GameStateComponent = NewComponent[GameState]()
