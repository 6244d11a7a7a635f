package common

// Playfield size in pixels. The window may be scaled but the logical screen
// is always this size.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Gravity is the default downward acceleration in pixels per second squared.
const Gravity = 300.0

// TPS is the fixed simulation rate.
const TPS = 60
