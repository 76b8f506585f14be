package config

import "time"

// Game window and grid dimensions
const (
	WindowWidth  = 800
	WindowHeight = 600
	GridSize     = 20
	GridWidth    = WindowWidth / GridSize  // 40
	GridHeight   = WindowHeight / GridSize // 30
)

// Special food settings
const (
	SpecialFoodChance   = 0.1 // Spawn probability after a normal food is eaten
	SpecialFoodDuration = 300 // Lifetime in frames
	SpecialFoodValue    = 2
)

// Speed settings. Game speed is in updates per second; special food
// effects adjust it within [MinGameSpeed, MaxGameSpeed].
const (
	MinGameSpeed   = 5
	MaxGameSpeed   = 30
	SpeedIncrement = 2
	ExtraPoints    = 10
)

// BaseTick is the resolution of the control loop. The engine's current
// game speed decides how many base ticks pass between updates.
const BaseTick = 10 * time.Millisecond

// Emoji characters for terminal rendering
const (
	CharEmpty   = "  " // Two spaces to match emoji width
	CharWall    = "⬜"
	CharHead    = "🟢"
	CharBody    = "🟩"
	CharFood    = "🔴"
	CharSpecial = "⭐"
	CharCrash   = "💥"
)
