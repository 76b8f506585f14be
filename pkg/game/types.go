package game

import (
	"fmt"
	"math"

	"github.com/trybee/snake_ai/pkg/config"
)

// Point represents a coordinate on the game grid
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction unit vectors. Directions fixes the enumeration order used
// by search and safety checks; the order decides first-discovery and
// tie-breaking, so it must stay UP, DOWN, LEFT, RIGHT.
var (
	DirUp    = Point{X: 0, Y: -1}
	DirDown  = Point{X: 0, Y: 1}
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}

	Directions = [4]Point{DirUp, DirDown, DirLeft, DirRight}
)

// Add returns p shifted by the unit vector d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Opposite returns the reverse of a direction vector.
func (p Point) Opposite() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// InBounds reports whether p lies on the grid.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < config.GridWidth && p.Y >= 0 && p.Y < config.GridHeight
}

// Manhattan is the 4-connected grid distance, the A* heuristic.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Euclidean is the straight-line distance, used by the survival
// fallback to pick the most distant free cell.
func Euclidean(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// State is the engine-wide game state
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Difficulty selects the AI profile and the game speed
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
	DifficultyExpert
)

// Valid reports whether d is one of the enumerated difficulty levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyExpert
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyExpert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a client-facing name back to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "expert":
		return DifficultyExpert, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

// RiskTolerance returns the difficulty-scaled probability parameter.
// Higher values mean less injected randomness in the agent.
func (d Difficulty) RiskTolerance() float64 {
	switch d {
	case DifficultyEasy:
		return 0.3
	case DifficultyHard:
		return 0.7
	case DifficultyExpert:
		return 0.9
	default:
		return 0.5
	}
}

// ThinkingDepth is reserved for difficulty-scaled lookahead. The
// search does not consult it yet.
func (d Difficulty) ThinkingDepth() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	case DifficultyExpert:
		return 4
	default:
		return 2
	}
}

// GameSpeed returns updates per second for the difficulty.
func (d Difficulty) GameSpeed() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return 20
	case DifficultyExpert:
		return 25
	default:
		return 15
	}
}

// Info is the read-only engine summary exposed to collaborators
type Info struct {
	Score             int        `json:"score"`
	SnakeLength       int        `json:"snakeLength"`
	State             string     `json:"state"`
	AIEnabled         bool       `json:"aiEnabled"`
	Difficulty        Difficulty `json:"difficulty"`
	SpecialFoodActive bool       `json:"specialFoodActive"`
	GameSpeed         int        `json:"gameSpeed"`
}

// Snapshot is the per-tick view handed to renderers and clients. The
// slices are copies; mutating them never reaches the engine.
type Snapshot struct {
	Info        Info    `json:"info"`
	Snake       []Point `json:"snake"`
	Direction   Point   `json:"direction"`
	Food        Point   `json:"food"`
	SpecialFood *Food   `json:"specialFood,omitempty"`
}
