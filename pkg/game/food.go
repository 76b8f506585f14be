package game

import (
	"math/rand"

	"github.com/trybee/snake_ai/pkg/config"
)

// FoodKind tags a food item. Normal food is the regular target;
// the other kinds are timed special foods with a categorical effect.
type FoodKind int

const (
	KindNormal FoodKind = iota
	KindSpeedBoost
	KindSlowDown
	KindExtraPoints
	KindInvincible
)

// specialKinds is the fixed set the engine draws from when spawning a
// special food.
var specialKinds = [4]FoodKind{KindSpeedBoost, KindSlowDown, KindExtraPoints, KindInvincible}

func (k FoodKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindSpeedBoost:
		return "speed_boost"
	case KindSlowDown:
		return "slow_down"
	case KindExtraPoints:
		return "extra_points"
	case KindInvincible:
		return "invincible"
	default:
		return "unknown"
	}
}

// EffectLabel is the human-readable effect description, used only by
// presentation.
func (k FoodKind) EffectLabel() string {
	switch k {
	case KindSpeedBoost:
		return "speed up"
	case KindSlowDown:
		return "slow down"
	case KindExtraPoints:
		return "extra points"
	case KindInvincible:
		return "invincible"
	default:
		return "no effect"
	}
}

// Food is a tagged variant: a normal food, or a special food with a
// countdown. TimerFrames is meaningful only when Kind != KindNormal.
type Food struct {
	Pos         Point    `json:"pos"`
	Value       int      `json:"value"`
	Kind        FoodKind `json:"kind"`
	TimerFrames int      `json:"timerFrames,omitempty"`
}

// NewFood creates a normal food at a random cell excluding the given
// positions.
func NewFood(rng *rand.Rand, exclude []Point) Food {
	return Food{
		Pos:   randomFreeCell(rng, exclude),
		Value: 1,
		Kind:  KindNormal,
	}
}

// NewSpecialFood creates a special food of a random kind with the
// fixed value and countdown.
func NewSpecialFood(rng *rand.Rand, exclude []Point) Food {
	return Food{
		Pos:         randomFreeCell(rng, exclude),
		Value:       config.SpecialFoodValue,
		Kind:        specialKinds[rng.Intn(len(specialKinds))],
		TimerFrames: config.SpecialFoodDuration,
	}
}

// Respawn moves the food to a fresh random cell and resets it to the
// normal kind and default value.
func (f *Food) Respawn(rng *rand.Rand, exclude []Point) {
	f.Pos = randomFreeCell(rng, exclude)
	f.Value = 1
	f.Kind = KindNormal
	f.TimerFrames = 0
}

// IsEaten reports whether the snake head sits on the food.
func (f *Food) IsEaten(head Point) bool {
	return head == f.Pos
}

// randomFreeCell resamples until it finds a cell outside exclude. A
// bounded number of draws keeps the loop finite on a crowded grid;
// after that a linear scan picks the first free cell.
func randomFreeCell(rng *rand.Rand, exclude []Point) Point {
	excluded := make(map[Point]bool, len(exclude))
	for _, p := range exclude {
		excluded[p] = true
	}

	for attempts := 0; attempts < 200; attempts++ {
		pos := Point{X: rng.Intn(config.GridWidth), Y: rng.Intn(config.GridHeight)}
		if !excluded[pos] {
			return pos
		}
	}

	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			pos := Point{X: x, Y: y}
			if !excluded[pos] {
				return pos
			}
		}
	}

	// Grid completely covered; the caller's session is over anyway.
	return Point{}
}
