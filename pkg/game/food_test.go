package game

import (
	"math/rand"
	"testing"

	"github.com/trybee/snake_ai/pkg/config"
)

func TestNewFoodAvoidsExcludedCells(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	exclude := []Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}
	for i := 0; i < 50; i++ {
		f := NewFood(rng, exclude)
		for _, p := range exclude {
			if f.Pos == p {
				t.Fatalf("food spawned on excluded cell %v", p)
			}
		}
		if !InBounds(f.Pos) {
			t.Fatalf("food spawned off-grid at %v", f.Pos)
		}
		if f.Kind != KindNormal || f.Value != 1 {
			t.Fatalf("normal food has kind=%v value=%d", f.Kind, f.Value)
		}
	}
}

func TestNewSpecialFoodFields(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	seen := map[FoodKind]bool{}
	for i := 0; i < 100; i++ {
		f := NewSpecialFood(rng, nil)
		if f.Kind == KindNormal {
			t.Fatal("special food spawned with the normal kind")
		}
		if f.Value != config.SpecialFoodValue {
			t.Fatalf("value = %d, want %d", f.Value, config.SpecialFoodValue)
		}
		if f.TimerFrames != config.SpecialFoodDuration {
			t.Fatalf("timer = %d, want %d", f.TimerFrames, config.SpecialFoodDuration)
		}
		seen[f.Kind] = true
	}
	if len(seen) != len(specialKinds) {
		t.Errorf("saw %d special kinds in 100 draws, want all %d", len(seen), len(specialKinds))
	}
}

func TestRespawnResetsToNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	f := NewSpecialFood(rng, nil)
	f.Respawn(rng, nil)

	if f.Kind != KindNormal {
		t.Errorf("kind = %v after respawn, want %v", f.Kind, KindNormal)
	}
	if f.Value != 1 {
		t.Errorf("value = %d after respawn, want 1", f.Value)
	}
	if f.TimerFrames != 0 {
		t.Errorf("timer = %d after respawn, want 0", f.TimerFrames)
	}
}

func TestRandomFreeCellFallsBackToScan(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	// Exclude everything except one cell; the scan must find it.
	free := Point{X: 17, Y: 23}
	exclude := make([]Point, 0, config.GridWidth*config.GridHeight-1)
	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			if p := (Point{X: x, Y: y}); p != free {
				exclude = append(exclude, p)
			}
		}
	}

	if got := randomFreeCell(rng, exclude); got != free {
		t.Errorf("randomFreeCell = %v, want the only free cell %v", got, free)
	}
}

func TestFoodKindStrings(t *testing.T) {
	cases := map[FoodKind]string{
		KindNormal:      "normal",
		KindSpeedBoost:  "speed_boost",
		KindSlowDown:    "slow_down",
		KindExtraPoints: "extra_points",
		KindInvincible:  "invincible",
		FoodKind(99):    "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("FoodKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
