package game

import "testing"

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Point]Point{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b Point
		want int
	}{
		{Point{X: 0, Y: 0}, Point{X: 0, Y: 0}, 0},
		{Point{X: 0, Y: 0}, Point{X: 3, Y: 4}, 7},
		{Point{X: 5, Y: 5}, Point{X: 2, Y: 9}, 7},
		{Point{X: 10, Y: 0}, Point{X: 0, Y: 10}, 20},
	}
	for _, tc := range cases {
		if got := Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := Manhattan(tc.b, tc.a); got != tc.want {
			t.Errorf("Manhattan(%v, %v) = %d, want %d (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestInBounds(t *testing.T) {
	valid := []Point{{X: 0, Y: 0}, {X: 39, Y: 29}, {X: 20, Y: 15}}
	invalid := []Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 40, Y: 0}, {X: 0, Y: 30}}

	for _, p := range valid {
		if !InBounds(p) {
			t.Errorf("InBounds(%v) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if InBounds(p) {
			t.Errorf("InBounds(%v) = true, want false", p)
		}
	}
}

func TestDifficultyProfiles(t *testing.T) {
	cases := []struct {
		d     Difficulty
		risk  float64
		depth int
		speed int
	}{
		{DifficultyEasy, 0.3, 1, 10},
		{DifficultyMedium, 0.5, 2, 15},
		{DifficultyHard, 0.7, 3, 20},
		{DifficultyExpert, 0.9, 4, 25},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := tc.d.RiskTolerance(); got != tc.risk {
				t.Errorf("RiskTolerance() = %v, want %v", got, tc.risk)
			}
			if got := tc.d.ThinkingDepth(); got != tc.depth {
				t.Errorf("ThinkingDepth() = %d, want %d", got, tc.depth)
			}
			if got := tc.d.GameSpeed(); got != tc.speed {
				t.Errorf("GameSpeed() = %d, want %d", got, tc.speed)
			}
		})
	}
}

func TestParseDifficultyRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert} {
		got, err := ParseDifficulty(d.String())
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", d.String(), got, d)
		}
	}

	if _, err := ParseDifficulty("brutal"); err == nil {
		t.Error("ParseDifficulty accepted an unknown name")
	}
}

func TestStateStrings(t *testing.T) {
	cases := map[State]string{
		StateMenu:     "menu",
		StatePlaying:  "playing",
		StatePaused:   "paused",
		StateGameOver: "game_over",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
