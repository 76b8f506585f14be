package game

import (
	"testing"
)

// TestSearchMatchesManhattanOnEmptyGrid checks that both algorithms
// return shortest paths on an obstacle-free grid.
func TestSearchMatchesManhattanOnEmptyGrid(t *testing.T) {
	pairs := []struct {
		name        string
		start, goal Point
	}{
		{"straight right", Point{X: 20, Y: 15}, Point{X: 25, Y: 15}},
		{"straight down", Point{X: 3, Y: 2}, Point{X: 3, Y: 12}},
		{"diagonal", Point{X: 0, Y: 0}, Point{X: 7, Y: 5}},
		{"corner to corner", Point{X: 0, Y: 0}, Point{X: 39, Y: 29}},
		{"adjacent", Point{X: 10, Y: 10}, Point{X: 10, Y: 11}},
	}

	empty := map[Point]bool{}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			want := Manhattan(tc.start, tc.goal) + 1 // cells, not edges

			astar, ok := FindPathAStar(tc.start, tc.goal, empty)
			if !ok {
				t.Fatalf("A* found no path %v -> %v", tc.start, tc.goal)
			}
			if len(astar) != want {
				t.Errorf("A* path has %d cells, want %d", len(astar), want)
			}
			if astar[0] != tc.start || astar[len(astar)-1] != tc.goal {
				t.Errorf("A* path endpoints %v..%v, want %v..%v",
					astar[0], astar[len(astar)-1], tc.start, tc.goal)
			}

			bfs, ok := FindPathBFS(tc.start, tc.goal, empty)
			if !ok {
				t.Fatalf("BFS found no path %v -> %v", tc.start, tc.goal)
			}
			if len(bfs) != len(astar) {
				t.Errorf("BFS path has %d cells, A* has %d", len(bfs), len(astar))
			}
		})
	}
}

// TestSearchStartEqualsGoal checks the single-cell path contract.
func TestSearchStartEqualsGoal(t *testing.T) {
	p := Point{X: 5, Y: 5}
	for name, find := range map[string]func(Point, Point, map[Point]bool) (Path, bool){
		"astar": FindPathAStar,
		"bfs":   FindPathBFS,
	} {
		path, ok := find(p, p, map[Point]bool{})
		if !ok || len(path) != 1 || path[0] != p {
			t.Errorf("%s: start==goal gave (%v, %v), want single-cell path", name, path, ok)
		}
	}
}

// TestSearchUnreachableGoal encloses the goal with obstacles.
func TestSearchUnreachableGoal(t *testing.T) {
	goal := Point{X: 10, Y: 10}
	obstacles := map[Point]bool{}
	for _, d := range Directions {
		obstacles[goal.Add(d)] = true
	}
	start := Point{X: 2, Y: 2}

	if path, ok := FindPathAStar(start, goal, obstacles); ok {
		t.Errorf("A* found a path to an enclosed goal: %v", path)
	}
	if path, ok := FindPathBFS(start, goal, obstacles); ok {
		t.Errorf("BFS found a path to an enclosed goal: %v", path)
	}
}

// TestAStarExactStraightPath pins the canonical scenario: a clear
// horizontal run produces exactly the six straight cells.
func TestAStarExactStraightPath(t *testing.T) {
	start := Point{X: 20, Y: 15}
	goal := Point{X: 25, Y: 15}

	path, ok := FindPathAStar(start, goal, map[Point]bool{})
	if !ok {
		t.Fatal("A* found no path")
	}

	want := Path{
		{X: 20, Y: 15}, {X: 21, Y: 15}, {X: 22, Y: 15},
		{X: 23, Y: 15}, {X: 24, Y: 15}, {X: 25, Y: 15},
	}
	if len(path) != len(want) {
		t.Fatalf("path has %d cells, want %d: %v", len(path), len(want), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

// TestAStarDeterministic runs the same query twice; the tie-break
// rule (f, then heuristic, then insertion order) must make the result
// byte-for-byte stable.
func TestAStarDeterministic(t *testing.T) {
	start := Point{X: 0, Y: 0}
	goal := Point{X: 8, Y: 8}
	obstacles := map[Point]bool{
		{X: 4, Y: 4}: true, {X: 4, Y: 5}: true, {X: 5, Y: 4}: true,
	}

	first, ok1 := FindPathAStar(start, goal, obstacles)
	second, ok2 := FindPathAStar(start, goal, obstacles)
	if !ok1 || !ok2 {
		t.Fatal("expected a path in both runs")
	}
	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("paths diverge at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

// TestSearchRoutesAroundObstacles builds a wall with one gap.
func TestSearchRoutesAroundObstacles(t *testing.T) {
	start := Point{X: 2, Y: 10}
	goal := Point{X: 12, Y: 10}
	obstacles := map[Point]bool{}
	for y := 0; y < 30; y++ {
		if y != 25 {
			obstacles[Point{X: 7, Y: y}] = true
		}
	}

	astar, ok := FindPathAStar(start, goal, obstacles)
	if !ok {
		t.Fatal("A* found no path through the gap")
	}
	bfs, ok := FindPathBFS(start, goal, obstacles)
	if !ok {
		t.Fatal("BFS found no path through the gap")
	}
	if len(astar) != len(bfs) {
		t.Errorf("A* length %d != BFS length %d", len(astar), len(bfs))
	}
	if !astar.Contains(Point{X: 7, Y: 25}) {
		t.Errorf("A* path skipped the only gap: %v", astar)
	}
	for p := range obstacles {
		if astar.Contains(p) {
			t.Errorf("A* path crosses obstacle %v", p)
		}
	}
}

// TestNextStep checks the direction-from-path contract.
func TestNextStep(t *testing.T) {
	path := Path{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 4}}

	dir, ok := NextStep(Point{X: 3, Y: 3}, path)
	if !ok || dir != DirRight {
		t.Errorf("first element: got (%v, %v), want (%v, true)", dir, ok, DirRight)
	}

	dir, ok = NextStep(Point{X: 4, Y: 3}, path)
	if !ok || dir != DirDown {
		t.Errorf("middle element: got (%v, %v), want (%v, true)", dir, ok, DirDown)
	}

	if _, ok := NextStep(Point{X: 4, Y: 4}, path); ok {
		t.Error("last element should yield no direction")
	}

	if _, ok := NextStep(Point{X: 9, Y: 9}, path); ok {
		t.Error("absent position should yield no direction")
	}

	if _, ok := NextStep(Point{X: 1, Y: 1}, Path{{X: 1, Y: 1}}); ok {
		t.Error("single-cell path should yield no direction")
	}

	if _, ok := NextStep(Point{X: 1, Y: 1}, nil); ok {
		t.Error("nil path should yield no direction")
	}
}

// BenchmarkFindPathAStar measures a corner-to-corner search on the
// full grid with a scattered snake body in the way.
func BenchmarkFindPathAStar(b *testing.B) {
	obstacles := map[Point]bool{}
	for i := 0; i < 60; i++ {
		obstacles[Point{X: (i * 7) % 38, Y: (i * 11) % 28}] = true
	}
	start := Point{X: 0, Y: 0}
	goal := Point{X: 39, Y: 29}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindPathAStar(start, goal, obstacles)
	}
}

// BenchmarkFindPathBFS is the same query on the level-order search.
func BenchmarkFindPathBFS(b *testing.B) {
	obstacles := map[Point]bool{}
	for i := 0; i < 60; i++ {
		obstacles[Point{X: (i * 7) % 38, Y: (i * 11) % 28}] = true
	}
	start := Point{X: 0, Y: 0}
	goal := Point{X: 39, Y: 29}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindPathBFS(start, goal, obstacles)
	}
}
