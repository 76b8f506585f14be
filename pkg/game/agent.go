package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/trybee/snake_ai/pkg/config"
)

// minPathLen is the replan threshold: a stored path shorter than this
// is treated as stale or blocked.
const minPathLen = 3

// Agent plans a route to the food each tick and emits one direction.
// It owns only its path cache and difficulty profile; everything else
// is read from the per-tick arguments.
type Agent struct {
	difficulty    Difficulty
	riskTolerance float64
	thinkingDepth int

	currentPath  Path
	lastFood     Point
	haveLastFood bool
	replanned    bool

	rng *rand.Rand
	log *slog.Logger
}

// NewAgent creates an agent with the given difficulty profile. A nil
// rng gets a time-seeded source.
func NewAgent(log *slog.Logger, difficulty Difficulty, rng *rand.Rand) *Agent {
	if log == nil {
		log = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if !difficulty.Valid() {
		difficulty = DifficultyMedium
	}
	return &Agent{
		difficulty:    difficulty,
		riskTolerance: difficulty.RiskTolerance(),
		thinkingDepth: difficulty.ThinkingDepth(),
		rng:           rng,
		log:           log,
	}
}

// SetDifficulty updates the profile and discards the cached path so
// the next tick replans.
func (a *Agent) SetDifficulty(difficulty Difficulty) {
	if !difficulty.Valid() {
		difficulty = DifficultyMedium
	}
	a.difficulty = difficulty
	a.riskTolerance = difficulty.RiskTolerance()
	a.thinkingDepth = difficulty.ThinkingDepth()
	a.currentPath = nil
}

// PathLength reports the cached path length, for recording.
func (a *Agent) PathLength() int {
	return len(a.currentPath)
}

// ReplannedLastTick reports whether the previous NextMove call rebuilt
// the path, for recording.
func (a *Agent) ReplannedLastTick() bool {
	return a.replanned
}

// NextMove returns the direction for this tick. It never fails: any
// internal fault degrades to a safe fixed direction so the control
// loop keeps running.
func (a *Agent) NextMove(snakeBody []Point, foodPos Point, specialFoodPos *Point) (dir Point) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("agent decision panicked, using fallback direction", "panic", r)
			dir = DirUp
		}
	}()

	if len(snakeBody) == 0 {
		a.log.Warn("empty snake body, returning default direction")
		return DirRight
	}

	head := snakeBody[0]
	obstacles := make(map[Point]bool, len(snakeBody)-1)
	for _, p := range snakeBody[1:] {
		obstacles[p] = true
	}

	a.replanned = a.shouldReplan(head, foodPos)
	if a.replanned {
		a.plan(head, foodPos, specialFoodPos, obstacles)
	}

	next, ok := NextStep(head, a.currentPath)
	if !ok || !isSafeMove(head, next, obstacles) {
		next = a.safeMove(head, obstacles)
	}

	// Controlled unpredictability, more likely at lower difficulty.
	if a.rng.Float64() < (1-a.riskTolerance)*0.1 {
		next = a.randomSafeMove(next, head, obstacles)
	}

	return next
}

// shouldReplan checks the replan triggers: any one suffices.
func (a *Agent) shouldReplan(head, foodPos Point) bool {
	if len(a.currentPath) == 0 {
		return true
	}
	if !a.haveLastFood || foodPos != a.lastFood {
		return true
	}
	if !a.currentPath.Contains(head) {
		return true
	}
	if len(a.currentPath) < minPathLen {
		return true
	}
	return false
}

// plan stores a fresh path toward the special food when present, else
// the normal food. A* first, BFS second, survival path last.
func (a *Agent) plan(head, foodPos Point, specialFoodPos *Point, obstacles map[Point]bool) {
	target := foodPos
	if specialFoodPos != nil {
		target = *specialFoodPos
	}

	path, ok := FindPathAStar(head, target, obstacles)
	if !ok {
		path, ok = FindPathBFS(head, target, obstacles)
	}
	if !ok {
		a.log.Debug("no path to food, taking survival path", "head", head, "target", target)
		path = a.survivalPath(head, obstacles)
	}

	a.currentPath = path
	a.lastFood = foodPos
	a.haveLastFood = true
}

// survivalPath heads for the free cell farthest from the head by
// Euclidean distance, ties broken by scan order. When even that is
// unreachable the path degrades to the head cell alone.
func (a *Agent) survivalPath(head Point, obstacles map[Point]bool) Path {
	best := head
	maxDistance := 0.0
	for x := 0; x < config.GridWidth; x++ {
		for y := 0; y < config.GridHeight; y++ {
			pos := Point{X: x, Y: y}
			if obstacles[pos] {
				continue
			}
			if d := Euclidean(head, pos); d > maxDistance {
				maxDistance = d
				best = pos
			}
		}
	}

	if path, ok := FindPathAStar(head, best, obstacles); ok {
		return path
	}
	return Path{head}
}

// safeMove picks uniformly among the immediately safe directions. With
// nothing safe left the game is lost either way; UP is the fixed
// answer.
func (a *Agent) safeMove(head Point, obstacles map[Point]bool) Point {
	var safe []Point
	for _, d := range Directions {
		if isSafeMove(head, d, obstacles) {
			safe = append(safe, d)
		}
	}
	if len(safe) == 0 {
		return DirUp
	}
	return safe[a.rng.Intn(len(safe))]
}

// randomSafeMove overrides the chosen direction with a uniform pick
// among the safe ones, unless there is at most one option.
func (a *Agent) randomSafeMove(current, head Point, obstacles map[Point]bool) Point {
	var safe []Point
	for _, d := range Directions {
		if isSafeMove(head, d, obstacles) {
			safe = append(safe, d)
		}
	}
	if len(safe) <= 1 {
		return current
	}
	return safe[a.rng.Intn(len(safe))]
}

// isSafeMove reports whether one step from head in direction d stays
// on the grid and off the obstacle set.
func isSafeMove(head, d Point, obstacles map[Point]bool) bool {
	next := head.Add(d)
	return InBounds(next) && !obstacles[next]
}
