package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/trybee/snake_ai/pkg/config"
)

// Engine owns the entities and the game state machine. All mutation
// goes through its methods, one synchronous call at a time; there is
// no internal locking.
type Engine struct {
	snake       *Snake
	food        Food
	specialFood *Food
	score       int
	state       State
	aiEnabled   bool
	difficulty  Difficulty
	gameSpeed   int
	rng         *rand.Rand
	log         *slog.Logger
}

// NewEngine creates an engine in the menu state. A nil rng gets a
// time-seeded source; tests pass a fixed seed for reproducibility.
func NewEngine(log *slog.Logger, rng *rand.Rand) *Engine {
	if log == nil {
		log = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		state:      StateMenu,
		difficulty: DifficultyMedium,
		gameSpeed:  DifficultyMedium.GameSpeed(),
		rng:        rng,
		log:        log,
	}
	e.resetEntities()
	return e
}

func (e *Engine) resetEntities() {
	e.snake = NewSnake(Point{X: config.GridWidth / 2, Y: config.GridHeight / 2})
	e.food = NewFood(e.rng, e.snake.Body)
	e.score = 0
	e.specialFood = nil
}

// Start begins a new session. An unrecognized difficulty is rejected
// and leaves the engine untouched.
func (e *Engine) Start(aiEnabled bool, difficulty Difficulty) error {
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty: %d", int(difficulty))
	}

	e.resetEntities()
	e.aiEnabled = aiEnabled
	e.difficulty = difficulty
	e.gameSpeed = difficulty.GameSpeed()
	e.state = StatePlaying

	e.log.Info("game started",
		"ai", aiEnabled,
		"difficulty", difficulty.String(),
		"speed", e.gameSpeed)
	return nil
}

// Pause suspends a running game.
func (e *Engine) Pause() {
	if e.state == StatePlaying {
		e.state = StatePaused
		e.log.Info("game paused")
	}
}

// Resume continues a paused game.
func (e *Engine) Resume() {
	if e.state == StatePaused {
		e.state = StatePlaying
		e.log.Info("game resumed")
	}
}

// ReturnToMenu abandons the current session.
func (e *Engine) ReturnToMenu() {
	if e.state != StateMenu {
		e.state = StateMenu
		e.log.Info("returned to menu", "finalScore", e.score)
	}
}

// ChangeDirection forwards a direction request to the snake. Both
// human input and the agent enter through here, and only while
// playing.
func (e *Engine) ChangeDirection(d Point) {
	if e.state == StatePlaying {
		e.snake.ChangeDirection(d)
	}
}

// Update advances the game by one tick. A panic inside the tick would
// leave entities half-updated, so it is treated as fatal to the
// session: the state machine lands on GAME_OVER and the process keeps
// running.
func (e *Engine) Update() {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("engine update panicked, ending session", "panic", r)
			e.state = StateGameOver
		}
	}()

	if e.state != StatePlaying {
		return
	}

	e.snake.Move()

	if e.snake.HitsWallOrSelf() {
		e.log.Info("game over", "score", e.score, "length", e.snake.Length())
		e.state = StateGameOver
		return
	}

	head := e.snake.Head()
	if e.food.IsEaten(head) {
		e.eatFood()
	}
	if e.specialFood != nil && e.specialFood.IsEaten(head) {
		e.eatSpecialFood()
	}
	e.tickSpecialFood()
}

func (e *Engine) eatFood() {
	e.snake.Grow()
	e.score += e.food.Value
	e.log.Debug("food eaten", "pos", e.food.Pos, "score", e.score)

	exclude := append([]Point{}, e.snake.Body...)
	if e.specialFood != nil {
		exclude = append(exclude, e.specialFood.Pos)
	}
	e.food.Respawn(e.rng, exclude)

	if e.specialFood == nil && e.rng.Float64() < config.SpecialFoodChance {
		e.spawnSpecialFood()
	}
}

func (e *Engine) spawnSpecialFood() {
	exclude := append([]Point{}, e.snake.Body...)
	exclude = append(exclude, e.food.Pos)
	sf := NewSpecialFood(e.rng, exclude)
	e.specialFood = &sf
	e.log.Debug("special food spawned", "kind", sf.Kind.String(), "pos", sf.Pos)
}

func (e *Engine) eatSpecialFood() {
	sf := e.specialFood
	e.score += sf.Value
	e.log.Info("special food eaten", "kind", sf.Kind.String(), "score", e.score)
	e.applyEffect(sf.Kind)
	e.specialFood = nil
}

// applyEffect applies the categorical effect of a special food.
// Invincible is recorded as an effect but does not suppress collision
// detection; it is reserved.
func (e *Engine) applyEffect(kind FoodKind) {
	switch kind {
	case KindSpeedBoost:
		e.gameSpeed = min(e.gameSpeed+config.SpeedIncrement, config.MaxGameSpeed)
	case KindSlowDown:
		e.gameSpeed = max(e.gameSpeed-config.SpeedIncrement, config.MinGameSpeed)
	case KindExtraPoints:
		e.score += config.ExtraPoints
	}
}

func (e *Engine) tickSpecialFood() {
	if e.specialFood == nil {
		return
	}
	e.specialFood.TimerFrames--
	if e.specialFood.TimerFrames <= 0 {
		e.log.Debug("special food expired", "kind", e.specialFood.Kind.String())
		e.specialFood = nil
	}
}

// Info returns the read-only engine summary.
func (e *Engine) Info() Info {
	return Info{
		Score:             e.score,
		SnakeLength:       e.snake.Length(),
		State:             e.state.String(),
		AIEnabled:         e.aiEnabled,
		Difficulty:        e.difficulty,
		SpecialFoodActive: e.specialFood != nil,
		GameSpeed:         e.gameSpeed,
	}
}

// State returns the current state machine value.
func (e *Engine) State() State {
	return e.state
}

// Snapshot copies the entity positions for rendering or transport.
func (e *Engine) Snapshot() Snapshot {
	snake := make([]Point, len(e.snake.Body))
	copy(snake, e.snake.Body)

	snap := Snapshot{
		Info:      e.Info(),
		Snake:     snake,
		Direction: e.snake.Direction,
		Food:      e.food.Pos,
	}
	if e.specialFood != nil {
		sf := *e.specialFood
		snap.SpecialFood = &sf
	}
	return snap
}

// SpecialFoodPosition returns the active special food cell, if any.
func (e *Engine) SpecialFoodPosition() (Point, bool) {
	if e.specialFood == nil {
		return Point{}, false
	}
	return e.specialFood.Pos, true
}

// FoodPosition returns the normal food cell.
func (e *Engine) FoodPosition() Point {
	return e.food.Pos
}

// SnakeBody returns a copy of the snake's segments, head first.
func (e *Engine) SnakeBody() []Point {
	body := make([]Point, len(e.snake.Body))
	copy(body, e.snake.Body)
	return body
}

// MoveInterval converts the current game speed into a tick interval.
func (e *Engine) MoveInterval() time.Duration {
	return time.Second / time.Duration(e.gameSpeed)
}
