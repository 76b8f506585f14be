package game

// Snake holds the ordered body segments, head first. Length is always
// at least 1.
type Snake struct {
	Body        []Point
	Direction   Point
	growPending bool
}

// NewSnake creates a snake of length 1 at start, facing right.
func NewSnake(start Point) *Snake {
	return &Snake{
		Body:      []Point{start},
		Direction: DirRight,
	}
}

// Head returns the current head position.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Length returns the number of body segments.
func (s *Snake) Length() int {
	return len(s.Body)
}

// Move advances the head one cell in the current direction. The tail
// is kept when a growth is pending, consuming the flag. Bounds and
// self-collision are checked separately by HitsWallOrSelf.
func (s *Snake) Move() {
	newHead := s.Head().Add(s.Direction)
	s.Body = append([]Point{newHead}, s.Body...)
	if s.growPending {
		s.growPending = false
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// ChangeDirection replaces the direction unless d is the exact
// opposite, which would reverse the snake into itself. Returns whether
// the direction was accepted.
func (s *Snake) ChangeDirection(d Point) bool {
	if d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// Grow marks the snake to keep its tail on the next Move.
func (s *Snake) Grow() {
	s.growPending = true
}

// HitsWallOrSelf reports whether the head left the grid or overlaps
// another body segment.
func (s *Snake) HitsWallOrSelf() bool {
	head := s.Head()
	if !InBounds(head) {
		return true
	}
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// ObstacleSet returns the body minus the head as a blocked-cell set
// for the pathfinder. It is rebuilt every call, never cached.
func (s *Snake) ObstacleSet() map[Point]bool {
	obstacles := make(map[Point]bool, len(s.Body)-1)
	for _, p := range s.Body[1:] {
		obstacles[p] = true
	}
	return obstacles
}
