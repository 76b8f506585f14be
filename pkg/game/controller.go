package game

// Controller is the brain of a session: something that can produce a
// direction for the current tick. Both front ends route through it so
// human input and the agent share one entry point into the engine.
type Controller interface {
	// NextDirection returns the direction for this tick. ok is false
	// when there is nothing to apply (e.g. no key pressed).
	NextDirection(snap Snapshot) (dir Point, ok bool)
}

// ManualController relays the latest direction request from an input
// device. Each request is applied once.
type ManualController struct {
	pending    Point
	hasPending bool
}

func (c *ManualController) NextDirection(Snapshot) (Point, bool) {
	if !c.hasPending {
		return Point{}, false
	}
	c.hasPending = false
	return c.pending, true
}

// SetDirection records a direction request from the input layer.
func (c *ManualController) SetDirection(dir Point) {
	c.pending = dir
	c.hasPending = true
}

// AgentController drives a session with the search-based agent.
type AgentController struct {
	Agent *Agent
}

func (c *AgentController) NextDirection(snap Snapshot) (Point, bool) {
	var special *Point
	if snap.SpecialFood != nil {
		pos := snap.SpecialFood.Pos
		special = &pos
	}
	return c.Agent.NextMove(snap.Snake, snap.Food, special), true
}
