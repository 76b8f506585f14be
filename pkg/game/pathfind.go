package game

import "container/heap"

// Path is an ordered cell sequence from start to goal inclusive.
type Path []Point

// Contains reports whether p appears anywhere in the path.
func (p Path) Contains(pos Point) bool {
	for _, c := range p {
		if c == pos {
			return true
		}
	}
	return false
}

// frontierItem is an open-set entry. seq records insertion order so
// that equal-cost entries pop deterministically.
type frontierItem struct {
	pos Point
	f   int
	h   int
	seq int
}

type frontier []frontierItem

func (q frontier) Len() int { return len(q) }

// Less orders by f, then heuristic, then insertion order, so equal-cost
// searches pop in a fixed order. Tests depend on it.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(frontierItem)) }

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// FindPathAStar searches the 4-connected unit-cost grid with Manhattan
// distance as the heuristic. Obstacle cells and out-of-bounds cells
// are blocked. Returns the path from start to goal inclusive, or
// ok=false when the goal is unreachable.
func FindPathAStar(start, goal Point, obstacles map[Point]bool) (Path, bool) {
	if start == goal {
		return Path{start}, true
	}

	open := &frontier{}
	heap.Init(open)
	seq := 0
	h0 := Manhattan(start, goal)
	heap.Push(open, frontierItem{pos: start, f: h0, h: h0, seq: seq})

	cameFrom := make(map[Point]Point)
	gScore := map[Point]int{start: 0}
	closed := make(map[Point]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem)
		if closed[current.pos] {
			continue // Stale duplicate entry
		}
		if current.pos == goal {
			return reconstructPath(cameFrom, current.pos), true
		}
		closed[current.pos] = true

		for _, dir := range Directions {
			neighbor := current.pos.Add(dir)
			if !InBounds(neighbor) || closed[neighbor] || obstacles[neighbor] {
				continue
			}

			tentative := gScore[current.pos] + 1
			if best, seen := gScore[neighbor]; seen && tentative >= best {
				continue
			}

			cameFrom[neighbor] = current.pos
			gScore[neighbor] = tentative
			h := Manhattan(neighbor, goal)
			seq++
			heap.Push(open, frontierItem{pos: neighbor, f: tentative + h, h: h, seq: seq})
		}
	}

	return nil, false
}

// FindPathBFS explores in strict level order, returning the first path
// that reaches the goal. On a unit-cost grid its length matches A*'s.
func FindPathBFS(start, goal Point, obstacles map[Point]bool) (Path, bool) {
	if start == goal {
		return Path{start}, true
	}

	type node struct {
		pos  Point
		path Path
	}
	queue := []node{{pos: start, path: Path{start}}}
	visited := map[Point]bool{start: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range Directions {
			neighbor := current.pos.Add(dir)
			if neighbor == goal {
				result := make(Path, len(current.path), len(current.path)+1)
				copy(result, current.path)
				return append(result, neighbor), true
			}
			if !InBounds(neighbor) || visited[neighbor] || obstacles[neighbor] {
				continue
			}
			visited[neighbor] = true
			next := make(Path, len(current.path), len(current.path)+1)
			copy(next, current.path)
			queue = append(queue, node{pos: neighbor, path: append(next, neighbor)})
		}
	}

	return nil, false
}

// NextStep locates current in path and returns the unit vector to the
// following element. ok is false when current is absent, last, or the
// path is shorter than two cells.
func NextStep(current Point, path Path) (Point, bool) {
	if len(path) < 2 {
		return Point{}, false
	}
	for i, pos := range path {
		if pos == current {
			if i < len(path)-1 {
				next := path[i+1]
				return Point{X: next.X - current.X, Y: next.Y - current.Y}, true
			}
			return Point{}, false
		}
	}
	return Point{}, false
}

func reconstructPath(cameFrom map[Point]Point, current Point) Path {
	path := Path{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
