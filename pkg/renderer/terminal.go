package renderer

import (
	"fmt"
	"strings"

	"github.com/trybee/snake_ai/pkg/config"
	"github.com/trybee/snake_ai/pkg/game"
)

// TerminalRenderer draws snapshots with ANSI escapes and emoji cells.
type TerminalRenderer struct {
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
	cellSpecial
	cellCrash
)

// NewTerminalRenderer pre-allocates the board to reduce GC pressure.
func NewTerminalRenderer() *TerminalRenderer {
	board := make([][]int, config.GridHeight)
	for i := range board {
		board[i] = make([]int, config.GridWidth)
	}
	return &TerminalRenderer{board: board}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// setCell writes a board cell, ignoring off-grid positions. The
// game-over snapshot after a wall collision carries the head one cell
// past the edge; that head is clamped back onto the board and drawn as
// a crash.
func (r *TerminalRenderer) setCell(p game.Point, cell int) {
	if game.InBounds(p) {
		r.board[p.Y][p.X] = cell
		return
	}
	if cell != cellHead {
		return
	}
	x := min(max(p.X, 0), config.GridWidth-1)
	y := min(max(p.Y, 0), config.GridHeight-1)
	r.board[y][x] = cellCrash
}

// Render draws one snapshot.
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	r.clearScreen()
	r.buffer.Reset()

	r.buffer.WriteString("\n  🐍 AI SNAKE 🐍\n")

	switch snap.Info.State {
	case game.StateMenu.String():
		r.renderMenu(snap)
	default:
		r.renderBoard(snap)
	}

	fmt.Print(r.buffer.String())
}

func (r *TerminalRenderer) renderMenu(snap game.Snapshot) {
	mode := "manual"
	if snap.Info.AIEnabled {
		mode = "AI"
	}
	r.buffer.WriteString("\n  Enter/Space: start game\n")
	r.buffer.WriteString(fmt.Sprintf("  T: toggle mode (current: %s)\n", mode))
	r.buffer.WriteString(fmt.Sprintf("  1-4: difficulty (current: %s)\n", snap.Info.Difficulty))
	r.buffer.WriteString("  Q: quit\n")
}

func (r *TerminalRenderer) renderBoard(snap game.Snapshot) {
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	r.setCell(snap.Food, cellFood)
	if snap.SpecialFood != nil {
		r.setCell(snap.SpecialFood.Pos, cellSpecial)
	}
	// Head last so a crash cell is not hidden by the segment behind it.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.setCell(snap.Snake[i], cellHead)
		} else {
			r.setCell(snap.Snake[i], cellBody)
		}
	}

	mode := "manual"
	if snap.Info.AIEnabled {
		mode = "AI"
	}
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Length: %d  |  Mode: %s  |  Difficulty: %s  |  Speed: %d\n",
		snap.Info.Score, snap.Info.SnakeLength, mode, snap.Info.Difficulty, snap.Info.GameSpeed))
	if snap.SpecialFood != nil {
		r.buffer.WriteString(fmt.Sprintf("  ⭐ %s (%d frames left)\n",
			snap.SpecialFood.Kind.EffectLabel(), snap.SpecialFood.TimerFrames))
	} else {
		r.buffer.WriteString("\n")
	}
	r.buffer.WriteString("\n")

	// Top border
	r.buffer.WriteString("  ")
	for x := 0; x < config.GridWidth+2; x++ {
		r.buffer.WriteString(config.CharWall)
	}
	r.buffer.WriteString("\n")

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		r.buffer.WriteString(config.CharWall)
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellSpecial:
				r.buffer.WriteString(config.CharSpecial)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString(config.CharWall)
		r.buffer.WriteString("\n")
	}

	// Bottom border
	r.buffer.WriteString("  ")
	for x := 0; x < config.GridWidth+2; x++ {
		r.buffer.WriteString(config.CharWall)
	}
	r.buffer.WriteString("\n")

	r.buffer.WriteString("\n  WASD/Arrows: move  |  P: pause/resume  |  M: menu  |  Q: quit\n")

	switch snap.Info.State {
	case game.StatePaused.String():
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	case game.StateGameOver.String():
		r.buffer.WriteString("\n  💀 GAME OVER! Press M for menu or Q to quit\n")
	}
}
