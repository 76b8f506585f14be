package input

import (
	"github.com/eiannone/keyboard"

	"github.com/trybee/snake_ai/pkg/game"
)

// KeyboardHandler streams raw key events from the terminal.
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseDirection parses a key input into a grid direction.
func ParseDirection(input KeyInput) (dir game.Point, isValid bool) {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.DirUp, true
	case keyboard.KeyArrowDown:
		return game.DirDown, true
	case keyboard.KeyArrowLeft:
		return game.DirLeft, true
	case keyboard.KeyArrowRight:
		return game.DirRight, true
	}

	switch input.Char {
	case 'w', 'W':
		return game.DirUp, true
	case 's', 'S':
		return game.DirDown, true
	case 'a', 'A':
		return game.DirLeft, true
	case 'd', 'D':
		return game.DirRight, true
	}

	return game.Point{}, false
}

// ParseDifficulty maps the number row onto difficulty levels.
func ParseDifficulty(input KeyInput) (game.Difficulty, bool) {
	switch input.Char {
	case '1':
		return game.DifficultyEasy, true
	case '2':
		return game.DifficultyMedium, true
	case '3':
		return game.DifficultyHard, true
	case '4':
		return game.DifficultyExpert, true
	}
	return 0, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyEsc
}

// IsStart checks for the start-game command (menu only).
func IsStart(input KeyInput) bool {
	return input.Key == keyboard.KeyEnter || input.Char == ' '
}

// IsPause checks if the input is a pause/resume command
func IsPause(input KeyInput) bool {
	return input.Char == 'p' || input.Char == 'P'
}

// IsMenu checks for the return-to-menu command.
func IsMenu(input KeyInput) bool {
	return input.Char == 'm' || input.Char == 'M'
}

// IsAIToggle checks for the AI mode toggle (applies to the next game).
func IsAIToggle(input KeyInput) bool {
	return input.Char == 't' || input.Char == 'T'
}
