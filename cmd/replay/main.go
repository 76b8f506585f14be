package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/trybee/snake_ai/pkg/game"
	"github.com/trybee/snake_ai/pkg/renderer"
)

// Replays a recorded session (records/*.jsonl) in the terminal.
func main() {
	var (
		file  = flag.String("file", "", "record file to replay")
		speed = flag.Float64("speed", 1.0, "playback speed multiplier")
		fps   = flag.Int("fps", 15, "base playback frames per second")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -file records/game_<session>_<ts>.jsonl [-speed 2]")
		os.Exit(1)
	}

	records, err := game.ReadRecords(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to read records:", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "Record file is empty")
		os.Exit(1)
	}

	render := renderer.NewTerminalRenderer()
	render.HideCursor()
	defer render.ShowCursor()

	interval := time.Duration(float64(time.Second) / (float64(*fps) * *speed))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for _, rec := range records {
		render.Render(snapshotFromRecord(rec))
		<-ticker.C
	}

	last := records[len(records)-1]
	fmt.Printf("\n  📼 Replay finished: %d ticks, final score %d, length %d\n",
		last.Tick, last.Score, len(last.Snake))
}

// snapshotFromRecord rebuilds a renderable snapshot from a step. Files
// recorded before the difficulty field keep the zero value; the parse
// failure is ignored and the status line shows the raw number.
func snapshotFromRecord(rec game.StepRecord) game.Snapshot {
	difficulty, _ := game.ParseDifficulty(rec.Difficulty)
	return game.Snapshot{
		Info: game.Info{
			Score:             rec.Score,
			SnakeLength:       len(rec.Snake),
			State:             rec.State,
			Difficulty:        difficulty,
			SpecialFoodActive: rec.SpecialFood != nil,
		},
		Snake:       rec.Snake,
		Direction:   rec.Direction,
		Food:        rec.Food,
		SpecialFood: rec.SpecialFood,
	}
}
