package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/trybee/snake_ai/pkg/config"
	"github.com/trybee/snake_ai/pkg/game"
	"github.com/trybee/snake_ai/pkg/input"
	"github.com/trybee/snake_ai/pkg/logging"
	"github.com/trybee/snake_ai/pkg/renderer"
)

func main() {
	var (
		aiFlag     = flag.Bool("ai", false, "start in AI mode")
		diffFlag   = flag.String("difficulty", "medium", "easy|medium|hard|expert")
		seedFlag   = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
		recordFlag = flag.Bool("record", false, "record sessions to records/")
		dbFlag     = flag.String("db", "data/game.db", "results database path")
	)
	flag.Parse()

	logger, closeLog, err := logging.SetupFile("logs", "snake", slog.LevelDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to set up logging:", err)
		return
	}
	defer closeLog()

	difficulty, err := game.ParseDifficulty(*diffFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := game.OpenStore(*dbFlag)
	if err != nil {
		logger.Warn("results store unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer()
	render.HideCursor()
	defer render.ShowCursor()

	engine := game.NewEngine(logger, rand.New(rand.NewSource(seed)))
	manual := &game.ManualController{}
	var ctrl game.Controller = manual
	var agent *game.Agent
	var recorder *game.Recorder
	defer func() {
		if recorder != nil {
			recorder.Close()
		}
	}()

	aiEnabled := *aiFlag
	tick := 0
	resultSaved := false

	startGame := func() {
		if err := engine.Start(aiEnabled, difficulty); err != nil {
			logger.Error("start rejected", "err", err)
			return
		}
		if aiEnabled {
			agent = game.NewAgent(logger, difficulty, rand.New(rand.NewSource(seed+1)))
			ctrl = &game.AgentController{Agent: agent}
		} else {
			agent = nil
			ctrl = manual
		}
		if *recordFlag {
			if recorder != nil {
				recorder.Close()
			}
			recorder, err = game.NewRecorder(fmt.Sprintf("%d", seed))
			if err != nil {
				logger.Warn("recorder unavailable", "err", err)
				recorder = nil
			}
		}
		tick = 0
		resultSaved = false
	}

	inputChan := inputHandler.GetInputChan()
	ticker := time.NewTicker(config.BaseTick)
	defer ticker.Stop()

	var sinceMove time.Duration

	render.Render(engine.Snapshot())

	for {
		select {
		case ev := <-inputChan:
			if input.IsQuit(ev) {
				fmt.Println("\n  Thanks for playing! 👋")
				return
			}

			switch engine.State() {
			case game.StateMenu:
				if d, ok := input.ParseDifficulty(ev); ok {
					difficulty = d
				}
				if input.IsAIToggle(ev) {
					aiEnabled = !aiEnabled
				}
				if input.IsStart(ev) {
					startGame()
				}
			case game.StatePlaying:
				if dir, ok := input.ParseDirection(ev); ok && !engine.Info().AIEnabled {
					manual.SetDirection(dir)
				}
				if input.IsPause(ev) {
					engine.Pause()
				}
				if input.IsMenu(ev) {
					engine.ReturnToMenu()
				}
			case game.StatePaused:
				if input.IsPause(ev) {
					engine.Resume()
				}
				if input.IsMenu(ev) {
					engine.ReturnToMenu()
				}
			case game.StateGameOver:
				if input.IsMenu(ev) || input.IsStart(ev) {
					engine.ReturnToMenu()
				}
			}
			render.Render(engine.Snapshot())

		case <-ticker.C:
			if engine.State() != game.StatePlaying {
				continue
			}
			sinceMove += config.BaseTick
			if sinceMove < engine.MoveInterval() {
				continue
			}
			sinceMove = 0
			tick++

			if dir, ok := ctrl.NextDirection(engine.Snapshot()); ok {
				engine.ChangeDirection(dir)
			}
			engine.Update()

			snap := engine.Snapshot()
			if recorder != nil {
				rec := game.StepRecord{
					Tick:        tick,
					State:       snap.Info.State,
					Difficulty:  snap.Info.Difficulty.String(),
					Score:       snap.Info.Score,
					Snake:       snap.Snake,
					Food:        snap.Food,
					SpecialFood: snap.SpecialFood,
					Direction:   snap.Direction,
				}
				if agent != nil {
					rec.PathLen = agent.PathLength()
					rec.Replanned = agent.ReplannedLastTick()
				}
				recorder.RecordStep(rec)
			}

			if engine.State() == game.StateGameOver && store != nil && !resultSaved {
				resultSaved = true
				res := game.Result{
					Score:       snap.Info.Score,
					SnakeLength: snap.Info.SnakeLength,
					Difficulty:  snap.Info.Difficulty.String(),
					AIEnabled:   snap.Info.AIEnabled,
				}
				if err := store.SaveResult(res); err != nil {
					logger.Warn("failed to save result", "err", err)
				}
			}

			render.Render(snap)
		}
	}
}
