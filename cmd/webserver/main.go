package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/trybee/snake_ai/pkg/config"
	"github.com/trybee/snake_ai/pkg/game"
	"github.com/trybee/snake_ai/pkg/logging"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// GameServer owns one client's session: its engine, agent, and tick
// loop.
type GameServer struct {
	// mu serializes the read goroutine's actions against the tick
	// loop; the engine expects one caller at a time.
	mu sync.Mutex

	engine     *game.Engine
	agent      *game.Agent
	difficulty game.Difficulty
	store      *game.Store
	log        *slog.Logger

	sinceMove   time.Duration
	resultSaved bool
}

type ServerMessage struct {
	Type  string         `json:"type"`
	State *game.Snapshot `json:"state,omitempty"`
	Error string         `json:"error,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"`
}

func NewGameServer(store *game.Store, log *slog.Logger) *GameServer {
	return &GameServer{
		engine:     game.NewEngine(log, rand.New(rand.NewSource(time.Now().UnixNano()))),
		difficulty: game.DifficultyMedium,
		store:      store,
		log:        log,
	}
}

// handleAction applies one client action. Returns an error string for
// rejected operations; the session itself never dies on bad input.
func (gs *GameServer) handleAction(action string) string {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	switch action {
	case "up":
		gs.playerDirection(game.DirUp)
	case "down":
		gs.playerDirection(game.DirDown)
	case "left":
		gs.playerDirection(game.DirLeft)
	case "right":
		gs.playerDirection(game.DirRight)
	case "start_manual", "start_ai":
		ai := action == "start_ai"
		if err := gs.engine.Start(ai, gs.difficulty); err != nil {
			return err.Error()
		}
		if ai {
			gs.agent = game.NewAgent(gs.log, gs.difficulty, rand.New(rand.NewSource(time.Now().UnixNano())))
		} else {
			gs.agent = nil
		}
		gs.resultSaved = false
	case "pause":
		gs.engine.Pause()
	case "resume":
		gs.engine.Resume()
	case "menu":
		gs.engine.ReturnToMenu()
	default:
		if name, ok := strings.CutPrefix(action, "diff_"); ok {
			d, err := game.ParseDifficulty(name)
			if err != nil {
				return err.Error()
			}
			gs.difficulty = d
			if gs.agent != nil {
				gs.agent.SetDifficulty(d)
			}
			return ""
		}
		return fmt.Sprintf("unknown action %q", action)
	}
	return ""
}

// snapshot copies the engine state under the session lock.
func (gs *GameServer) snapshot() game.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.engine.Snapshot()
}

// playerDirection honors direction keys only for human sessions.
func (gs *GameServer) playerDirection(dir game.Point) {
	if !gs.engine.Info().AIEnabled {
		gs.engine.ChangeDirection(dir)
	}
}

// update advances the session by one base tick.
func (gs *GameServer) update() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.engine.State() != game.StatePlaying {
		return
	}
	gs.sinceMove += config.BaseTick
	if gs.sinceMove < gs.engine.MoveInterval() {
		return
	}
	gs.sinceMove = 0

	if gs.agent != nil {
		snap := gs.engine.Snapshot()
		var special *game.Point
		if snap.SpecialFood != nil {
			pos := snap.SpecialFood.Pos
			special = &pos
		}
		gs.engine.ChangeDirection(gs.agent.NextMove(snap.Snake, snap.Food, special))
	}
	gs.engine.Update()

	if gs.engine.State() == game.StateGameOver && gs.store != nil && !gs.resultSaved {
		gs.resultSaved = true
		info := gs.engine.Info()
		res := game.Result{
			Score:       info.Score,
			SnakeLength: info.SnakeLength,
			Difficulty:  info.Difficulty.String(),
			AIEnabled:   info.AIEnabled,
		}
		if err := gs.store.SaveResult(res); err != nil {
			gs.log.Warn("failed to save result", "err", err)
		}
	}
}

func handleWebSocket(store *game.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("upgrade failed", "err", err)
			return
		}
		defer conn.Close()

		logger.Info("new connection", "remote", r.RemoteAddr)

		gs := NewGameServer(store, logger)
		ticker := time.NewTicker(config.BaseTick)
		defer ticker.Stop()

		// Protect concurrent writes to the WebSocket connection.
		var writeMu sync.Mutex
		safeWriteJSON := func(v interface{}) error {
			writeMu.Lock()
			defer writeMu.Unlock()
			return conn.WriteJSON(v)
		}

		snap := gs.snapshot()
		safeWriteJSON(ServerMessage{Type: "state", State: &snap})

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				var msg ClientMessage
				if err := conn.ReadJSON(&msg); err != nil {
					logger.Info("connection closed", "remote", r.RemoteAddr, "err", err)
					return
				}
				if errText := gs.handleAction(msg.Action); errText != "" {
					safeWriteJSON(ServerMessage{Type: "error", Error: errText})
					continue
				}
				// Immediate state push for UI responsiveness.
				snap := gs.snapshot()
				safeWriteJSON(ServerMessage{Type: "state", State: &snap})
			}
		}()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				gs.update()
				snap := gs.snapshot()
				if err := safeWriteJSON(ServerMessage{Type: "state", State: &snap}); err != nil {
					logger.Info("write failed, dropping connection", "err", err)
					return
				}
			}
		}
	}
}

func handleLeaderboard(store *game.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			http.Error(w, "leaderboard unavailable", http.StatusServiceUnavailable)
			return
		}
		results, err := store.TopResults(20)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

func main() {
	var (
		addr   = flag.String("addr", ":8080", "listen address")
		dbPath = flag.String("db", "data/game.db", "results database path")
	)
	flag.Parse()

	logger := slog.New(logging.NewPrettyHandler(os.Stdout, slog.LevelInfo))

	store, err := game.OpenStore(*dbPath)
	if err != nil {
		logger.Warn("results store unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	fs := http.FileServer(http.Dir("web/static"))
	http.Handle("/", fs)
	http.HandleFunc("/ws", handleWebSocket(store, logger))
	http.HandleFunc("/leaderboard", handleLeaderboard(store))

	fmt.Printf("🚀 AI Snake Web Server starting on http://localhost%s\n", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
