package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StepRecord is one tick of a session, enough to replay it.
type StepRecord struct {
	Tick        int     `json:"tick"`
	State       string  `json:"state"`
	Difficulty  string  `json:"difficulty"`
	Score       int     `json:"score"`
	Snake       []Point `json:"snake"`
	Food        Point   `json:"food"`
	SpecialFood *Food   `json:"specialFood,omitempty"`
	Direction   Point   `json:"direction"`
	PathLen     int     `json:"pathLen,omitempty"`
	Replanned   bool    `json:"replanned,omitempty"`
}

// Recorder handles asynchronous logging of game steps to a JSONL file.
type Recorder struct {
	file       *os.File
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
}

// NewRecorder creates a recorder writing to the records/ directory.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(sessionID string) (*Recorder, error) {
	recordDir := "records"
	if err := os.MkdirAll(recordDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, time.Now().Unix())
	f, err := os.Create(filepath.Join(recordDir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &Recorder{
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan StepRecord, 1000),
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// RecordStep queues a record to be written. Non-blocking; frames are
// dropped when the buffer is full to protect the game loop.
func (r *Recorder) RecordStep(rec StepRecord) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	select {
	case r.recordChan <- rec:
	default:
	}
}

// Close flushes the buffer and closes the file.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.recordChan)
	r.wg.Wait()
	r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording frame: %v\n", err)
			continue
		}
	}
	r.writer.Flush()
}

// ReadRecords loads every step from a JSONL record file.
func ReadRecords(path string) ([]StepRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	var records []StepRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec StepRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("bad record line: %w", err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
