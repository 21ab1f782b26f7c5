package session

import (
	"encoding/json"
	"log"
	"strconv"
)

// Event is the common structure for all emitted events: a type and a set
// of key/value attributes, logged as one JSON line.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitter writes events to a logger; a nil logger drops them.
type emitter struct {
	logger *log.Logger
}

func (e emitter) emit(eventType string, attributes map[string]string) {
	if e.logger == nil {
		return
	}
	b, err := json.Marshal(Event{Type: eventType, Attributes: attributes})
	if err != nil {
		e.logger.Printf("marshal %s event: %v", eventType, err)
		return
	}
	e.logger.Print(string(b))
}

// roundStarted is emitted once the seed is fixed.
func (e emitter) roundStarted(seed uint64) {
	e.emit("roundStarted", map[string]string{
		"seed": strconv.FormatUint(seed, 10),
	})
}

// move is emitted for every mark placed, by either side.
func (e emitter) move(by string, cell int) {
	e.emit("move", map[string]string{
		"by":   by,
		"cell": strconv.Itoa(cell),
	})
}

// finished is emitted once with the terminal status and the transcript.
func (e emitter) finished(eventType, transcript string) {
	e.emit(eventType, map[string]string{
		"transcript": transcript,
	})
}
