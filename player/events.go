package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/adreel-cli/adreel/log"
)

// EventKind is a player notification the controller cares about.
type EventKind int

const (
	// EventPause carries the new pause state in Paused.
	EventPause EventKind = iota + 1
	// EventEOF fires when the current file played to its end.
	EventEOF
)

// Event is a notification pushed by mpv.
type Event struct {
	Kind   EventKind
	Paused bool
}

// EventListener observes mpv properties over a dedicated IPC connection.
type EventListener struct {
	socketPath string
	conn       net.Conn
	events     chan Event
	mu         sync.Mutex
	listening  bool
}

// NewEventListener creates a listener for the mpv instance behind socketPath.
func NewEventListener(socketPath string) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		events:     make(chan Event, 16),
	}
}

// Listen starts observing pause changes and end-of-file on m.
func Listen(m *MPV) (*EventListener, error) {
	el := NewEventListener(m.Socket())
	return el, el.Start()
}

// Events returns the stream of observed events. It is closed when the connection ends.
func (el *EventListener) Events() <-chan Event {
	return el.events
}

// Start subscribes to pause changes and begins the read loop. Observers are
// registered on the same connection they are delivered to; end-file events are
// broadcast to every client without subscribing.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	payload, _ := json.Marshal(ipcCommand{Command: []interface{}{"observe_property", 1, "pause"}})
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		conn.Close()
		return fmt.Errorf("observe pause: %w", err)
	}

	el.conn = conn
	el.listening = true
	go el.readLoop(conn)

	log.Infof("mpv event listener started on %s", el.socketPath)
	return nil
}

// Stop terminates the listener.
func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}

	el.conn.Close()
	el.listening = false
}

func (el *EventListener) readLoop(conn net.Conn) {
	defer close(el.events)
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.mu.Unlock()
	}()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		if ev, ok := parseEvent(scanner.Bytes()); ok {
			el.events <- ev
		}
	}

	if err := scanner.Err(); err != nil {
		log.Debugf("event listener stopped: %v", err)
	}
}

// parseEvent maps one mpv JSON line to an Event.
func parseEvent(line []byte) (Event, bool) {
	var msg struct {
		Event  string      `json:"event"`
		Name   string      `json:"name"`
		Data   interface{} `json:"data"`
		Reason string      `json:"reason"`
	}
	if err := json.Unmarshal(line, &msg); err != nil {
		return Event{}, false
	}

	switch msg.Event {
	case "property-change":
		if msg.Name == "pause" {
			paused, _ := msg.Data.(bool)
			return Event{Kind: EventPause, Paused: paused}, true
		}
	case "end-file":
		// "stop" is sent when loadfile replaces the current file.
		if msg.Reason == "eof" {
			return Event{Kind: EventEOF}, true
		}
	}
	return Event{}, false
}
