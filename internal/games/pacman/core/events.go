package core

import "time"

// EventKind identifies a fire-and-forget simulation event.
type EventKind int

const (
	EventFrightenedEntered EventKind = iota // A ghost became frightened
	EventFrightenedExited                   // A ghost stopped being frightened
	EventGhostEaten                         // The player ate a ghost
	EventPlayerEaten                        // A ghost caught the player
	EventDotEaten                           // Regular pickup consumed
	EventPowerEaten                         // Power pickup consumed
	EventPlayerDying                        // Death spin started
	EventLifeLost                           // Death spin finished
	EventLevelCleared                       // No pickups remain
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventFrightenedEntered:
		return "frightened_entered"
	case EventFrightenedExited:
		return "frightened_exited"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventPlayerEaten:
		return "player_eaten"
	case EventDotEaten:
		return "dot_eaten"
	case EventPowerEaten:
		return "power_eaten"
	case EventPlayerDying:
		return "player_dying"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	default:
		return "unknown"
	}
}

// Event is emitted by an agent and drained by the world after that agent
// moves. Ghost is empty for player events.
type Event struct {
	Kind   EventKind
	Ghost  string
	Cell   Coord
	Points int
	At     time.Time
}

// CommandKind identifies a request delivered to a ghost's own transition
// function.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandFrightenAll
)

// Command is a message from the pickup dispatcher to every ghost.
type Command struct {
	Kind CommandKind
}

// Emitter collects events in emission order.
type Emitter struct {
	queue []Event
}

// Emit appends an event.
func (e *Emitter) Emit(ev Event) {
	e.queue = append(e.queue, ev)
}

// Take returns queued events and clears the queue.
func (e *Emitter) Take() []Event {
	out := e.queue
	e.queue = nil
	return out
}

// Len returns the number of queued events.
func (e *Emitter) Len() int {
	return len(e.queue)
}
