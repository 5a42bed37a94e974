// Package state defines the lifecycle of a room scene.
package state

// RoomState represents where the room scene is in its lifecycle
type RoomState int

const (
	StatePlaying RoomState = iota
	StatePaused
	StateDead     // Player touched a spike; waits for restart
	StateExiting  // All doors open; next Update advances the level
	StateFinished // Last room cleared
)

// String returns the string representation of the room state
func (s RoomState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateDead:
		return "Dead"
	case StateExiting:
		return "Exiting"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world should advance in this state
func (s RoomState) Simulating() bool {
	return s == StatePlaying || s == StateDead
}
