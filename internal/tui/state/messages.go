package state

import "time"

// frameMsg advances the settle animation by one frame.
type frameMsg struct {
	at time.Time
}
