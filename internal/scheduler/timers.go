package scheduler

import "time"

// Token identifies a scheduled timer. The zero token is never issued.
type Token uint64

// Timers schedules callbacks. Callbacks never run concurrently with each
// other or with the code driving the game.
type Timers interface {
	Every(d time.Duration, fn func()) Token
	After(d time.Duration, fn func()) Token
	Cancel(tok Token)
}
