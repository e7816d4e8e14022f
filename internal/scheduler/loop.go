package scheduler

import (
	"context"
	"errors"
)

// ErrStopped is returned when work is submitted to a loop that has exited.
var ErrStopped = errors.New("scheduler: loop stopped")

// Loop runs submitted functions one at a time on a single goroutine. Game
// state is only ever touched from inside the loop.
type Loop struct {
	tasks chan func()
	done  chan struct{}
}

// NewLoop creates a loop with room for buf queued tasks.
func NewLoop(buf int) *Loop {
	return &Loop{
		tasks: make(chan func(), buf),
		done:  make(chan struct{}),
	}
}

// Run processes tasks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Post queues fn without waiting for it to run.
func (l *Loop) Post(fn func()) error {
	select {
	case l.tasks <- fn:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Call queues fn and waits until it has run. It must not be used from
// inside the loop.
func (l *Loop) Call(fn func()) error {
	ran := make(chan struct{})
	if err := l.Post(func() {
		defer close(ran)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-ran:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
