package scheduler

import "time"

// Registry keeps at most one live timer per name.
type Registry struct {
	timers Timers
	names  map[string]Token
}

func NewRegistry(t Timers) *Registry {
	return &Registry{timers: t, names: make(map[string]Token)}
}

// Every replaces the timer called name with a repeating one.
func (r *Registry) Every(name string, d time.Duration, fn func()) {
	r.Cancel(name)
	if tok := r.timers.Every(d, fn); tok != 0 {
		r.names[name] = tok
	}
}

// After replaces the timer called name with a one-shot one. The name is
// released before fn runs, so fn may schedule name again.
func (r *Registry) After(name string, d time.Duration, fn func()) {
	r.Cancel(name)
	var tok Token
	tok = r.timers.After(d, func() {
		if r.names[name] == tok {
			delete(r.names, name)
		}
		fn()
	})
	r.names[name] = tok
}

// Cancel stops the timer called name, if any.
func (r *Registry) Cancel(name string) {
	if tok, ok := r.names[name]; ok {
		r.timers.Cancel(tok)
		delete(r.names, name)
	}
}

// CancelAll stops every named timer.
func (r *Registry) CancelAll() {
	for name, tok := range r.names {
		r.timers.Cancel(tok)
		delete(r.names, name)
	}
}

// Active reports whether a timer called name is live.
func (r *Registry) Active(name string) bool {
	_, ok := r.names[name]
	return ok
}
