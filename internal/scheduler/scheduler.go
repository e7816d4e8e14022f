package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// every fires at a fixed period. Unlike the "@every" spec it accepts
// sub-second periods.
type every struct{ d time.Duration }

func (e every) Next(t time.Time) time.Time { return t.Add(e.d) }

// once fires a single time at at, or right away if at has passed. Cron asks
// again after every run; every answer after the first is zero. Next is only
// called from the cron goroutine.
type once struct {
	at     time.Time
	handed bool
}

func (o *once) Next(t time.Time) time.Time {
	if o.handed {
		return time.Time{}
	}
	o.handed = true
	if t.Before(o.at) {
		return o.at
	}
	return t
}

// CronTimers runs timers on a cron scheduler and hands every firing to a
// Loop, so callbacks observe the same single-threaded state as intents.
type CronTimers struct {
	cron *cron.Cron
	loop *Loop

	mu   sync.Mutex
	next Token
	live map[Token]cron.EntryID
}

// NewCronTimers creates timers that deliver to loop.
func NewCronTimers(loop *Loop) *CronTimers {
	return &CronTimers{
		cron: cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		loop: loop,
		live: make(map[Token]cron.EntryID),
	}
}

// Start starts the cron scheduler.
func (c *CronTimers) Start() {
	c.cron.Start()
	log.Println("[INFO] timers started")
}

// Stop stops the cron scheduler and waits for running jobs to hand off.
func (c *CronTimers) Stop() {
	<-c.cron.Stop().Done()
	log.Println("[INFO] timers stopped")
}

// Every runs fn every d until cancelled.
func (c *CronTimers) Every(d time.Duration, fn func()) Token {
	if d <= 0 {
		return 0
	}
	return c.add(every{d: d}, false, fn)
}

// After runs fn once after d.
func (c *CronTimers) After(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	return c.add(&once{at: time.Now().Add(d)}, true, fn)
}

// Cancel stops a timer. A firing already queued on the loop is dropped.
func (c *CronTimers) Cancel(tok Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropLocked(tok)
}

func (c *CronTimers) add(s cron.Schedule, single bool, fn func()) Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	tok := c.next
	c.live[tok] = c.cron.Schedule(s, cron.FuncJob(func() {
		if err := c.loop.Post(func() { c.fire(tok, single, fn) }); err != nil {
			log.Printf("[WARN] timer %d: %v", tok, err)
		}
	}))
	return tok
}

func (c *CronTimers) fire(tok Token, single bool, fn func()) {
	c.mu.Lock()
	_, ok := c.live[tok]
	if ok && single {
		c.dropLocked(tok)
	}
	c.mu.Unlock()

	if ok {
		fn()
	}
}

func (c *CronTimers) dropLocked(tok Token) {
	id, ok := c.live[tok]
	if !ok {
		return
	}
	delete(c.live, tok)
	c.cron.Remove(id)
}
