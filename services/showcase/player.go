package showcase

import (
	"sync"
	"time"
)

// DefaultInterval is the auto-advance period
const DefaultInterval = 5 * time.Second

// Scheduler starts a repeating task. The returned stop function cancels it,
// must not block and may be called more than once.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// TickerScheduler runs each task on its own time.Ticker goroutine
type TickerScheduler struct{}

// Every implements Scheduler
func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// PlayerOption configures a Player
type PlayerOption func(*Player)

// WithScheduler replaces the default ticker-based scheduler
func WithScheduler(s Scheduler) PlayerOption {
	return func(p *Player) {
		p.scheduler = s
	}
}

// WithOnChange registers a callback invoked after every state change.
// It runs outside the player's lock.
func WithOnChange(fn func(State)) PlayerOption {
	return func(p *Player) {
		p.onChange = fn
	}
}

// Player is a mounted showcase: the state machine plus the single repeating
// timer that drives it. Manual actions and timer ticks are serialized, so the
// last one processed wins.
type Player struct {
	mu         sync.Mutex
	show       *Showcase
	interval   time.Duration
	scheduler  Scheduler
	onChange   func(State)
	stopTimer  func()
	generation uint64
	disposed   bool
}

// NewPlayer mounts a showcase over items and starts auto-advancing
func NewPlayer(items []Item, interval time.Duration, opts ...PlayerOption) (*Player, error) {
	show, err := New(items)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	p := &Player{
		show:      show,
		interval:  interval,
		scheduler: TickerScheduler{},
	}
	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	p.startTimerLocked()
	p.mu.Unlock()

	return p, nil
}

// State returns the current state
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.show.State()
}

// Items returns the showcase sequence
func (p *Player) Items() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.show.Items()
}

// Next is the "next" button
func (p *Player) Next() (State, error) {
	return p.Advance(Forward)
}

// Prev is the "previous" button
func (p *Player) Prev() (State, error) {
	return p.Advance(Backward)
}

// Advance steps manually and suspends auto-advance
func (p *Player) Advance(step Direction) (State, error) {
	return p.update(func(s *Showcase) error {
		if err := s.Advance(step); err != nil {
			return err
		}
		p.stopTimerLocked()
		return nil
	})
}

// Select jumps to target and suspends auto-advance
func (p *Player) Select(target int) (State, error) {
	return p.update(func(s *Showcase) error {
		if err := s.Select(target); err != nil {
			return err
		}
		p.stopTimerLocked()
		return nil
	})
}

// Pause is called on pointer-enter. It cancels the pending timer.
func (p *Player) Pause() (State, error) {
	return p.update(func(s *Showcase) error {
		s.Pause()
		p.stopTimerLocked()
		return nil
	})
}

// Resume is called on pointer-leave. It restarts the timer from a full interval.
func (p *Player) Resume() (State, error) {
	return p.update(func(s *Showcase) error {
		s.Resume()
		p.startTimerLocked()
		return nil
	})
}

// Dispose unmounts the player. Ticks already in flight are dropped.
func (p *Player) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return
	}
	p.disposed = true
	p.stopTimerLocked()
}

// Disposed reports whether Dispose was called
func (p *Player) Disposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

func (p *Player) update(fn func(*Showcase) error) (State, error) {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return State{}, ErrDisposed
	}
	if err := fn(p.show); err != nil {
		state := p.show.State()
		p.mu.Unlock()
		return state, err
	}
	state := p.show.State()
	notify := p.onChange
	p.mu.Unlock()

	if notify != nil {
		notify(state)
	}
	return state, nil
}

func (p *Player) tick(generation uint64) {
	p.mu.Lock()
	if p.disposed || generation != p.generation || !p.show.Tick() {
		p.mu.Unlock()
		return
	}
	state := p.show.State()
	notify := p.onChange
	p.mu.Unlock()

	if notify != nil {
		notify(state)
	}
}

// startTimerLocked replaces any running timer, so at most one is ever active
func (p *Player) startTimerLocked() {
	p.stopTimerLocked()
	p.generation++
	generation := p.generation
	p.stopTimer = p.scheduler.Every(p.interval, func() {
		p.tick(generation)
	})
}

func (p *Player) stopTimerLocked() {
	if p.stopTimer == nil {
		return
	}
	p.stopTimer()
	p.stopTimer = nil
	// ticks from the cancelled timer that are already queued must not apply
	p.generation++
}
