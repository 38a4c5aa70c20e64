package showcase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

var (
	// ErrRegistryClosed is returned by Acquire after Close
	ErrRegistryClosed = errors.New("showcase: registry closed")
	// ErrRegistryFull is returned by Acquire when MaxPlayers are mounted
	ErrRegistryFull = errors.New("showcase: too many mounted players")
)

// DefaultMaxPlayers caps the mounted players of a registry
const DefaultMaxPlayers = 10000

// RegistryConfig configures a Registry
type RegistryConfig struct {
	// Interval is the auto-advance period of every player
	Interval time.Duration
	// IdleTimeout is how long a visitor may go unseen before its player is disposed
	IdleTimeout time.Duration
	// MaxPlayers caps the number of mounted players (defaults to DefaultMaxPlayers)
	MaxPlayers int
	// Scheduler drives the player timers (defaults to TickerScheduler)
	Scheduler Scheduler
	// Now is the clock used for idle tracking (defaults to time.Now)
	Now func() time.Time
}

type session struct {
	player   *Player
	hub      *Broadcaster
	lastSeen time.Time
}

func (s *session) close() {
	s.player.Dispose()
	s.hub.Close()
}

// Registry keeps at most one mounted Player per visitor. Players are mounted
// lazily by Acquire and unmounted by Unmount, Release or, for visitors that
// never close their stream, by Sweep.
type Registry struct {
	mu       sync.Mutex
	items    []Item
	cfg      RegistryConfig
	sessions map[string]*session
	closed   bool
}

// NewRegistry creates a registry over a fixed item sequence
func NewRegistry(items []Item, cfg RegistryConfig) (*Registry, error) {
	if len(items) == 0 {
		return nil, ErrEmptySequence
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 30 * time.Minute
	}
	if cfg.MaxPlayers <= 0 {
		cfg.MaxPlayers = DefaultMaxPlayers
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = TickerScheduler{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	seq := make([]Item, len(items))
	copy(seq, items)

	return &Registry{
		items:    seq,
		cfg:      cfg,
		sessions: make(map[string]*session),
	}, nil
}

// Acquire returns the visitor's player and broadcaster, mounting them on first use
func (r *Registry) Acquire(visitorID string) (*Player, *Broadcaster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, nil, ErrRegistryClosed
	}

	if s, ok := r.sessions[visitorID]; ok {
		s.lastSeen = r.cfg.Now()
		return s.player, s.hub, nil
	}
	if len(r.sessions) >= r.cfg.MaxPlayers {
		return nil, nil, ErrRegistryFull
	}

	hub := NewBroadcaster()
	player, err := NewPlayer(r.items, r.cfg.Interval,
		WithScheduler(r.cfg.Scheduler),
		WithOnChange(func(State) { hub.Publish(EventChanged) }),
	)
	if err != nil {
		return nil, nil, err
	}

	r.sessions[visitorID] = &session{
		player:   player,
		hub:      hub,
		lastSeen: r.cfg.Now(),
	}
	return player, hub, nil
}

// InitialState is the state every fresh mount starts from
func (r *Registry) InitialState() State {
	s, _ := New(r.items)
	return s.State()
}

// Unmount disposes the visitor's player, if any. The next Acquire mounts a
// fresh one.
func (r *Registry) Unmount(visitorID string) bool {
	r.mu.Lock()
	s, ok := r.sessions[visitorID]
	if ok {
		delete(r.sessions, visitorID)
	}
	r.mu.Unlock()

	if ok {
		s.close()
	}
	return ok
}

// Release unmounts the visitor's player only if it is still p. A stream that
// outlived its mount must not dispose the player that replaced it.
func (r *Registry) Release(visitorID string, p *Player) bool {
	r.mu.Lock()
	s, ok := r.sessions[visitorID]
	if ok && s.player == p {
		delete(r.sessions, visitorID)
	} else {
		ok = false
	}
	r.mu.Unlock()

	if ok {
		s.close()
	}
	return ok
}

// Touch marks the visitor as active. Unknown visitors are ignored.
func (r *Registry) Touch(visitorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[visitorID]; ok {
		s.lastSeen = r.cfg.Now()
	}
}

// Len returns the number of mounted players
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep unmounts every visitor idle for longer than the idle timeout and
// returns how many were removed
func (r *Registry) Sweep() int {
	r.mu.Lock()
	now := r.cfg.Now()
	var expired []*session
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.cfg.IdleTimeout {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	return len(expired)
}

// Run sweeps idle visitors every interval until ctx is cancelled
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("[INFO] Unmounted %d idle showcase players", n)
			}
		}
	}
}

// Close unmounts every player. Later Acquire calls fail.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	sessions := r.sessions
	r.sessions = make(map[string]*session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
