package showcase

import (
	"fmt"
	"sync"
	"time"
)

// manualScheduler records tasks and fires them only when told to
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	interval time.Duration
	fn       func()
	active   bool
}

func (s *manualScheduler) Every(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTask{interval: d, fn: fn, active: true}
	s.tasks = append(s.tasks, t)
	return func() {
		s.mu.Lock()
		t.active = false
		s.mu.Unlock()
	}
}

// Active returns the number of timers that have not been stopped
func (s *manualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if t.active {
			n++
		}
	}
	return n
}

// Elapse simulates one interval passing: every active timer fires once.
// It returns the number of callbacks invoked.
func (s *manualScheduler) Elapse() int {
	s.mu.Lock()
	var due []func()
	for _, t := range s.tasks {
		if t.active {
			due = append(due, t.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range due {
		fn()
	}
	return len(due)
}

// FireStopped invokes the callbacks of stopped timers, as if a tick had been
// in flight when the timer was cancelled
func (s *manualScheduler) FireStopped() {
	s.mu.Lock()
	var stale []func()
	for _, t := range s.tasks {
		if !t.active {
			stale = append(stale, t.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range stale {
		fn()
	}
}

func sampleItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:      i + 1,
			Quote:   fmt.Sprintf("quote %d", i+1),
			Name:    fmt.Sprintf("client %d", i+1),
			Company: "Acme",
		}
	}
	return items
}
