package mainloop

import (
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
)

// Coalescer merges bursts of same-key tasks into a single dispatch.
// The most recently posted callback for a key wins.
type Coalescer struct {
	mu         sync.Mutex
	pending    map[string]bool
	callbacks  map[string]func()
	dispatcher port.Dispatcher
	destroyed  bool
}

// NewCoalescer creates a coalescer posting through d.
func NewCoalescer(d port.Dispatcher) *Coalescer {
	if d == nil {
		panic("mainloop.NewCoalescer: dispatcher cannot be nil")
	}

	return &Coalescer{
		pending:    make(map[string]bool),
		callbacks:  make(map[string]func()),
		dispatcher: d,
	}
}

// Post schedules fn under key. While a dispatch for key is pending only the
// callback is replaced.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	d := c.dispatcher
	c.mu.Unlock()

	d.Post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed || fn == nil {
		return
	}
	fn()
}

// Cancel drops the pending callback for key. The dispatch itself still
// fires but does nothing.
func (c *Coalescer) Cancel(key string) {
	c.mu.Lock()
	delete(c.callbacks, key)
	c.mu.Unlock()
}

// Pending reports whether a dispatch for key is queued.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

// Destroy drops all queued work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
