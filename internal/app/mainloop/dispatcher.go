package mainloop

import "sync"

// InlineDispatcher runs posted tasks immediately on the calling goroutine.
// Tasks posted while another task runs are queued and drained by the running
// caller, so tasks never overlap and reentrant posts cannot deadlock.
// Used when no UI toolkit owns the main loop (CLI, tests).
type InlineDispatcher struct {
	mu      sync.Mutex
	queue   []func()
	running bool
}

// NewInlineDispatcher creates an inline dispatcher.
func NewInlineDispatcher() *InlineDispatcher {
	return &InlineDispatcher{}
}

// Post runs fn now, or after the task currently running.
func (d *InlineDispatcher) Post(fn func()) {
	if fn == nil {
		return
	}

	d.mu.Lock()
	d.queue = append(d.queue, fn)
	if d.running {
		d.mu.Unlock()
		return
	}
	d.running = true
	d.mu.Unlock()

	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.running = false
			d.mu.Unlock()
			return
		}
		next := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		next()
	}
}

// QueueDispatcher collects posted tasks until Drain is called.
// It models a host main loop that runs idle callbacks later.
type QueueDispatcher struct {
	mu    sync.Mutex
	queue []func()
}

// NewQueueDispatcher creates an empty queue dispatcher.
func NewQueueDispatcher() *QueueDispatcher {
	return &QueueDispatcher{}
}

// Post queues fn.
func (d *QueueDispatcher) Post(fn func()) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	d.mu.Unlock()
}

// Len returns the number of queued tasks.
func (d *QueueDispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Drain runs queued tasks, including ones queued while draining, and returns
// how many ran.
func (d *QueueDispatcher) Drain() int {
	ran := 0
	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.mu.Unlock()
			return ran
		}
		next := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		next()
		ran++
	}
}
