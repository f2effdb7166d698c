// Package autosave re-runs a save callback on a fixed interval, hopping onto
// the UI thread through a port.Dispatcher.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultInterval is used when Start receives a non-positive interval.
const DefaultInterval = 5 * time.Minute

// Service implements port.AutoSaveScheduler on top of time.AfterFunc.
type Service struct {
	dispatcher port.Dispatcher

	mu       sync.Mutex
	timer    *time.Timer
	interval time.Duration
	save     func(ctx context.Context) error
	ctx      context.Context
	cancel   context.CancelFunc
	gen      uint64 // Bumped on every Start/Stop so stale ticks are dropped
	saving   bool
	runs     int
}

var _ port.AutoSaveScheduler = (*Service)(nil)

// NewService creates a stopped scheduler. Saves run through dispatcher.
func NewService(dispatcher port.Dispatcher) *Service {
	return &Service{dispatcher: dispatcher}
}

// Start (re)arms the schedule. A running schedule is replaced.
func (s *Service) Start(ctx context.Context, interval time.Duration, save func(ctx context.Context) error) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.interval = interval
	s.save = save
	s.gen++
	s.armLocked(s.gen)

	logging.FromContext(ctx).Debug().Dur("interval", interval).Msg("auto-save started")
}

// Stop cancels the schedule. Safe to call when not running.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.save == nil {
		return
	}
	logging.FromContext(s.ctx).Debug().Int("runs", s.runs).Msg("auto-save stopped")
	s.stopLocked()
}

// Running reports whether a schedule is armed.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save != nil
}

// Runs returns how many ticks have executed the save callback.
func (s *Service) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

// SaveNow runs the callback immediately on the caller's goroutine, for
// shutdown paths. It is a no-op when not running.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	save := s.save
	s.mu.Unlock()

	if save == nil {
		return nil
	}
	return save(ctx)
}

func (s *Service) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.save = nil
	s.gen++
}

func (s *Service) armLocked(gen uint64) {
	s.timer = time.AfterFunc(s.interval, func() {
		s.dispatcher.Post(func() { s.tick(gen) })
	})
}

// tick runs on the UI thread.
func (s *Service) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.save == nil || s.saving {
		s.mu.Unlock()
		return
	}
	ctx, save := s.ctx, s.save
	s.saving = true
	s.mu.Unlock()

	err := save(ctx)

	s.mu.Lock()
	s.saving = false
	s.runs++
	if gen == s.gen {
		s.armLocked(gen)
	}
	s.mu.Unlock()

	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("auto-save failed")
	}
}
