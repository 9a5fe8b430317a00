package analysis

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/anjiri1684/mockprep/policy"
	"github.com/google/uuid"
)

var ErrNotRealtime = errors.New("real-time analysis is not available on this plan")

// Sink receives a snapshot after every tick.
type Sink interface {
	Publish(interviewID uuid.UUID, snapshot Snapshot)
}

type session struct {
	panel  *Panel
	caps   policy.Capability
	cancel context.CancelFunc
	done   chan struct{}
}

// Runner owns one panel per interview and drives the recording loops.
type Runner struct {
	interval time.Duration
	sink     Sink
	newRand  func() *rand.Rand

	mu       sync.Mutex
	panels   map[uuid.UUID]*Panel
	sessions map[uuid.UUID]*session
}

func NewRunner(interval time.Duration, sink Sink) *Runner {
	if interval <= 0 {
		interval = policy.AnalysisInterval
	}
	return &Runner{
		interval: interval,
		sink:     sink,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		panels:   make(map[uuid.UUID]*Panel),
		sessions: make(map[uuid.UUID]*session),
	}
}

// WithRand replaces the random source factory. Tests use it to make ticks
// reproducible.
func (r *Runner) WithRand(f func() *rand.Rand) *Runner {
	r.newRand = f
	return r
}

// Panel returns the panel for an interview, creating it on first use.
func (r *Runner) Panel(id uuid.UUID) *Panel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.panelLocked(id)
}

// Peek returns the stored panel without registering a new one. Interviews
// that never recorded get a fresh, unstored panel.
func (r *Runner) Peek(id uuid.UUID) *Panel {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.panels[id]; ok {
		return p
	}
	return NewPanel()
}

func (r *Runner) panelLocked(id uuid.UUID) *Panel {
	p, ok := r.panels[id]
	if !ok {
		p = NewPanel()
		r.panels[id] = p
	}
	return p
}

func (r *Runner) Recording(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	return ok
}

// Start begins recording. Starting an interview that is already recording
// is a no-op.
func (r *Runner) Start(ctx context.Context, id uuid.UUID, caps policy.Capability) error {
	if !caps.Analysis.Realtime {
		return ErrNotRealtime
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; ok {
		return nil
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s := &session{
		panel:  r.panelLocked(id),
		caps:   caps,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	r.sessions[id] = s

	go r.loop(loopCtx, id, s, r.newRand())
	log.Printf("✅ Analysis recording started for interview %s (%s)", id, caps.Tier)
	return nil
}

// Stop ends recording and waits for the loop to exit. It reports whether
// the interview was recording.
func (r *Runner) Stop(id uuid.UUID) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	s.cancel()
	<-s.done
	log.Printf("Analysis recording stopped for interview %s", id)
	return true
}

// Release stops recording and forgets the panel. Finished interviews are
// released so the runner does not keep their state forever.
func (r *Runner) Release(id uuid.UUID) {
	r.Stop(id)
	r.mu.Lock()
	delete(r.panels, id)
	r.mu.Unlock()
}

// Shutdown stops every running loop.
func (r *Runner) Shutdown() {
	r.mu.Lock()
	ids := make([]uuid.UUID, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Stop(id)
	}
}

func (r *Runner) loop(ctx context.Context, id uuid.UUID, s *session, rng *rand.Rand) {
	defer close(s.done)
	defer func() {
		r.mu.Lock()
		if r.sessions[id] == s {
			delete(r.sessions, id)
		}
		r.mu.Unlock()
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	elapsed := s.panel.Elapsed()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			elapsed += r.interval
			s.panel.Tick(rng, s.caps.Analysis, elapsed)
			if r.sink != nil {
				r.sink.Publish(id, s.panel.Snapshot(s.caps))
			}
		}
	}
}
