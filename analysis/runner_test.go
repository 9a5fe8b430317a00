package analysis

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/policy"
	"github.com/google/uuid"
)

type recordingSink struct {
	mu    sync.Mutex
	count int
	ch    chan Snapshot
}

func (s *recordingSink) Publish(_ uuid.UUID, snap Snapshot) {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
	select {
	case s.ch <- snap:
	default:
	}
}

func TestRunnerPublishesUntilStopped(t *testing.T) {
	sink := &recordingSink{ch: make(chan Snapshot, 1)}
	r := NewRunner(5*time.Millisecond, sink).WithRand(func() *rand.Rand {
		return rand.New(rand.NewSource(1))
	})
	id := uuid.New()

	if err := r.Start(context.Background(), id, policy.Capabilities(policy.TierProfessional)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !r.Recording(id) {
		t.Fatal("Expected interview to be recording")
	}

	select {
	case snap := <-sink.ch:
		if snap.Locked || len(snap.Metrics) != 4 {
			t.Errorf("Unexpected snapshot: %+v", snap)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for a snapshot")
	}

	if !r.Stop(id) {
		t.Fatal("Expected Stop to report a running session")
	}
	if r.Recording(id) {
		t.Error("Expected recording to be off after Stop")
	}

	sink.mu.Lock()
	after := sink.count
	sink.mu.Unlock()
	time.Sleep(30 * time.Millisecond)
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.count != after {
		t.Errorf("Expected no publishes after Stop, got %d more", sink.count-after)
	}
}

func TestRunnerRefusesFreeTier(t *testing.T) {
	r := NewRunner(time.Millisecond, nil)
	if err := r.Start(context.Background(), uuid.New(), policy.Capabilities(policy.TierFree)); err != ErrNotRealtime {
		t.Fatalf("Expected ErrNotRealtime, got %v", err)
	}
}

func TestRunnerStopsOnContextCancel(t *testing.T) {
	r := NewRunner(time.Millisecond, nil)
	id := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	if err := r.Start(ctx, id, policy.Capabilities(policy.TierBasic)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for r.Recording(id) {
		if time.Now().After(deadline) {
			t.Fatal("Expected session to end after context cancel")
		}
		time.Sleep(time.Millisecond)
	}
	if r.Stop(id) {
		t.Error("Expected Stop to report no running session")
	}
}

func TestRunnerReleaseForgetsPanel(t *testing.T) {
	r := NewRunner(time.Millisecond, nil)
	id := uuid.New()

	if err := r.Start(context.Background(), id, policy.Capabilities(policy.TierBasic)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := r.Panel(id).Rate(MetricConfidence, 10); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	r.Release(id)
	if r.Recording(id) {
		t.Error("Expected recording to stop on release")
	}
	r.mu.Lock()
	_, kept := r.panels[id]
	r.mu.Unlock()
	if kept {
		t.Error("Expected released panel to be dropped")
	}

	r.Peek(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.panels) != 0 {
		t.Errorf("Expected Peek not to store a panel, got %d", len(r.panels))
	}
}
