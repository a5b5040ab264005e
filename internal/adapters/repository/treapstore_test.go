package repository

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/abmccull/talentscout/internal/domain/prediction"
)

// floatEqual compares two float64 values with a small tolerance for floating-point precision
func floatEqual(a, b float64) bool {
	const tolerance = 1e-10
	return math.Abs(a-b) < tolerance
}

func statsWith(accuracy float64, resolved, correct int) prediction.Stats {
	return prediction.Stats{
		Resolved: resolved,
		Correct:  correct,
		Accuracy: accuracy,
		IsOracle: accuracy >= 0.70 && resolved >= 10,
	}
}

func TestTreapStore_BasicOperations(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	// Empty store
	if count := store.Count(ctx); count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}

	if err := store.Upsert(ctx, "scout1", statsWith(0.85, 20, 17)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count := store.Count(ctx); count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}

	entry, err := store.Rank(ctx, "scout1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Rank != 1 {
		t.Errorf("expected rank 1, got %d", entry.Rank)
	}
	if !floatEqual(entry.Accuracy, 0.85) {
		t.Errorf("expected accuracy 0.85, got %f", entry.Accuracy)
	}
	if entry.Resolved != 20 || entry.Correct != 17 {
		t.Errorf("expected resolved/correct 20/17, got %d/%d", entry.Resolved, entry.Correct)
	}
	if !entry.Oracle {
		t.Error("expected oracle status at 0.85 accuracy over 20 resolved")
	}

	entries, err := store.TopN(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ScoutID != "scout1" {
		t.Errorf("expected scout1, got %s", entries[0].ScoutID)
	}
}

func TestTreapStore_UpsertReplacesBothDirections(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	if err := store.Upsert(ctx, "scout1", statsWith(0.50, 10, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Accuracy drops after a bad resolution batch. The record must follow it
	// down; standings reflect current accuracy, not a high-water mark.
	if err := store.Upsert(ctx, "scout1", statsWith(0.40, 15, 6)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, err := store.Rank(ctx, "scout1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floatEqual(entry.Accuracy, 0.40) {
		t.Errorf("expected accuracy 0.40 after downgrade, got %f", entry.Accuracy)
	}
	if entry.Resolved != 15 {
		t.Errorf("expected resolved 15, got %d", entry.Resolved)
	}

	// And back up.
	if err := store.Upsert(ctx, "scout1", statsWith(0.60, 20, 12)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, err = store.Rank(ctx, "scout1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floatEqual(entry.Accuracy, 0.60) {
		t.Errorf("expected accuracy 0.60 after upgrade, got %f", entry.Accuracy)
	}

	// Replacement never duplicates the scout in the tree.
	if count := store.Count(ctx); count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}
	entries, err := store.TopN(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry after repeated upserts, got %d", len(entries))
	}
}

func TestTreapStore_RankOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	scouts := map[string]float64{
		"alice":   0.90,
		"bob":     0.75,
		"charlie": 0.60,
		"diana":   0.45,
	}
	for id, acc := range scouts {
		if err := store.Upsert(ctx, id, statsWith(acc, 20, int(acc*20))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	expected := []struct {
		id   string
		rank int
	}{
		{"alice", 1},
		{"bob", 2},
		{"charlie", 3},
		{"diana", 4},
	}
	for _, want := range expected {
		entry, err := store.Rank(ctx, want.id)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", want.id, err)
		}
		if entry.Rank != want.rank {
			t.Errorf("scout %s: expected rank %d, got %d", want.id, want.rank, entry.Rank)
		}
	}

	entries, err := store.TopN(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Accuracy > entries[i-1].Accuracy {
			t.Errorf("standings out of order at index %d: %f > %f",
				i, entries[i].Accuracy, entries[i-1].Accuracy)
		}
	}
}

func TestTreapStore_TiedAccuracies(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	// Three scouts, two tied at the top.
	if err := store.Upsert(ctx, "beta", statsWith(0.80, 10, 8)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Upsert(ctx, "alpha", statsWith(0.80, 10, 8)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Upsert(ctx, "gamma", statsWith(0.50, 10, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := store.TopN(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Ties share a rank, break alphabetically in listing order, and the next
	// distinct accuracy takes the following consecutive rank.
	if entries[0].ScoutID != "alpha" || entries[0].Rank != 1 {
		t.Errorf("expected alpha at rank 1, got %s at rank %d", entries[0].ScoutID, entries[0].Rank)
	}
	if entries[1].ScoutID != "beta" || entries[1].Rank != 1 {
		t.Errorf("expected beta at rank 1, got %s at rank %d", entries[1].ScoutID, entries[1].Rank)
	}
	if entries[2].ScoutID != "gamma" || entries[2].Rank != 2 {
		t.Errorf("expected gamma at rank 2, got %s at rank %d", entries[2].ScoutID, entries[2].Rank)
	}

	// Rank queries agree with the listing.
	for _, id := range []string{"alpha", "beta"} {
		entry, err := store.Rank(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Rank != 1 {
			t.Errorf("scout %s: expected rank 1, got %d", id, entry.Rank)
		}
	}
}

func TestTreapStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	if _, err := store.Rank(ctx, "ghost"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTreapStore_InvalidLimit(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	if _, err := store.TopN(ctx, 0); err != ErrInvalidLimit {
		t.Errorf("expected ErrInvalidLimit for 0, got %v", err)
	}
	if _, err := store.TopN(ctx, -5); err != ErrInvalidLimit {
		t.Errorf("expected ErrInvalidLimit for -5, got %v", err)
	}
}

func TestTreapStore_TopNBeyondSize(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("scout%d", i)
		if err := store.Upsert(ctx, id, statsWith(0.10*float64(i+1), 10, i+1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := store.TopN(ctx, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected all 3 entries, got %d", len(entries))
	}
}

func TestTreapStore_ManyScouts(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	const n = 500
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("scout%04d", i)
		acc := float64(i) / float64(n)
		if err := store.Upsert(ctx, id, statsWith(acc, 20, int(acc*20))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if count := store.Count(ctx); count != n {
		t.Errorf("expected count %d, got %d", n, count)
	}

	// Highest accuracy scout ranks first.
	best := fmt.Sprintf("scout%04d", n-1)
	entry, err := store.Rank(ctx, best)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Rank != 1 {
		t.Errorf("expected best scout at rank 1, got %d", entry.Rank)
	}

	top, err := store.TopN(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(top))
	}
	if top[0].ScoutID != best {
		t.Errorf("expected %s at the top, got %s", best, top[0].ScoutID)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Accuracy > top[i-1].Accuracy {
			t.Errorf("standings out of order at index %d", i)
		}
	}
}

func TestTreapStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx)
	defer store.Close()

	const (
		writers    = 8
		readers    = 8
		iterations = 200
	)

	var wg sync.WaitGroup

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(worker)))
			for i := 0; i < iterations; i++ {
				id := fmt.Sprintf("scout%d", rng.Intn(50))
				acc := rng.Float64()
				resolved := 10 + rng.Intn(40)
				if err := store.Upsert(ctx, id, statsWith(acc, resolved, int(acc*float64(resolved)))); err != nil {
					t.Errorf("upsert failed: %v", err)
					return
				}
			}
		}(w)
	}

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(1000 + worker)))
			for i := 0; i < iterations; i++ {
				switch rng.Intn(3) {
				case 0:
					id := fmt.Sprintf("scout%d", rng.Intn(50))
					if _, err := store.Rank(ctx, id); err != nil && err != ErrNotFound {
						t.Errorf("rank failed: %v", err)
						return
					}
				case 1:
					if _, err := store.TopN(ctx, 1+rng.Intn(20)); err != nil {
						t.Errorf("topN failed: %v", err)
						return
					}
				default:
					store.Count(ctx)
				}
			}
		}(r)
	}

	wg.Wait()

	// Every scout id appears at most once after the churn.
	entries, err := store.TopN(ctx, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.ScoutID] {
			t.Errorf("duplicate scout in standings: %s", e.ScoutID)
		}
		seen[e.ScoutID] = true
	}
	if len(entries) != store.Count(ctx) {
		t.Errorf("listing size %d disagrees with count %d", len(entries), store.Count(ctx))
	}
}

func TestTreapStore_CloseIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewTreapStore(ctx, WithMetricsUpdateInterval(10*time.Millisecond))

	if err := store.Upsert(ctx, "scout1", statsWith(0.5, 10, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("unexpected error on second close: %v", err)
	}

	// Reads still work after close.
	if count := store.Count(ctx); count != 1 {
		t.Errorf("expected count 1 after close, got %d", count)
	}
}

func TestTreapStore_ContextCancelStopsUpdater(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := NewTreapStore(ctx, WithMetricsUpdateInterval(10*time.Millisecond))

	cancel()

	// Close must return promptly once the context is cancelled.
	done := make(chan struct{})
	go func() {
		store.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after context cancellation")
	}
}
