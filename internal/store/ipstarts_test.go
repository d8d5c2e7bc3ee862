package store

import (
	"testing"
	"time"
)

func TestIPStartsCountAndPurge(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	if err := st.InsertIPStart(ctx, "10.0.0.1"); err != nil {
		t.Fatalf("insert ip start: %v", err)
	}
	if err := st.InsertIPStart(ctx, "10.0.0.1"); err != nil {
		t.Fatalf("insert ip start: %v", err)
	}
	if err := st.InsertIPStart(ctx, "10.0.0.2"); err != nil {
		t.Fatalf("insert ip start: %v", err)
	}

	count, err := st.CountIPStartsSince(ctx, "10.0.0.1", time.Now().Add(-60*time.Second))
	if err != nil {
		t.Fatalf("count ip starts: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	count, err = st.CountIPStartsSince(ctx, "10.0.0.1", time.Now().Add(time.Minute))
	if err != nil || count != 0 {
		t.Fatalf("future-window count = %d, %v", count, err)
	}

	purged, err := st.PurgeIPStartsBefore(ctx, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 3 {
		t.Fatalf("purged = %d, want 3", purged)
	}
	count, err = st.CountIPStartsSince(ctx, "10.0.0.1", time.Now().Add(-time.Hour))
	if err != nil || count != 0 {
		t.Fatalf("post-purge count = %d, %v", count, err)
	}
}
