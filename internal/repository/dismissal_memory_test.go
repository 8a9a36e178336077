package repository

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryRecordIdempotent(t *testing.T) {
	repo := NewMemoryDismissalRepo(50, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Record(ctx, "new-user-u1"); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("duplicate records stored: %v", list)
	}
}

func TestMemoryPruneDropsUnknownPrefixes(t *testing.T) {
	repo := NewMemoryDismissalRepo(50, time.Hour)
	ctx := context.Background()

	ids := []string{"new-user-u1", "pending-prop-p1", "legacy-xyz", "n42"}
	for _, id := range ids {
		if err := repo.Record(ctx, id); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	if err := repo.Prune(ctx); err != nil {
		t.Fatalf("prune failed: %v", err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 2 {
		t.Fatalf("only synthetic prefixes should survive: %v", list)
	}
	for _, id := range list {
		if id != "new-user-u1" && id != "pending-prop-p1" {
			t.Errorf("unexpected survivor %q", id)
		}
	}
}

func TestMemoryPruneEnforcesCapacity(t *testing.T) {
	repo := NewMemoryDismissalRepo(50, time.Hour)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		if err := repo.Record(ctx, fmt.Sprintf("new-user-u%03d", i)); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	if err := repo.Prune(ctx); err != nil {
		t.Fatalf("prune failed: %v", err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 50 {
		t.Fatalf("capacity bound not enforced: %d", len(list))
	}
	// 淘汰的是最早的 10 条
	if list[0] != "new-user-u010" {
		t.Errorf("oldest entries should be evicted first, got %q", list[0])
	}

	// 淘汰后同一 ID 可以再次记录
	if err := repo.Record(ctx, "new-user-u000"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	list, _ = repo.List(ctx)
	if len(list) != 51 {
		t.Errorf("evicted id should be recordable again, got %d entries", len(list))
	}
}

func TestMemoryPruneDropsExpiredEntries(t *testing.T) {
	// maxAge=0 时所有条目都早于 cutoff
	repo := NewMemoryDismissalRepo(50, 0)
	ctx := context.Background()

	if err := repo.Record(ctx, "new-user-u1"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	time.Sleep(time.Millisecond)
	if err := repo.Prune(ctx); err != nil {
		t.Fatalf("prune failed: %v", err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expired entries should be dropped: %v", list)
	}

	fresh := NewMemoryDismissalRepo(50, time.Hour)
	if err := fresh.Record(ctx, "new-user-u1"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := fresh.Prune(ctx); err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	list, _ = fresh.List(ctx)
	if len(list) != 1 {
		t.Fatal("fresh entries within the age bound must survive")
	}
}
