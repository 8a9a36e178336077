package service

import (
	"LyvoAdmin/internal/model"
	"testing"
	"time"
)

func TestRankPropertyApprovalFirst(t *testing.T) {
	now := time.Now()
	feed := []model.Notification{
		{ID: "u1", Kind: model.KindUserRegistration, CreatedAt: now},
		{ID: "g1", Kind: model.KindGeneral, CreatedAt: now.Add(time.Hour)},
		{ID: "p1", Kind: model.KindPropertyApproval, CreatedAt: now.Add(-time.Hour)},
	}

	rankFeed(feed)

	if feed[0].ID != "p1" {
		t.Fatalf("property approval must rank first even when older: %+v", feed)
	}

	// 不变式：相邻两项优先级非降，同优先级时间非增
	for i := 0; i < len(feed)-1; i++ {
		a, b := feed[i], feed[i+1]
		if a.Kind.Priority() > b.Kind.Priority() {
			t.Fatalf("priority order violated at %d", i)
		}
		if a.Kind.Priority() == b.Kind.Priority() && a.CreatedAt.Before(b.CreatedAt) {
			t.Fatalf("recency order violated at %d", i)
		}
	}
}

func TestRankRecencyWithinBucket(t *testing.T) {
	now := time.Now()
	feed := []model.Notification{
		{ID: "old", Kind: model.KindGeneral, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "new", Kind: model.KindGeneral, CreatedAt: now},
		{ID: "mid", Kind: model.KindGeneral, CreatedAt: now.Add(-time.Hour)},
	}

	rankFeed(feed)

	for i, want := range []string{"new", "mid", "old"} {
		if feed[i].ID != want {
			t.Errorf("slot %d: got %s, want %s", i, feed[i].ID, want)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	feed := []model.Notification{
		{ID: "a", Kind: model.KindGeneral, CreatedAt: at},
		{ID: "b", Kind: model.KindGeneral, CreatedAt: at},
		{ID: "c", Kind: model.KindGeneral, CreatedAt: at},
	}

	rankFeed(feed)

	for i, want := range []string{"a", "b", "c"} {
		if feed[i].ID != want {
			t.Fatalf("tie order not stable: slot %d got %s", i, feed[i].ID)
		}
	}
}
