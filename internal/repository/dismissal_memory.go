package repository

import (
	"context"
	"sync"
	"time"
)

type dismissEntry struct {
	id string
	at time.Time
}

// MemoryDismissalRepo 进程内的忽略集合，Redis 不可用时的降级实现，也用于单元测试
type MemoryDismissalRepo struct {
	mu         sync.Mutex
	entries    []dismissEntry
	seen       map[string]struct{}
	maxEntries int
	maxAge     time.Duration
}

func NewMemoryDismissalRepo(maxEntries int, maxAge time.Duration) *MemoryDismissalRepo {
	return &MemoryDismissalRepo{
		seen:       make(map[string]struct{}),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

func (s *MemoryDismissalRepo) Record(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[id]; ok {
		return nil
	}
	s.seen[id] = struct{}{}
	s.entries = append(s.entries, dismissEntry{id: id, at: time.Now()})
	return nil
}

func (s *MemoryDismissalRepo) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		list = append(list, e.id)
	}
	return list, nil
}

func (s *MemoryDismissalRepo) Prune(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxAge)
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !hasKnownPrefix(e.id) || e.at.Before(cutoff) {
			delete(s.seen, e.id)
			continue
		}
		kept = append(kept, e)
	}

	// 超出容量时淘汰最早的条目
	if len(kept) > s.maxEntries {
		for _, e := range kept[:len(kept)-s.maxEntries] {
			delete(s.seen, e.id)
		}
		kept = kept[len(kept)-s.maxEntries:]
	}

	s.entries = kept
	return nil
}
