package job

import (
	"LyvoAdmin/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// DismissalPruneJob 每日清理忽略集合：未知前缀、过期条目、超容量条目
type DismissalPruneJob struct {
	dismissals repository.DismissalRepo
}

func NewDismissalPruneJob(dismissals repository.DismissalRepo) *DismissalPruneJob {
	return &DismissalPruneJob{dismissals: dismissals}
}

func (s *DismissalPruneJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.dismissals.Prune(ctx); err != nil {
		log.Error("dismissal prune job failed", "err", err)
		return
	}
	log.Info("dismissal store pruned")
}
