package job

import (
	"LyvoAdmin/internal/service"
	"context"
	log "log/slog"
	"time"
)

// refreshTimeout 单次刷新允许的最长耗时，低于轮询间隔避免任务堆积
const refreshTimeout = 25 * time.Second

// FeedRefreshJob 定时刷新通知快照
type FeedRefreshJob struct {
	feedService service.FeedService
}

func NewFeedRefreshJob(feedService service.FeedService) *FeedRefreshJob {
	return &FeedRefreshJob{feedService: feedService}
}

func (s *FeedRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.feedService.Refresh(ctx); err != nil {
		// 刷新失败不致命，快照保持上一次的结果
		log.Warn("scheduled feed refresh failed", "err", err)
		return
	}
	log.Info("feed refreshed", "unread", s.feedService.UnreadCount())
}
