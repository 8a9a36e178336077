package service

import (
	"LyvoAdmin/internal/api/config"
	"LyvoAdmin/internal/model"
	"LyvoAdmin/internal/pkg/consts"
	"LyvoAdmin/internal/pkg/platform"
	"LyvoAdmin/internal/pkg/redis"
	"LyvoAdmin/internal/repository"
	"context"
	log "log/slog"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// FeedService 通知聚合器：维护合并去重排序后的未读通知快照
type FeedService interface {
	// Refresh 并发拉取三个数据源并重建快照；任一拉取失败保留上一份快照
	Refresh(ctx context.Context) error
	// Feed 返回当前快照的副本
	Feed() []model.Notification
	// UnreadCount 未读数，即当前快照长度
	UnreadCount() int
	// RefreshedAt 上次成功刷新时间，从未成功时为零值
	RefreshedAt() time.Time
	// Dismiss 忽略一条通知：合成的记入忽略集合，持久化的删除后端记录
	Dismiss(ctx context.Context, id string) error
}

type feedServiceImpl struct {
	client     platform.Client
	dismissals repository.DismissalRepo
	limits     syntheticLimits
	channel    string

	mu          sync.RWMutex
	feed        []model.Notification
	refreshedAt time.Time
}

func NewFeedService(client platform.Client, dismissals repository.DismissalRepo, feedCfg config.FeedConfig, adminID string) FeedService {
	return &feedServiceImpl{
		client:     client,
		dismissals: dismissals,
		limits: syntheticLimits{
			pendingLimit:  feedCfg.PendingLimit,
			newUserLimit:  feedCfg.NewUserLimit,
			newUserWindow: time.Duration(feedCfg.NewUserWindowHour) * time.Hour,
		},
		channel: consts.NotifyUnreadChannel + adminID,
	}
}

func (s *feedServiceImpl) Refresh(ctx context.Context) error {
	var (
		persisted []model.Notification
		users     []model.User
		props     []model.Property
	)

	// 三个数据源并发拉取，全部成功才重建快照
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		persisted, err = s.client.FetchNotifications(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.client.FetchUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		props, err = s.client.FetchProperties(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "feed refresh failed, keeping last snapshot", "err", err)
		return ErrFeedRefresh
	}

	dismissedList, err := s.dismissals.List(ctx)
	if err != nil {
		// 忽略集合不可用按空集处理，已忽略的合成通知会临时重现
		log.WarnContext(ctx, "dismissal store unavailable, treating as empty", "err", err)
		dismissedList = nil
	}
	dismissed := make(map[string]struct{}, len(dismissedList))
	for _, id := range dismissedList {
		dismissed[id] = struct{}{}
	}

	candidates := buildSyntheticNotifications(props, users, time.Now(), s.limits)
	feed := mergeFeed(persisted, candidates, dismissed)
	rankFeed(feed)

	s.mu.Lock()
	changed := len(s.feed) != len(feed) || s.refreshedAt.IsZero()
	s.feed = feed
	s.refreshedAt = time.Now()
	s.mu.Unlock()

	if changed {
		s.publishUnread(ctx, len(feed))
	}
	return nil
}

func (s *feedServiceImpl) Feed() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, len(s.feed))
	copy(out, s.feed)
	return out
}

func (s *feedServiceImpl) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.feed)
}

func (s *feedServiceImpl) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

func (s *feedServiceImpl) Dismiss(ctx context.Context, id string) error {
	target, ok := s.lookup(id)
	if !ok {
		return ErrNotificationNotFound
	}

	if target.IsSynthetic {
		// 合成通知没有后端记录，仅本地记账
		if err := s.dismissals.Record(ctx, id); err != nil {
			log.ErrorContext(ctx, "failed to record dismissal", "id", id, "err", err)
			return ErrDismissFailed
		}
		s.removeFromFeed(ctx, id)
		return nil
	}

	if err := s.client.DeleteNotification(ctx, id); err != nil {
		// 删除失败保留条目，管理员可重试
		log.ErrorContext(ctx, "failed to delete persisted notification", "id", id, "err", err)
		return ErrDismissFailed
	}
	s.removeFromFeed(ctx, id)

	// 删除成功后对齐源数据，失败不影响本次结果
	_ = s.Refresh(ctx)
	return nil
}

func (s *feedServiceImpl) lookup(id string) (model.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.feed {
		if n.ID == id {
			return n, true
		}
	}
	return model.Notification{}, false
}

func (s *feedServiceImpl) removeFromFeed(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.feed[:0]
	for _, n := range s.feed {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.feed = kept
	count := len(kept)
	s.mu.Unlock()

	s.publishUnread(ctx, count)
}

// publishUnread 把最新未读数发布到 Redis 频道，供 WebSocket 端推送
func (s *feedServiceImpl) publishUnread(ctx context.Context, count int) {
	if redis.GetRdbClient() == nil {
		return
	}

	payload, err := json.Marshal(map[string]int{"unread_count": count})
	if err != nil {
		return
	}
	if err = redis.Publish(ctx, s.channel, payload); err != nil {
		log.WarnContext(ctx, "failed to publish unread count", "err", err)
	}
}
