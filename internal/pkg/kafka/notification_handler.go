package kafka

import (
	"LyvoAdmin/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// notificationEvent 平台通知事件的报文体
type notificationEvent struct {
	Type           string `json:"type"`
	NotificationID string `json:"notification_id"`
}

// NotificationEventHandler 消费平台的通知事件，触发一次带外刷新
type NotificationEventHandler struct {
	feedService service.FeedService
}

func NewNotificationEventHandler(feedService service.FeedService) *NotificationEventHandler {
	return &NotificationEventHandler{feedService: feedService}
}

func (s *NotificationEventHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("notification event consumer setup")
	return nil
}

func (s *NotificationEventHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("notification event consumer cleanup")
	return nil
}

func (s *NotificationEventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageCoalesced(session, claim, s.logic)
}

// logic 一批事件只触发一次刷新
func (s *NotificationEventHandler) logic(ctx context.Context, msgs []*sarama.ConsumerMessage) error {
	for _, msg := range msgs {
		var event notificationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Warn("invalid notification event payload", "err", err)
			continue
		}
		log.InfoContext(ctx, "notification event received", "type", event.Type, "notification_id", event.NotificationID)
	}

	refreshCtx, cancel := context.WithTimeout(ctx, 25*time.Second)
	defer cancel()
	return s.feedService.Refresh(refreshCtx)
}
