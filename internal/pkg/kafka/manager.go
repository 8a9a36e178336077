package kafka

import (
	"LyvoAdmin/internal/api/config"
	"LyvoAdmin/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理通知事件消费者
type ConsumerManager struct {
	notificationConsumer sarama.ConsumerGroup
	notificationHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, feedService service.FeedService) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	notificationConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaNotificationConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		notificationConsumer: notificationConsumer,
		notificationHandler:  NewNotificationEventHandler(feedService),
	}, nil
}

// Start 启动消费者，阻塞到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaNotificationConsumer.Topic
		log.Info("Notification event consumer started", "topic", topic)
		for {
			if err := m.notificationConsumer.Consume(ctx, []string{topic}, m.notificationHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.notificationConsumer.Close(); err != nil {
		log.Error("Failed to close notification consumer", "err", err)
	}

	return nil
}
