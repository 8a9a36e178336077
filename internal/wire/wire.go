package wire

import (
	"LyvoAdmin/internal/api"
	"LyvoAdmin/internal/api/config"
	"LyvoAdmin/internal/api/handler"
	"LyvoAdmin/internal/job"
	"LyvoAdmin/internal/pkg/cron"
	"LyvoAdmin/internal/pkg/kafka"
	"LyvoAdmin/internal/pkg/platform"
	"LyvoAdmin/internal/pkg/redis"
	"LyvoAdmin/internal/repository"
	"LyvoAdmin/internal/service"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	FeedService  service.FeedService
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	platformClient := platform.NewClient(cfg.Platform)

	maxAge := time.Duration(cfg.Feed.DismissMaxAgeDays) * 24 * time.Hour

	// Redis 不可用时降级为进程内忽略集合
	var dismissals repository.DismissalRepo
	if redis.GetRdbClient() != nil {
		dismissals = repository.NewRedisDismissalRepo(cfg.Platform.AdminUserID, cfg.Feed.DismissMaxEntries, maxAge)
	} else {
		log.Warn("Redis unavailable, dismissal store degraded to in-memory")
		dismissals = repository.NewMemoryDismissalRepo(cfg.Feed.DismissMaxEntries, maxAge)
	}

	feedService := service.NewFeedService(platformClient, dismissals, cfg.Feed, cfg.Platform.AdminUserID)

	handlers := &api.HandlersGroup{
		NotificationHandler: handler.NewNotificationHandler(feedService),
		WsHandler:           handler.NewWsHandler(feedService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewFeedRefreshJob(feedService),
		job.NewDismissalPruneJob(dismissals),
	)

	// Kafka 为可选依赖：未配置 broker 时跳过事件消费
	var kafkaMgr *kafka.ConsumerManager
	if len(cfg.Kafka.Brokers) > 0 {
		var err error
		kafkaMgr, err = kafka.NewConsumerManager(cfg, feedService)
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("Kafka brokers not configured, notification events disabled")
	}

	return &ApplicationContainer{
		Router:       router,
		FeedService:  feedService,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
