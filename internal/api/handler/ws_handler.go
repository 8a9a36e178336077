package handler

import (
	"LyvoAdmin/internal/api/config"
	"LyvoAdmin/internal/pkg/consts"
	"LyvoAdmin/internal/pkg/redis"
	"LyvoAdmin/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	redisv9 "github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// resyncInterval 周期性重推当前未读数，兜底丢失的频道消息
const resyncInterval = 30 * time.Second

type WsHandler struct {
	feedService service.FeedService
}

func NewWsHandler(feedService service.FeedService) *WsHandler {
	return &WsHandler{feedService: feedService}
}

// Connect 管理后台导航栏的实时未读数推送
func (s *WsHandler) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	log.Info("管理端 WS 连接已建立")

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 连接建立后立即推送一次当前未读数
	if err = s.pushUnread(conn, s.feedService.UnreadCount()); err != nil {
		return
	}

	// Redis 可用时订阅未读数频道
	var redisCh <-chan *redisv9.Message
	if redis.GetRdbClient() != nil {
		channel := consts.NotifyUnreadChannel + config.Cfg.Platform.AdminUserID
		pubsub := redis.Subscribe(context.Background(), channel)
		defer func() {
			_ = pubsub.Close()
		}()
		redisCh = pubsub.Channel()
	}

	ticker := time.NewTicker(resyncInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-redisCh:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err = conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Error("WS 推送失败", "err", err)
				return
			}
		case <-ticker.C:
			if err = s.pushUnread(conn, s.feedService.UnreadCount()); err != nil {
				return
			}
		case <-stopChan:
			log.Info("管理端 WS 连接已断开")
			return
		}
	}
}

func (s *WsHandler) pushUnread(conn *websocket.Conn, count int) error {
	payload, err := json.Marshal(map[string]int{"unread_count": count})
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
