package handler

import (
	"LyvoAdmin/internal/api/dto"
	"LyvoAdmin/internal/pkg/response"
	"LyvoAdmin/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	feedService service.FeedService
}

func NewNotificationHandler(feedService service.FeedService) *NotificationHandler {
	return &NotificationHandler{feedService: feedService}
}

// GetFeed 获取聚合后的通知流
func (h *NotificationHandler) GetFeed(c *gin.Context) {
	response.Success(c, h.feedDTO())
}

// GetUnread 获取未读数
func (h *NotificationHandler) GetUnread(c *gin.Context) {
	response.Success(c, dto.UnreadDTO{UnreadCount: h.feedService.UnreadCount()})
}

// Refresh 立即触发一次带外刷新
func (h *NotificationHandler) Refresh(c *gin.Context) {
	if err := h.feedService.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, h.feedDTO())
}

// Dismiss 忽略一条通知
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	id := c.Param("notification_id")
	if id == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := h.feedService.Dismiss(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.UnreadDTO{UnreadCount: h.feedService.UnreadCount()})
}

func (h *NotificationHandler) feedDTO() dto.FeedDTO {
	feed := h.feedService.Feed()

	items := make([]dto.NotificationDTO, 0, len(feed))
	for _, n := range feed {
		items = append(items, dto.NewNotificationDTO(n))
	}

	d := dto.FeedDTO{
		Items:       items,
		UnreadCount: len(items),
	}
	if at := h.feedService.RefreshedAt(); !at.IsZero() {
		d.RefreshedAt = at.UTC().Format(time.RFC3339)
	}
	return d
}
