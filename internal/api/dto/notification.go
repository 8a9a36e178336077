package dto

import (
	"LyvoAdmin/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

// NotificationDTO 通知返回对象，附带类型对应的展示元数据
type NotificationDTO struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	ActionURL   string `json:"action_url,omitempty"`
	IsSynthetic bool   `json:"is_synthetic"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	CreatedAt   string `json:"created_at"`
}

// FeedDTO 通知流返回对象
type FeedDTO struct {
	Items       []NotificationDTO `json:"items"`
	UnreadCount int               `json:"unread_count"`
	RefreshedAt string            `json:"refreshed_at,omitempty"`
}

// UnreadDTO 未读数返回
type UnreadDTO struct {
	UnreadCount int `json:"unread_count"`
}

// NewNotificationDTO 模型到返回对象的转换
func NewNotificationDTO(n model.Notification) NotificationDTO {
	d := NotificationDTO{}
	_ = copier.Copy(&d, &n)
	d.Kind = string(n.Kind)
	d.CreatedAt = n.CreatedAt.UTC().Format(time.RFC3339)

	meta := model.MetaFor(n.Kind)
	d.Icon = meta.Icon
	d.Color = meta.Color
	return d
}
