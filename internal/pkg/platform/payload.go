package platform

import (
	"LyvoAdmin/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

// 平台返回的原始报文结构，字段名与后端 Mongo 文档一致

type notificationEnvelope struct {
	Success bool                  `json:"success"`
	Data    []notificationPayload `json:"data"`
}

type notificationPayload struct {
	ID        string `json:"_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	ActionURL string `json:"action_url"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"createdAt"`
}

func (p notificationPayload) toModel() model.Notification {
	var n model.Notification
	_ = copier.Copy(&n, &p)
	n.Kind = model.Kind(p.Type)
	n.CreatedAt = parseTime(p.CreatedAt)
	n.IsSynthetic = false
	return n
}

type userEnvelope struct {
	Data []userPayload `json:"data"`
}

type userPayload struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Role      int    `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func (p userPayload) toModel() model.User {
	var u model.User
	_ = copier.Copy(&u, &p)
	u.CreatedAt = parseTime(p.CreatedAt)
	return u
}

type propertyEnvelope struct {
	Data       []propertyPayload `json:"data"`
	Properties []propertyPayload `json:"properties"`
}

type propertyPayload struct {
	ID             string `json:"_id"`
	PropertyName   string `json:"property_name"`
	ApprovalStatus string `json:"approval_status"`
	CreatedAt      string `json:"createdAt"`
}

func (p propertyPayload) toModel() model.Property {
	return model.Property{
		ID:             p.ID,
		Name:           p.PropertyName,
		ApprovalStatus: p.ApprovalStatus,
		CreatedAt:      parseTime(p.CreatedAt),
	}
}

// parseTime 解析后端时间串，解析失败按零值处理 (仅影响排序位置)
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
