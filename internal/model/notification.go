package model

import "time"

// Kind 通知类型标签
type Kind string

const (
	KindPropertyApproval Kind = "property_approval"
	KindUserRegistration Kind = "user_registration"
	KindGeneral          Kind = "general"
)

// 合成通知 ID 前缀，与去重、清理逻辑共用
const (
	PendingPropertyPrefix = "pending-prop-"
	NewUserPrefix         = "new-user-"
)

// Notification 统一的通知实体，持久化记录与合成记录都映射到此结构
type Notification struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ActionURL   string    `json:"action_url,omitempty"`
	IsRead      bool      `json:"is_read"`
	IsSynthetic bool      `json:"is_synthetic"`
	CreatedAt   time.Time `json:"created_at"`
}

// KindMeta 通知类型对应的展示元数据
type KindMeta struct {
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Priority int    `json:"-"`
	// Family 用于与持久化记录做同类匹配
	Family string `json:"-"`
}

// kindMetaTable 类型到展示元数据的显式映射表，
// 取代原实现里按字符串片段猜测图标的写法
var kindMetaTable = map[Kind]KindMeta{
	KindPropertyApproval: {Icon: "home", Color: "#f59e0b", Priority: 0, Family: "property"},
	KindUserRegistration: {Icon: "user-plus", Color: "#3b82f6", Priority: 1, Family: "user"},
	KindGeneral:          {Icon: "bell", Color: "#6b7280", Priority: 1, Family: ""},
}

// MetaFor 查询类型元数据，未知类型按 general 处理
func MetaFor(k Kind) KindMeta {
	if meta, ok := kindMetaTable[k]; ok {
		return meta
	}
	return kindMetaTable[KindGeneral]
}

// Priority 排序桶：房源审批通知排在其他所有通知之前
func (k Kind) Priority() int {
	return MetaFor(k).Priority
}

// Family 同类匹配关键字，空串表示不参与同类去重
func (k Kind) Family() string {
	return MetaFor(k).Family
}
