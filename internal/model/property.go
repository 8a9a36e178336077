package model

import "time"

// 房源审批状态
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Property 平台房源（来自 /property/admin/properties）
type Property struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ApprovalStatus string    `json:"approval_status"`
	CreatedAt      time.Time `json:"created_at"`
}
