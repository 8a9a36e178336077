package service

import (
	"LyvoAdmin/internal/model"
	"LyvoAdmin/internal/pkg/consts"
	"sort"
	"time"
)

// syntheticLimits 合成通知的生成参数
type syntheticLimits struct {
	pendingLimit  int
	newUserLimit  int
	newUserWindow time.Duration
}

// syntheticNotification 附带 subject (房源名/用户名)，供合并阶段做同主体去重
type syntheticNotification struct {
	model.Notification
	subject string
}

// buildSyntheticNotifications 从原始房源/用户列表推导合成通知。
// 纯函数：任一输入为空按空列表处理，不产生副作用。
func buildSyntheticNotifications(props []model.Property, users []model.User, now time.Time, limits syntheticLimits) []syntheticNotification {
	out := make([]syntheticNotification, 0, limits.pendingLimit+limits.newUserLimit)

	// 待审批房源：保持源列表顺序，最多取 pendingLimit 条
	taken := 0
	for _, p := range props {
		if p.ApprovalStatus != model.ApprovalPending {
			continue
		}
		if taken >= limits.pendingLimit {
			break
		}
		taken++

		out = append(out, syntheticNotification{
			Notification: model.Notification{
				ID:          model.PendingPropertyPrefix + p.ID,
				Kind:        model.KindPropertyApproval,
				Title:       "Property Approval Required",
				Message:     p.Name + " is waiting for approval",
				ActionURL:   consts.AdminPropertyDetailPath + p.ID,
				IsSynthetic: true,
				CreatedAt:   p.CreatedAt,
			},
			subject: p.Name,
		})
	}

	// 窗口期内注册的非管理员用户：按注册时间倒序，最多取 newUserLimit 条
	cutoff := now.Add(-limits.newUserWindow)
	recent := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			continue
		}
		if !u.CreatedAt.After(cutoff) {
			continue
		}
		recent = append(recent, u)
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limits.newUserLimit {
		recent = recent[:limits.newUserLimit]
	}

	for _, u := range recent {
		actionURL := consts.AdminSeekersPath
		if u.Role == model.RoleOwner {
			actionURL = consts.AdminOwnersPath
		}

		out = append(out, syntheticNotification{
			Notification: model.Notification{
				ID:          model.NewUserPrefix + u.ID,
				Kind:        model.KindUserRegistration,
				Title:       "New " + u.RoleNoun() + " Registered",
				Message:     u.Name + " has joined the platform",
				ActionURL:   actionURL,
				IsSynthetic: true,
				CreatedAt:   u.CreatedAt,
			},
			subject: u.Name,
		})
	}

	return out
}
