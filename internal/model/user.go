package model

import "time"

// 平台用户角色，数值与 Lyvo 后端一致
const (
	RoleSeeker = 1
	RoleAdmin  = 2
	RoleOwner  = 3
)

// User 平台用户（来自 /user/all）
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleNoun 角色对应的展示名词
func (u User) RoleNoun() string {
	switch u.Role {
	case RoleSeeker:
		return "Seeker"
	case RoleOwner:
		return "Owner"
	default:
		return "User"
	}
}
