package consts

const (
	// NotifyDismissedKey 管理员已忽略的合成通知集合 (ZSet, score 为忽略时间)
	NotifyDismissedKey = "notify:dismissed:"
	// NotifyUnreadChannel 未读数变化的推送频道
	NotifyUnreadChannel = "notify:unread:"
)
