package service

import (
	"LyvoAdmin/internal/model"
	"strings"
)

// mergeFeed 合并持久化通知与合成候选。
// 持久化的未读记录原样进入结果；合成候选在以下情况被丢弃：
//  1. 其 ID 在忽略集合中；
//  2. 已存在指向同一主体的同族持久化记录 (后端已落库，合成的只是补位)；
//  3. ID 与已收录的任意条目重复。
func mergeFeed(persisted []model.Notification, candidates []syntheticNotification, dismissed map[string]struct{}) []model.Notification {
	feed := make([]model.Notification, 0, len(persisted)+len(candidates))
	seen := make(map[string]struct{}, len(persisted)+len(candidates))

	unread := make([]model.Notification, 0, len(persisted))
	for _, p := range persisted {
		if p.IsRead {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		unread = append(unread, p)
		feed = append(feed, p)
	}

	for _, c := range candidates {
		if _, ok := dismissed[c.ID]; ok {
			continue
		}
		if _, ok := seen[c.ID]; ok {
			continue
		}
		if hasPersistedTwin(unread, c) {
			continue
		}
		seen[c.ID] = struct{}{}
		feed = append(feed, c.Notification)
	}

	return feed
}

// hasPersistedTwin 主体名出现在持久化记录的 message 中且类型同族时视为重复。
// 子串匹配是沿用后端契约的妥协：通知记录不携带来源实体 ID。
func hasPersistedTwin(unread []model.Notification, c syntheticNotification) bool {
	family := c.Kind.Family()
	if c.subject == "" || family == "" {
		return false
	}
	for _, p := range unread {
		if strings.Contains(p.Message, c.subject) && strings.Contains(string(p.Kind), family) {
			return true
		}
	}
	return false
}
