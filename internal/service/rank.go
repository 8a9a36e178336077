package service

import (
	"LyvoAdmin/internal/model"
	"sort"
)

// rankFeed 稳定排序：先按类型优先级桶 (房源审批最前)，再按创建时间倒序。
// 优先级与时间都相同的条目保持合并时的相对顺序。
func rankFeed(feed []model.Notification) {
	sort.SliceStable(feed, func(i, j int) bool {
		pi, pj := feed[i].Kind.Priority(), feed[j].Kind.Priority()
		if pi != pj {
			return pi < pj
		}
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
}
