package consts

// HeaderUserID 平台后端识别操作者身份的请求头
const HeaderUserID = "x-user-id"

// 管理后台各页面的跳转路径，合成通知的 action_url 指向这些页面
const (
	AdminPropertyDetailPath = "/admin/properties/"
	AdminSeekersPath        = "/admin/seekers"
	AdminOwnersPath         = "/admin/owners"
)
