package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrNotificationNotFound = errors.New("通知不存在")
	ErrFeedRefresh          = errors.New("通知源拉取失败")
	ErrDismissFailed        = errors.New("通知删除失败")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrNotificationNotFound: NotFound,
	ErrFeedRefresh:          InternalServerError,
	ErrDismissFailed:        InternalServerError,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
