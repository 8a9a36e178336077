package platform

import (
	"LyvoAdmin/internal/api/config"
	"LyvoAdmin/internal/model"
	"LyvoAdmin/internal/pkg/consts"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Client Lyvo 平台后端的只读接口 + 通知删除
type Client interface {
	FetchNotifications(ctx context.Context) ([]model.Notification, error)
	FetchUsers(ctx context.Context) ([]model.User, error)
	FetchProperties(ctx context.Context) ([]model.Property, error)
	DeleteNotification(ctx context.Context, id string) error
}

type restClient struct {
	http          *resty.Client
	propertyLimit int
}

// NewClient 所有请求携带 x-user-id 头标识操作管理员
func NewClient(cfg config.PlatformConfig) Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader(consts.HeaderUserID, cfg.AdminUserID)

	return &restClient{
		http:          c,
		propertyLimit: cfg.PropertyLimit,
	}
}

func (s *restClient) FetchNotifications(ctx context.Context) ([]model.Notification, error) {
	body, err := s.get(ctx, "/notifications")
	if err != nil {
		return nil, err
	}

	var envelope notificationEnvelope
	if err = json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "解析通知列表失败")
	}

	list := make([]model.Notification, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		list = append(list, p.toModel())
	}
	return list, nil
}

func (s *restClient) FetchUsers(ctx context.Context) ([]model.User, error) {
	body, err := s.get(ctx, "/user/all")
	if err != nil {
		return nil, err
	}

	var envelope userEnvelope
	if err = json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "解析用户列表失败")
	}

	list := make([]model.User, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		list = append(list, p.toModel())
	}
	return list, nil
}

func (s *restClient) FetchProperties(ctx context.Context) ([]model.Property, error) {
	path := "/property/admin/properties?limit=" + strconv.Itoa(s.propertyLimit)
	body, err := s.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var envelope propertyEnvelope
	if err = json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "解析房源列表失败")
	}

	// 部分版本的后端把列表放在 properties 字段
	payload := envelope.Data
	if len(payload) == 0 {
		payload = envelope.Properties
	}

	list := make([]model.Property, 0, len(payload))
	for _, p := range payload {
		list = append(list, p.toModel())
	}
	return list, nil
}

func (s *restClient) DeleteNotification(ctx context.Context, id string) error {
	resp, err := s.http.R().SetContext(ctx).Delete("/notifications/" + id)
	if err != nil {
		return errors.Wrap(err, "删除通知请求失败")
	}
	if resp.StatusCode() != http.StatusOK {
		return errors.New(fmt.Sprintf("删除通知失败: status=%d", resp.StatusCode()))
	}
	return nil
}

// get 发起 GET 请求并校验状态码
func (s *restClient) get(ctx context.Context, path string) ([]byte, error) {
	resp, err := s.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, errors.Wrapf(err, "请求平台接口失败: %s", path)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.New(fmt.Sprintf("平台接口返回异常: path=%s status=%d", path, resp.StatusCode()))
	}
	return resp.Body(), nil
}
