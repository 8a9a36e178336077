package platform

import (
	"LyvoAdmin/internal/api/config"
	"LyvoAdmin/internal/model"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.Handler) Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.PlatformConfig{
		BaseURL:       srv.URL,
		AdminUserID:   "admin-1",
		Timeout:       5,
		PropertyLimit: 100,
	})
}

func TestFetchNotifications(t *testing.T) {
	var gotUserID string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Header.Get("x-user-id")
		if r.URL.Path != "/notifications" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"_id":"n1","type":"property_approval","title":"T","message":"M","action_url":"/admin/properties/p1","is_read":false,"createdAt":"2026-08-30T10:00:00.000Z"},
			{"_id":"n2","type":"general","message":"read one","is_read":true,"createdAt":"bad-time"}
		]}`))
	}))

	list, err := client.FetchNotifications(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if gotUserID != "admin-1" {
		t.Errorf("x-user-id header missing, got %q", gotUserID)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(list))
	}

	n := list[0]
	if n.ID != "n1" || n.Kind != model.KindPropertyApproval || n.Title != "T" ||
		n.Message != "M" || n.ActionURL != "/admin/properties/p1" || n.IsRead {
		t.Errorf("mapping mismatch: %+v", n)
	}
	if n.IsSynthetic {
		t.Error("fetched notifications are persisted, not synthetic")
	}
	want := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if !n.CreatedAt.Equal(want) {
		t.Errorf("createdAt mismatch: %v", n.CreatedAt)
	}

	// 无法解析的时间按零值处理
	if !list[1].IsRead || !list[1].CreatedAt.IsZero() {
		t.Errorf("mapping mismatch: %+v", list[1])
	}
}

func TestFetchUsers(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/all" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":[{"_id":"u1","name":"Alice","role":3,"createdAt":"2026-08-30T10:00:00Z"}]}`))
	}))

	list, err := client.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 user, got %d", len(list))
	}
	if list[0].ID != "u1" || list[0].Name != "Alice" || list[0].Role != model.RoleOwner {
		t.Errorf("mapping mismatch: %+v", list[0])
	}
}

func TestFetchPropertiesDataField(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/property/admin/properties" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "100" {
			t.Errorf("limit not forwarded: %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"data":[{"_id":"p1","property_name":"Sunset Villa","approval_status":"pending","createdAt":"2026-08-30T10:00:00Z"}]}`))
	}))

	list, err := client.FetchProperties(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 property, got %d", len(list))
	}
	if list[0].Name != "Sunset Villa" || list[0].ApprovalStatus != model.ApprovalPending {
		t.Errorf("mapping mismatch: %+v", list[0])
	}
}

func TestFetchPropertiesFallbackField(t *testing.T) {
	// 部分版本的后端把列表放在 properties 字段
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"properties":[{"_id":"p1","property_name":"P1","approval_status":"approved"}]}`))
	}))

	list, err := client.FetchProperties(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != "p1" {
		t.Fatalf("fallback field not honored: %+v", list)
	}
}

func TestFetchBadStatus(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	if _, err := client.FetchNotifications(context.Background()); err == nil {
		t.Error("non-200 must surface an error")
	}
	if _, err := client.FetchUsers(context.Background()); err == nil {
		t.Error("non-200 must surface an error")
	}
	if _, err := client.FetchProperties(context.Background()); err == nil {
		t.Error("non-200 must surface an error")
	}
}

func TestDeleteNotification(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	if err := client.DeleteNotification(context.Background(), "n1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/notifications/n1" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestDeleteNotificationFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	if err := client.DeleteNotification(context.Background(), "n1"); err == nil {
		t.Error("non-200 must surface an error")
	}
}
