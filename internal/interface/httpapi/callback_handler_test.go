// internal/interface/httpapi/callback_handler_test.go
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/usecase"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/validator"
)

type fakeCallbackService struct {
	submitReceipt *usecase.CallbackReceipt
	submitErr     error
	getResult     *entity.CallbackRequest
	getErr        error
	updatePatch   entity.CallbackUpdate
	updateErr     error
	deleteErr     error
	listQuery     usecase.ListCallbacksQuery
	listResult    *usecase.CallbackList
	listErr       error
	statsResult   *entity.CallbackStats
}

func (f *fakeCallbackService) Submit(_ context.Context, _ usecase.SubmitCallbackInput) (*usecase.CallbackReceipt, error) {
	return f.submitReceipt, f.submitErr
}

func (f *fakeCallbackService) Get(_ context.Context, _ string) (*entity.CallbackRequest, error) {
	return f.getResult, f.getErr
}

func (f *fakeCallbackService) Update(_ context.Context, _ string, patch entity.CallbackUpdate) (*entity.CallbackRequest, error) {
	f.updatePatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &entity.CallbackRequest{ID: "id-1"}, nil
}

func (f *fakeCallbackService) Delete(_ context.Context, _ string) error {
	return f.deleteErr
}

func (f *fakeCallbackService) List(_ context.Context, query usecase.ListCallbacksQuery) (*usecase.CallbackList, error) {
	f.listQuery = query
	return f.listResult, f.listErr
}

func (f *fakeCallbackService) Stats(_ context.Context) (*entity.CallbackStats, error) {
	return f.statsResult, nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestCallbackCreateSuccess(t *testing.T) {
	svc := &fakeCallbackService{
		submitReceipt: &usecase.CallbackReceipt{
			RequestID:         "req-1",
			Name:              "Ali Khan",
			SelectedService:   entity.ServiceCarTracking,
			Status:            entity.StatusPending,
			Priority:          entity.PriorityMedium,
			CreatedAt:         time.Now(),
			EstimatedCallTime: "Within 24 hours",
		},
	}
	h := NewCallbackHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodPost, "/api/callback",
		`{"name":"Ali Khan","phoneNumber":"+923001234567","selectedService":"Car Tracking","message":"interested"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Error("expected success=true")
	}
	data := body["data"].(map[string]any)
	if data["requestId"] != "req-1" {
		t.Errorf("expected requestId req-1, got %v", data["requestId"])
	}
	if data["estimatedCallTime"] != "Within 24 hours" {
		t.Errorf("unexpected estimatedCallTime: %v", data["estimatedCallTime"])
	}
}

func TestCallbackCreateValidationFailure(t *testing.T) {
	h := NewCallbackHandler(&fakeCallbackService{}, logger.NewNop(), true)

	tests := []struct {
		name string
		body string
	}{
		{"name too short", `{"name":"A","phoneNumber":"+923001234567","selectedService":"Car Tracking"}`},
		{"name with digits", `{"name":"Ali123","phoneNumber":"+923001234567","selectedService":"Car Tracking"}`},
		{"bad phone", `{"name":"Ali Khan","phoneNumber":"not-a-phone","selectedService":"Car Tracking"}`},
		{"unknown service", `{"name":"Ali Khan","phoneNumber":"+923001234567","selectedService":"Boat Tracking"}`},
		{"missing fields", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodPost, "/api/callback", tt.body)
			if err := h.Create(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCallbackCreateDuplicate(t *testing.T) {
	svc := &fakeCallbackService{submitErr: entity.ErrDuplicateRequest}
	h := NewCallbackHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodPost, "/api/callback",
		`{"name":"Ali Khan","phoneNumber":"+923001234567","selectedService":"Car Tracking"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Error("expected success=false")
	}
}

func TestCallbackGetNotFound(t *testing.T) {
	svc := &fakeCallbackService{getErr: entity.ErrNotFound}
	h := NewCallbackHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodGet, "/api/callback/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCallbackUpdateDropsUnknownFields(t *testing.T) {
	svc := &fakeCallbackService{}
	h := NewCallbackHandler(svc, logger.NewNop(), true)

	// phoneNumber and callAttempts are not admin-updatable and must be ignored.
	c, rec := newTestContext(http.MethodPut, "/api/callback/id-1",
		`{"status":"called","phoneNumber":"+920000000000","callAttempts":99,"notes":"left voicemail"}`)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if svc.updatePatch.Status == nil || *svc.updatePatch.Status != entity.StatusCalled {
		t.Error("status should be patched")
	}
	if svc.updatePatch.Notes == nil || *svc.updatePatch.Notes != "left voicemail" {
		t.Error("notes should be patched")
	}
	if svc.updatePatch.Priority != nil || svc.updatePatch.AssignedTo != nil {
		t.Error("unset fields must stay nil")
	}
}

func TestCallbackUpdateInvalidStatus(t *testing.T) {
	h := NewCallbackHandler(&fakeCallbackService{}, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodPut, "/api/callback/id-1", `{"status":"archived"}`)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCallbackDeleteNotFound(t *testing.T) {
	svc := &fakeCallbackService{deleteErr: entity.ErrNotFound}
	h := NewCallbackHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodDelete, "/api/callback/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCallbackListQueryParsing(t *testing.T) {
	svc := &fakeCallbackService{listResult: &usecase.CallbackList{
		Requests:     []*entity.CallbackRequest{},
		StatusCounts: map[string]int64{},
	}}
	h := NewCallbackHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodGet,
		"/api/callback?page=2&limit=5&status=pending&priority=high&service=Fleet+Management&fromDate=2026-03-01", "")

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	q := svc.listQuery
	if q.Page != 2 || q.Limit != 5 {
		t.Errorf("unexpected paging: page=%d limit=%d", q.Page, q.Limit)
	}
	if q.Filter.Status != entity.StatusPending || q.Filter.Priority != entity.PriorityHigh {
		t.Errorf("unexpected filter: %+v", q.Filter)
	}
	if q.Filter.Service != entity.ServiceFleetManagement {
		t.Errorf("unexpected service filter: %q", q.Filter.Service)
	}
	if q.Filter.FromDate == nil || !q.Filter.FromDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected fromDate: %v", q.Filter.FromDate)
	}
}

func TestCallbackListRejectsBadQuery(t *testing.T) {
	h := NewCallbackHandler(&fakeCallbackService{}, logger.NewNop(), true)

	tests := []struct {
		name   string
		target string
	}{
		{"zero page", "/api/callback?page=0"},
		{"limit too large", "/api/callback?limit=500"},
		{"unknown status", "/api/callback?status=archived"},
		{"unknown priority", "/api/callback?priority=critical"},
		{"malformed date", "/api/callback?fromDate=march-first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodGet, tt.target, "")
			if err := h.List(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestCallbackStats(t *testing.T) {
	svc := &fakeCallbackService{statsResult: &entity.CallbackStats{
		Today:      map[string]int64{entity.StatusPending: 2},
		ThisWeek:   map[string]int64{},
		ThisMonth:  map[string]int64{},
		ByService:  map[string]int64{entity.ServiceCarTracking: 5},
		ByPriority: map[string]int64{},
	}}
	h := NewCallbackHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodGet, "/api/callback/stats", "")
	if err := h.Stats(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	today := data["today"].(map[string]any)
	if today["pending"] != float64(2) {
		t.Errorf("unexpected today counts: %v", today)
	}
}
