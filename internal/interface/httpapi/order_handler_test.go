// internal/interface/httpapi/order_handler_test.go
package httpapi

import (
	"context"
	"net/http"
	"testing"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/usecase"
	"trackdesk-service/pkg/logger"
)

type fakeOrderService struct {
	placed    *entity.Order
	placeErr  error
	getResult *entity.Order
	getErr    error
	orders    []*entity.Order
}

func (f *fakeOrderService) Place(_ context.Context, _ usecase.PlaceOrderInput) (*entity.Order, error) {
	return f.placed, f.placeErr
}

func (f *fakeOrderService) Get(_ context.Context, _ string) (*entity.Order, error) {
	return f.getResult, f.getErr
}

func (f *fakeOrderService) List(_ context.Context) ([]*entity.Order, error) {
	return f.orders, nil
}

func TestOrderCreateSuccess(t *testing.T) {
	svc := &fakeOrderService{placed: &entity.Order{
		ID:             "o-1",
		ContractNumber: "VTS-20260315-0042",
		PackageDetails: entity.PackageDetails{Name: "Premium Package", Price: 28000},
	}}
	h := NewOrderHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodPost, "/api/order",
		`{"phoneNumber":"03001234567","message":"install at office","selectedPackage":"premium"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["contractNumber"] != "VTS-20260315-0042" {
		t.Errorf("unexpected contract number: %v", data["contractNumber"])
	}
	if data["price"] != float64(28000) {
		t.Errorf("unexpected price: %v", data["price"])
	}
}

func TestOrderCreateValidationFailure(t *testing.T) {
	h := NewOrderHandler(&fakeOrderService{}, logger.NewNop(), true)

	tests := []struct {
		name string
		body string
	}{
		{"bad package tier", `{"phoneNumber":"03001234567","message":"hi","selectedPackage":"platinum"}`},
		{"bad phone", `{"phoneNumber":"12345","message":"hi","selectedPackage":"basic"}`},
		{"missing message", `{"phoneNumber":"03001234567","selectedPackage":"basic"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodPost, "/api/order", tt.body)
			if err := h.Create(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestOrderGetNotFound(t *testing.T) {
	svc := &fakeOrderService{getErr: entity.ErrNotFound}
	h := NewOrderHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodGet, "/api/order/orders/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestOrderList(t *testing.T) {
	svc := &fakeOrderService{orders: []*entity.Order{{ID: "o-1"}, {ID: "o-2"}}}
	h := NewOrderHandler(svc, logger.NewNop(), true)

	c, rec := newTestContext(http.MethodGet, "/api/order/orders", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	orders := body["data"].([]any)
	if len(orders) != 2 {
		t.Errorf("expected 2 orders, got %d", len(orders))
	}
}
