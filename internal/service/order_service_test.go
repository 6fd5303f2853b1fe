package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	store := newFakeOrders()
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventOrderCreated, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})
	svc := NewOrderService(store, dispatcher, nil)

	order, items, err := svc.CreateOrder(context.Background(), OrderCreateInput{
		CustomerName: "Ada",
		Email:        "ada@example.com",
		Items: []OrderItemInput{
			{ProductID: "p1", ProductName: "Mug", Quantity: 2, UnitPrice: 1500},
			{ProductID: "p2", ProductName: "Tee", Quantity: 1, UnitPrice: 4000},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if order.TotalAmount != 7000 {
		t.Errorf("TotalAmount = %d, want 7000", order.TotalAmount)
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("Status = %s, want pending", order.Status)
	}
	for _, item := range items {
		if item.ID == "" || item.OrderID != order.ID {
			t.Errorf("item not linked to order: %+v", item)
		}
	}
	if len(published) != 1 || published[0].EntityID != order.ID {
		t.Errorf("published = %+v, want one order_created event", published)
	}
}

func TestCreateOrderRequiresItems(t *testing.T) {
	store := newFakeOrders()
	svc := NewOrderService(store, nil, nil)

	_, _, err := svc.CreateOrder(context.Background(), OrderCreateInput{CustomerName: "Ada", Email: "ada@example.com"})
	if apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("CreateOrder() error = %v, want validation error", err)
	}
	if len(store.calls) != 0 {
		t.Errorf("store called %v, want no calls", store.calls)
	}
}

func TestCreateOrderRejectsOutOfRangeItems(t *testing.T) {
	tooMany := make([]OrderItemInput, domain.MaxOrderItems+1)
	for i := range tooMany {
		tooMany[i] = OrderItemInput{ProductID: "p", ProductName: "Mug", Quantity: 1, UnitPrice: 1}
	}
	cases := []struct {
		name  string
		items []OrderItemInput
	}{
		{"overflowing unit price", []OrderItemInput{{ProductID: "p1", ProductName: "Mug", Quantity: domain.MaxItemQuantity, UnitPrice: 1 << 62}}},
		{"negative unit price", []OrderItemInput{{ProductID: "p1", ProductName: "Mug", Quantity: 1, UnitPrice: -5}}},
		{"zero quantity", []OrderItemInput{{ProductID: "p1", ProductName: "Mug", Quantity: 0, UnitPrice: 100}}},
		{"too many items", tooMany},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeOrders()
			svc := NewOrderService(store, nil, nil)

			_, _, err := svc.CreateOrder(context.Background(), OrderCreateInput{CustomerName: "Ada", Email: "ada@example.com", Items: tc.items})
			if apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
				t.Errorf("CreateOrder() error = %v, want validation error", err)
			}
			if len(store.calls) != 0 {
				t.Errorf("store called %v, want no calls", store.calls)
			}
		})
	}

	store := newFakeOrders()
	order, _, err := NewOrderService(store, nil, nil).CreateOrder(context.Background(), OrderCreateInput{
		CustomerName: "Ada",
		Email:        "ada@example.com",
		Items:        []OrderItemInput{{ProductID: "p1", ProductName: "Ring", Quantity: domain.MaxItemQuantity, UnitPrice: domain.MaxUnitPrice}},
	})
	if err != nil {
		t.Fatalf("CreateOrder(at limits) error = %v", err)
	}
	if want := int64(domain.MaxItemQuantity) * domain.MaxUnitPrice; order.TotalAmount != want || order.TotalAmount <= 0 {
		t.Errorf("TotalAmount = %d, want %d", order.TotalAmount, want)
	}
}

func TestDeleteOrderRemovesItemsFirst(t *testing.T) {
	store := newFakeOrders()
	svc := NewOrderService(store, nil, nil)

	if err := svc.DeleteOrder(context.Background(), "order-1", nil); err != nil {
		t.Fatalf("DeleteOrder() error = %v", err)
	}
	if want := []string{"DeleteItems", "Delete"}; !reflect.DeepEqual(store.calls, want) {
		t.Errorf("calls = %v, want %v", store.calls, want)
	}
}

func TestDeleteOrderStopsWhenItemsFail(t *testing.T) {
	store := newFakeOrders()
	store.deleteItemsErr = errStoreDown
	svc := NewOrderService(store, nil, nil)

	err := svc.DeleteOrder(context.Background(), "order-1", nil)
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("DeleteOrder() error = %v, want store error", err)
	}
	if apperrors.ToDomainError(err).HTTPStatus != 500 {
		t.Errorf("status = %d, want 500", apperrors.ToDomainError(err).HTTPStatus)
	}
	if want := []string{"DeleteItems"}; !reflect.DeepEqual(store.calls, want) {
		t.Errorf("calls = %v, want %v (parent must not be deleted)", store.calls, want)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	store := newFakeOrders()
	svc := NewOrderService(store, nil, nil)
	store.orders["o1"] = &domain.Order{ID: "o1", Status: domain.OrderStatusPending}

	if _, err := svc.UpdateStatus(context.Background(), "o1", "teleported"); apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("UpdateStatus(invalid) error = %v, want validation error", err)
	}

	order, err := svc.UpdateStatus(context.Background(), "o1", domain.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if order.Status != domain.OrderStatusShipped {
		t.Errorf("Status = %s, want shipped", order.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.OrderStatusShipped); apperrors.ToDomainError(err).Code != "NOT_FOUND" {
		t.Errorf("UpdateStatus(missing) error = %v, want not found", err)
	}
}
