package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/mail"
	"github.com/spec-kit/storefront-service/internal/payment"
)

type fakeOrders struct {
	orders         map[string]*domain.Order
	items          map[string][]domain.OrderItem
	calls          []string
	deleteItemsErr error
	deleteErr      error
	nextID         int
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: map[string]*domain.Order{}, items: map[string][]domain.OrderItem{}}
}

func (f *fakeOrders) Create(_ context.Context, order *domain.Order, items []domain.OrderItem) error {
	f.calls = append(f.calls, "Create")
	f.nextID++
	order.ID = fmt.Sprintf("order-%d", f.nextID)
	for i := range items {
		items[i].OrderID = order.ID
	}
	f.orders[order.ID] = order
	f.items[order.ID] = items
	return nil
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return order, nil
}

func (f *fakeOrders) List(context.Context, int, int) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrders) ListItems(_ context.Context, orderID string) ([]domain.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	f.calls = append(f.calls, "UpdateStatus")
	order, ok := f.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	order.Status = status
	return order, nil
}

func (f *fakeOrders) SetPaymentReference(_ context.Context, id, reference string) error {
	f.calls = append(f.calls, "SetPaymentReference")
	order, ok := f.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.PaymentReference = &reference
	return nil
}

func (f *fakeOrders) DeleteItems(_ context.Context, orderID string) error {
	f.calls = append(f.calls, "DeleteItems")
	if f.deleteItemsErr != nil {
		return f.deleteItemsErr
	}
	delete(f.items, orderID)
	return nil
}

func (f *fakeOrders) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.orders, id)
	return nil
}

type fakeAdmins struct {
	admins map[string]*domain.Admin
	err    error
}

func (f *fakeAdmins) Create(_ context.Context, admin *domain.Admin) error {
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeAdmins) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	admin, ok := f.admins[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

type fakeRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: map[string]time.Duration{}}
}

func (f *fakeRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.revoked[tokenID] = ttl
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[tokenID]
	return ok, nil
}

type fakeApplications struct {
	apps map[string]*domain.JobApplication
}

func (f *fakeApplications) Create(_ context.Context, app *domain.JobApplication) error {
	app.ID = "app-1"
	f.apps[app.ID] = app
	return nil
}

func (f *fakeApplications) GetByID(_ context.Context, id string) (*domain.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApplications) List(_ context.Context, status *domain.JobApplicationStatus) ([]domain.JobApplication, error) {
	var out []domain.JobApplication
	for _, a := range f.apps {
		if status == nil || a.Status == *status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplications) UpdateStatus(_ context.Context, id string, status domain.JobApplicationStatus) (*domain.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	app.Status = status
	cp := *app
	return &cp, nil
}

func (f *fakeApplications) Delete(_ context.Context, id string) error {
	delete(f.apps, id)
	return nil
}

type fakePayments struct {
	refs map[string]*domain.PaymentReference
}

func (f *fakePayments) Create(_ context.Context, p *domain.PaymentReference) error {
	p.ID = "pay-" + p.Reference
	f.refs[p.Reference] = p
	return nil
}

func (f *fakePayments) GetByReference(_ context.Context, reference string) (*domain.PaymentReference, error) {
	p, ok := f.refs[reference]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakePayments) UpdateStatus(_ context.Context, reference string, status domain.PaymentStatus) error {
	if p, ok := f.refs[reference]; ok {
		p.Status = status
	}
	return nil
}

type fakeGateway struct {
	initReq   payment.InitializeRequest
	status    domain.PaymentStatus
	amount    int64
	err       error
	initCalls int
}

func (f *fakeGateway) Initialize(_ context.Context, req payment.InitializeRequest) (*payment.InitializeResult, error) {
	f.initCalls++
	if f.err != nil {
		return nil, f.err
	}
	f.initReq = req
	return &payment.InitializeResult{AuthorizationURL: "https://checkout.test/" + req.Reference, Reference: req.Reference}, nil
}

func (f *fakeGateway) Verify(_ context.Context, reference string) (*payment.VerifyResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	amount := f.amount
	if amount == 0 {
		amount = f.initReq.Amount
	}
	return &payment.VerifyResult{Reference: reference, Status: f.status, Amount: amount}, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

var errStoreDown = errors.New("store unavailable")

func configWithAdmin(adminTo string) config.MailConfig {
	return config.MailConfig{From: "Shop <noreply@shop.test>", AdminTo: adminTo}
}
