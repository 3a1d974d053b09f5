package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/xxxsen/renthub/internal/gateway"
	"github.com/xxxsen/renthub/internal/model"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
	"github.com/xxxsen/renthub/internal/pkg/timeutil"
)

type fakeUsers struct {
	mu        sync.Mutex
	users     []model.User
	byEmail   int
	listCalls int
	updated   map[int64]string
	updateErr error
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byEmail++
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (f *fakeUsers) ListAll(context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]model.User(nil), f.users...), nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, userID int64, hash string, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[int64]string)
	}
	f.updated[userID] = hash
	return nil
}

type sentOtp struct {
	to   string
	code string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentOtp
	err  error
}

func (f *fakeNotifier) SendOtpEmail(_ context.Context, to, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentOtp{to: to, code: code})
	return nil
}

func (f *fakeNotifier) last() sentOtp {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

type fakeLeases struct {
	leases map[int64]model.Lease
}

func (f *fakeLeases) GetByID(_ context.Context, leaseID int64) (*model.Lease, error) {
	lease, ok := f.leases[leaseID]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return &lease, nil
}

type paymentKey struct {
	leaseID int64
	date    string
}

// fakePayments enforces the (lease, date) uniqueness the database index
// provides and records lease status changes.
type fakePayments struct {
	mu          sync.Mutex
	nextID      int64
	byKey       map[paymentKey]model.Payment
	rows        []model.PaymentRow
	completed   map[int64]bool
	rented      map[int64]bool
	createErr   error
	createCalls int
}

func newFakePayments() *fakePayments {
	return &fakePayments{
		byKey:     make(map[paymentKey]model.Payment),
		completed: make(map[int64]bool),
		rented:    make(map[int64]bool),
	}
}

func (f *fakePayments) GetByLeaseAndDate(_ context.Context, leaseID int64, date time.Time) (*model.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.byKey[paymentKey{leaseID, timeutil.FormatDate(date)}]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return &payment, nil
}

func (f *fakePayments) CreateCompleted(_ context.Context, payment *model.Payment, lease *model.Lease) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	key := paymentKey{payment.LeaseID, timeutil.FormatDate(payment.PaymentDate)}
	if _, ok := f.byKey[key]; ok {
		return appErr.ErrDuplicatePayment
	}
	f.nextID++
	payment.ID = f.nextID
	f.byKey[key] = *payment
	f.rows = append(f.rows, model.PaymentRow{
		Payment:      *payment,
		PropertyID:   lease.PropertyID,
		RentalTxID:   lease.TransactionID,
		BHK:          lease.BHK,
		PropertyType: lease.PropertyType,
		Address:      lease.Address,
	})
	f.completed[lease.TransactionID] = true
	f.rented[lease.PropertyID] = true
	return nil
}

func (f *fakePayments) GetByID(_ context.Context, id int64) (*model.PaymentRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (f *fakePayments) filter(match func(model.PaymentRow) bool) []model.PaymentRow {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.PaymentRow, 0)
	for _, row := range f.rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (f *fakePayments) List(context.Context) ([]model.PaymentRow, error) {
	return f.filter(func(model.PaymentRow) bool { return true }), nil
}

func (f *fakePayments) ListByProperty(_ context.Context, propertyID int64) ([]model.PaymentRow, error) {
	return f.filter(func(r model.PaymentRow) bool { return r.PropertyID == propertyID }), nil
}

func (f *fakePayments) ListByPropertyAndTransaction(_ context.Context, propertyID, transactionID int64) ([]model.PaymentRow, error) {
	return f.filter(func(r model.PaymentRow) bool {
		return r.PropertyID == propertyID && r.RentalTxID == transactionID
	}), nil
}

func (f *fakePayments) ListByUser(_ context.Context, userID int64) ([]model.PaymentRow, error) {
	return f.filter(func(r model.PaymentRow) bool { return r.UserID == userID }), nil
}

type fakeGateway struct {
	mu       sync.Mutex
	requests []gateway.ChargeRequest
	result   *gateway.ChargeResult
	err      error
}

func (f *fakeGateway) CreateCharge(_ context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeGateway) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

var errBoom = errors.New("boom")
