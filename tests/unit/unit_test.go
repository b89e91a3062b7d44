package unit

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks / Fakes
// =====================

type StoreAPIMock struct{ mock.Mock }

func (m *StoreAPIMock) ListLaptops(ctx context.Context) ([]model.Laptop, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Laptop)
	return items, args.Error(1)
}

func (m *StoreAPIMock) ListMice(ctx context.Context) ([]model.Mouse, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Mouse)
	return items, args.Error(1)
}

func (m *StoreAPIMock) Register(ctx context.Context, in model.UserCreate) (model.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *StoreAPIMock) Login(ctx context.Context, in model.UserLogin) (model.Token, error) {
	args := m.Called(ctx, in)
	tok, _ := args.Get(0).(model.Token)
	return tok, args.Error(1)
}

func (m *StoreAPIMock) CreateOrder(ctx context.Context, in model.OrderCreate) (model.Order, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *StoreAPIMock) ListOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *StoreAPIMock) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *StoreAPIMock) CancelOrder(ctx context.Context, orderID int64) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

// CartStoreのインメモリ版。保存履歴も持つ。
type CartStoreFake struct {
	snap  model.CartSnapshot
	saves []model.CartSnapshot
}

func (f *CartStoreFake) Load() model.CartSnapshot {
	return f.snap
}

func (f *CartStoreFake) Save(s model.CartSnapshot) {
	saved := make(model.CartSnapshot, len(s))
	copy(saved, s)
	f.snap = saved
	f.saves = append(f.saves, saved)
}

// SessionStoreのインメモリ版
type SessionStoreFake struct {
	token   string
	user    model.User
	hasUser bool
}

func (f *SessionStoreFake) Token() string {
	return f.token
}

func (f *SessionStoreFake) User() (model.User, bool) {
	return f.user, f.hasUser
}

func (f *SessionStoreFake) SaveSession(token string, user model.User) {
	f.token = token
	f.user = user
	f.hasUser = true
}

func (f *SessionStoreFake) Clear() {
	f.token = ""
	f.user = model.User{}
	f.hasUser = false
}

// 固定値のAuthenticator
type AuthFake struct{ authed bool }

func (a *AuthFake) IsAuthenticated() bool { return a.authed }

// =====================
// Helpers
// =====================

func assertFailure(t *testing.T, f *usecase.Failure, kind usecase.FailureKind, textPart string) {
	t.Helper()

	if f == nil {
		t.Fatalf("expected failure containing %q, got nil", textPart)
	}
	if f.Kind != kind {
		t.Fatalf("expected failure kind %q, got %q (%s)", kind, f.Kind, f.Text)
	}
	if !strings.Contains(f.Text, textPart) {
		t.Fatalf("expected failure text to contain %q, got %q", textPart, f.Text)
	}
}
