package usecase_test

import (
	"context"
	"io"
	"time"

	"foodorder/internal/domain/model"
	repo "foodorder/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

// =====================
// Mock: MenuItemRepository
// =====================

type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) List(ctx context.Context, q repo.MenuListQuery) ([]model.MenuItem, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockMenuItemRepository) FindByID(ctx context.Context, id string) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, id string, patch repo.MenuItemPatch) (model.MenuItem, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Mock: OrderRepository / OrderItemRepository / TransactionManager
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]model.Order, error) {
	args := m.Called(ctx, ownerID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

// WithinTxはfnをそのまま呼ぶだけ
type fakeTxManager struct {
	orders *MockOrderRepository
	items  *MockOrderItemRepository
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f)
}

func (f *fakeTxManager) Orders() repo.OrderRepository         { return f.orders }
func (f *fakeTxManager) OrderItems() repo.OrderItemRepository { return f.items }

// =====================
// Helper
// =====================

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// 呼ばれた順に id-1, id-2 ... を返す
type seqIDGen struct {
	ids []string
	n   int
}

func (g *seqIDGen) NewID() string {
	id := g.ids[g.n%len(g.ids)]
	g.n++
	return id
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
