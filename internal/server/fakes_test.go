package server_test

import (
	"context"
	"sync"

	"foodorder/internal/domain/model"
	repo "foodorder/internal/repository"
)

// =====================
// メモリ上のrepository（gormの代わり）
// =====================

type memStore struct {
	mu     sync.Mutex
	users  []*model.User
	menu   []model.MenuItem
	orders []model.Order
	audit  []model.AuditEntry
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.users {
		if ex.Username == u.Username {
			return repo.ErrDuplicate
		}
	}
	cp := *u
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r memUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

type memMenu struct{ s *memStore }

func (r memMenu) List(_ context.Context, q repo.MenuListQuery) ([]model.MenuItem, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	start := (q.Page - 1) * q.Limit
	if start >= len(r.s.menu) {
		return []model.MenuItem{}, int64(len(r.s.menu)), nil
	}
	end := min(start+q.Limit, len(r.s.menu))
	return append([]model.MenuItem(nil), r.s.menu[start:end]...), int64(len(r.s.menu)), nil
}

func (r memMenu) FindByID(_ context.Context, id string) (model.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.menu {
		if it.ID == id {
			return it, nil
		}
	}
	return model.MenuItem{}, repo.ErrNotFound
}

func (r memMenu) Create(_ context.Context, it model.MenuItem) (model.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.menu {
		if ex.Name == it.Name {
			return model.MenuItem{}, repo.ErrDuplicate
		}
	}
	r.s.menu = append(r.s.menu, it)
	return it, nil
}

func (r memMenu) Update(_ context.Context, id string, p repo.MenuItemPatch) (model.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, it := range r.s.menu {
		if it.ID != id {
			continue
		}
		if p.Name != nil {
			it.Name = *p.Name
		}
		if p.Category != nil {
			it.Category = *p.Category
		}
		if p.Price != nil {
			it.Price = *p.Price
		}
		if p.Availability != nil {
			it.Availability = *p.Availability
		}
		r.s.menu[i] = it
		return it, nil
	}
	return model.MenuItem{}, repo.ErrNotFound
}

func (r memMenu) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, it := range r.s.menu {
		if it.ID == id {
			r.s.menu = append(r.s.menu[:i], r.s.menu[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type memOrders struct{ s *memStore }

func (r memOrders) FindByID(_ context.Context, id string) (model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (r memOrders) ListByOwnerID(_ context.Context, ownerID string) ([]model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Order
	for _, o := range r.s.orders {
		if o.OwnerID == ownerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r memOrders) Create(_ context.Context, o model.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.Items = nil
	r.s.orders = append(r.s.orders, o)
	return nil
}

func (r memOrders) UpdateStatus(_ context.Context, id string, status model.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			r.s.orders[i].Status = status
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r memOrders) CreateBulk(_ context.Context, orderID string, items []model.OrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.orders {
		if r.s.orders[i].ID == orderID {
			for _, it := range items {
				it.OrderID = orderID
				r.s.orders[i].Items = append(r.s.orders[i].Items, it)
			}
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r memOrders) WithinTx(_ context.Context, fn func(repo.TxRepos) error) error {
	return fn(r)
}

func (r memOrders) Orders() repo.OrderRepository         { return r }
func (r memOrders) OrderItems() repo.OrderItemRepository { return r }

type memAudit struct{ s *memStore }

func (r memAudit) Append(_ context.Context, e model.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audit = append(r.s.audit, e)
	return nil
}
