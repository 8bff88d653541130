// Package clientstate はクライアント1セッション分のカートと注文履歴を持つ。
// 状態の変更は Dispatch に渡すアクションだけで行う。
package clientstate

import (
	"context"
	"errors"
	"sync"

	"foodorder/internal/client"
	"foodorder/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty")

type CartLine struct {
	Item     model.MenuItem
	Quantity int
}

// 小計（price × quantity）
func (l CartLine) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Item.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Action interface {
	apply(s *Store)
}

// 既にあれば数量+1、無ければ数量1で末尾に追加
type AddToCart struct{ Item model.MenuItem }

type ClearCart struct{}

// サーバーから取り直した履歴で置き換える
type SetHistory struct{ Orders []model.Order }

type AppendHistory struct{ Order model.Order }

type ClearHistory struct{}

// カートと履歴を両方消す
type SignOut struct{}

func (a AddToCart) apply(s *Store) {
	for i := range s.cart {
		if s.cart[i].Item.ID == a.Item.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, CartLine{Item: a.Item, Quantity: 1})
}

func (ClearCart) apply(s *Store) { s.cart = nil }

func (a SetHistory) apply(s *Store) {
	s.history = append([]model.Order(nil), a.Orders...)
}

func (a AppendHistory) apply(s *Store) { s.history = append(s.history, a.Order) }

func (ClearHistory) apply(s *Store) { s.history = nil }

func (SignOut) apply(s *Store) {
	s.cart = nil
	s.history = nil
}

type Store struct {
	mu      sync.Mutex
	cart    []CartLine
	history []model.Order
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		a.apply(s)
	}
}

func (s *Store) Cart() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartLine(nil), s.cart...)
}

func (s *Store) History() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.history...)
}

// カート合計。floatの誤差を避けて decimal で足す。
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.cart)
}

func cartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, sess *client.Session, in client.OrderRequest) (model.Order, error)
}

// カートの中身で注文する。失敗時はカートも履歴もそのまま。
func (s *Store) PlaceOrder(ctx context.Context, placer OrderPlacer, sess *client.Session) (model.Order, error) {
	lines := s.Cart()
	//合計が0以下（空・無料品だけ）なら送らない
	total := cartTotal(lines)
	if len(lines) == 0 || total.LessThanOrEqual(decimal.Zero) {
		return model.Order{}, ErrEmptyCart
	}

	req := client.OrderRequest{
		Items:       make([]client.OrderLine, 0, len(lines)),
		TotalAmount: total.InexactFloat64(),
	}
	for _, l := range lines {
		req.Items = append(req.Items, client.OrderLine{
			MenuItemID: l.Item.ID,
			Name:       l.Item.Name,
			Price:      l.Item.Price,
			Quantity:   l.Quantity,
		})
	}

	order, err := placer.PlaceOrder(ctx, sess, req)
	if err != nil {
		return model.Order{}, err
	}

	s.Dispatch(AppendHistory{Order: order}, ClearCart{})
	return order, nil
}

// status=pending の注文だけ（順序はそのまま）
func PendingOrders(history []model.Order) []model.Order {
	out := make([]model.Order, 0)
	for _, o := range history {
		if o.Status == model.OrderStatusPending {
			out = append(out, o)
		}
	}
	return out
}
