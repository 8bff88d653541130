package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"foodorder/internal/domain/model"
	repo "foodorder/internal/repository"

	"github.com/sirupsen/logrus"
)

const msgOrderNotFound = "Order not found"

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	idGen  IDGenerator
	clock  Clock
	log    logrus.FieldLogger
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	idGen IDGenerator,
	clock Clock,
	log logrus.FieldLogger,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, idGen: idGen, clock: clock, log: log}
}

type PlaceOrderItemInput struct {
	MenuItemID string
	Name       string
	Price      float64
	Quantity   int
}

// totalAmountはクライアント計算値をそのまま保存する
type PlaceOrderInput struct {
	Items       []PlaceOrderItemInput
	TotalAmount float64
}

// 注文確定。order + 明細を1トランザクションで書く。
func (u *OrderUsecase) Place(ctx context.Context, ownerID string, in PlaceOrderInput) (model.Order, error) {
	if ownerID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "Access Denied")
	}
	if len(in.Items) == 0 || in.TotalAmount <= 0 {
		return model.Order{}, validationError(msgInvalidData)
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	for i, it := range in.Items {
		menuItemID := strings.TrimSpace(it.MenuItemID)
		name := strings.TrimSpace(it.Name)
		if menuItemID == "" || name == "" || it.Quantity < 1 || it.Price < 0 {
			return model.Order{}, validationError(msgInvalidData)
		}
		if !isValidID(menuItemID) {
			return model.Order{}, validationError(msgInvalidData)
		}
		items = append(items, model.OrderItem{
			ID:         u.idGen.NewID(),
			Position:   i,
			MenuItemID: menuItemID,
			Name:       name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}

	order := model.Order{
		ID:          u.idGen.NewID(),
		OwnerID:     ownerID,
		TotalAmount: in.TotalAmount,
		Status:      model.OrderStatusPending,
		CreatedAt:   u.clock.Now(),
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}
		return r.OrderItems().CreateBulk(ctx, order.ID, items)
	})
	if err != nil {
		u.log.WithError(err).WithField("owner_id", ownerID).Error("place order failed")
		return model.Order{}, internalError("Error placing order")
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	order.Items = items

	u.log.WithFields(logrus.Fields{"order_id": order.ID, "owner_id": ownerID}).Info("order placed")
	return order, nil
}

// 自分の注文を作成順で全部返す（status で絞らない）
func (u *OrderUsecase) ListForOwner(ctx context.Context, ownerID string) ([]model.Order, error) {
	if ownerID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "Access Denied")
	}

	orders, err := u.orders.ListByOwnerID(ctx, ownerID)
	if err != nil {
		u.log.WithError(err).WithField("owner_id", ownerID).Error("list orders failed")
		return nil, internalError("Error fetching orders")
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// pending -> completed。所有者チェックはしない。完了済みでもそのまま completed。
func (u *OrderUsecase) Complete(ctx context.Context, orderID string) (model.Order, error) {
	if !isValidID(orderID) {
		return model.Order{}, notFoundError(msgOrderNotFound)
	}

	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, notFoundError(msgOrderNotFound)
	}
	if err != nil {
		u.log.WithError(err).WithField("order_id", orderID).Error("find order failed")
		return model.Order{}, internalError("Error completing order")
	}

	if order.Status != model.OrderStatusCompleted {
		err = u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCompleted)
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, notFoundError(msgOrderNotFound)
		}
		if err != nil {
			u.log.WithError(err).WithField("order_id", orderID).Error("update order status failed")
			return model.Order{}, internalError("Error completing order")
		}
		order.Status = model.OrderStatusCompleted
	}

	return order, nil
}
