package repository

import (
	"context"

	"foodorder/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	//作成順（古い順）
	ListByOwnerID(ctx context.Context, ownerID string) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
