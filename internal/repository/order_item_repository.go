package repository

import (
	"context"

	"foodorder/internal/domain/model"
)

type OrderItemRepository interface {
	//Positionは呼び出し側で振る
	CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error
}
