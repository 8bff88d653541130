package repository

import (
	"context"
	"errors"

	"foodorder/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")
	//ユニーク制約違反
	ErrDuplicate = errors.New("duplicate key")
)

// 一覧（store order のページング）
type MenuListQuery struct {
	Page  int
	Limit int
}

// 部分更新。nilのフィールドは変更しない。
type MenuItemPatch struct {
	Name         *string
	Category     *string
	Price        *float64
	Availability *bool
}

// メニュー商品の永続化だけを約束。
type MenuItemRepository interface {
	List(ctx context.Context, q MenuListQuery) ([]model.MenuItem, int64, error)
	FindByID(ctx context.Context, id string) (model.MenuItem, error)

	Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error)
	//更新後の値を返す
	Update(ctx context.Context, id string, patch MenuItemPatch) (model.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
