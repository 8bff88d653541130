package repository

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/domain/model"
	repo "foodorder/internal/repository"

	"gorm.io/gorm"
)

type MenuItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewMenuItemGormRepository(db *gorm.DB) *MenuItemGormRepository {
	return &MenuItemGormRepository{db: db}
}

// 登録順（store order）でページングして返す。絞り込み・ソートはしない。
func (r *MenuItemGormRepository) List(ctx context.Context, q repo.MenuListQuery) ([]model.MenuItem, int64, error) {
	var items []model.MenuItem
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.MenuItem{})

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.MenuItem{}, 0, fmt.Errorf("count menu items: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	err := r.db.WithContext(ctx).
		Order("created_at asc").
		Order("id asc").
		Offset(offset).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return []model.MenuItem{}, 0, fmt.Errorf("list menu items: %w", err)
	}

	return items, total, nil
}

// IDで商品を取得
func (r *MenuItemGormRepository) FindByID(ctx context.Context, id string) (model.MenuItem, error) {
	var it model.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, fmt.Errorf("find menu item: %w", err)
	}
	return it, nil
}

// 商品の作成
func (r *MenuItemGormRepository) Create(ctx context.Context, it model.MenuItem) (model.MenuItem, error) {
	if err := r.db.WithContext(ctx).Create(&it).Error; err != nil {
		if isDuplicate(err) {
			return model.MenuItem{}, repo.ErrDuplicate
		}
		return model.MenuItem{}, fmt.Errorf("create menu item: %w", err)
	}
	return it, nil
}

// 渡されたフィールドだけ更新（last write wins）
func (r *MenuItemGormRepository) Update(ctx context.Context, id string, patch repo.MenuItemPatch) (model.MenuItem, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return model.MenuItem{}, err
	}

	values := map[string]interface{}{}
	if patch.Name != nil {
		values["name"] = *patch.Name
		current.Name = *patch.Name
	}
	if patch.Category != nil {
		values["category"] = *patch.Category
		current.Category = *patch.Category
	}
	if patch.Price != nil {
		values["price"] = *patch.Price
		current.Price = *patch.Price
	}
	if patch.Availability != nil {
		values["availability"] = *patch.Availability
		current.Availability = *patch.Availability
	}
	if len(values) == 0 {
		return current, nil
	}

	res := r.db.WithContext(ctx).Model(&model.MenuItem{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return model.MenuItem{}, repo.ErrDuplicate
		}
		return model.MenuItem{}, fmt.Errorf("update menu item: %w", res.Error)
	}
	//読んだ後に消された
	if res.RowsAffected == 0 {
		return model.MenuItem{}, repo.ErrNotFound
	}
	return current, nil
}

// 商品削除
func (r *MenuItemGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItem{})
	if res.Error != nil {
		return fmt.Errorf("delete menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
