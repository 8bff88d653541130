package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"foodorder/internal/domain/model"
	repo "foodorder/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMenuPageSize = 50
	MaxMenuPageSize     = 100

	msgMenuNotFound  = "Menu item not found"
	msgMenuNameTaken = "Menu item name already exists"
)

type MenuUsecase struct {
	menu  repo.MenuItemRepository
	idGen IDGenerator
	log   logrus.FieldLogger
}

// DI
func NewMenuUsecase(menu repo.MenuItemRepository, idGen IDGenerator, log logrus.FieldLogger) *MenuUsecase {
	return &MenuUsecase{menu: menu, idGen: idGen, log: log}
}

// GET /api/menu の入力DTO
type ListMenuInput struct {
	Page  int
	Limit int
}

type MenuListOutput struct {
	MenuItems   []model.MenuItem `json:"menuItems"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// store order のページを返す。絞り込み・ソートはクライアント側。
func (u *MenuUsecase) List(ctx context.Context, in ListMenuInput) (MenuListOutput, error) {
	if in.Page == 0 {
		in.Page = 1
	}
	if in.Limit == 0 {
		in.Limit = DefaultMenuPageSize
	}
	if in.Page < 1 {
		return MenuListOutput{}, validationError("invalid page")
	}
	if in.Limit < 1 {
		return MenuListOutput{}, validationError("invalid limit")
	}
	if in.Limit > MaxMenuPageSize {
		in.Limit = MaxMenuPageSize
	}
	//offset (page-1)*limit が int32 に収まること
	if in.Page-1 > math.MaxInt32/in.Limit {
		return MenuListOutput{}, validationError("invalid page")
	}

	items, total, err := u.menu.List(ctx, repo.MenuListQuery{Page: in.Page, Limit: in.Limit})
	if err != nil {
		u.log.WithError(err).Error("list menu items failed")
		return MenuListOutput{}, internalError("db error")
	}
	if items == nil {
		items = []model.MenuItem{}
	}

	return MenuListOutput{
		MenuItems:   items,
		TotalPages:  int((total + int64(in.Limit) - 1) / int64(in.Limit)),
		CurrentPage: in.Page,
	}, nil
}

type CreateMenuItemInput struct {
	Name     string
	Category string
	Price    *float64
	//省略時はtrue
	Availability *bool
}

func (u *MenuUsecase) Create(ctx context.Context, in CreateMenuItemInput) (model.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return model.MenuItem{}, validationError(msgInvalidData)
	}
	if in.Price == nil || *in.Price < 0 {
		return model.MenuItem{}, validationError(msgInvalidData)
	}

	availability := true
	if in.Availability != nil {
		availability = *in.Availability
	}

	created, err := u.menu.Create(ctx, model.MenuItem{
		ID:           u.idGen.NewID(),
		Name:         name,
		Category:     category,
		Price:        *in.Price,
		Availability: availability,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.MenuItem{}, conflictError(msgMenuNameTaken)
	}
	if err != nil {
		u.log.WithError(err).Error("create menu item failed")
		return model.MenuItem{}, internalError("db error")
	}
	return created, nil
}

// 部分更新の入力。nilは「変更しない」。
type UpdateMenuItemInput struct {
	Name         *string
	Category     *string
	Price        *float64
	Availability *bool
}

func (u *MenuUsecase) Update(ctx context.Context, id string, in UpdateMenuItemInput) (model.MenuItem, error) {
	if !isValidID(id) {
		return model.MenuItem{}, notFoundError(msgMenuNotFound)
	}

	patch := repo.MenuItemPatch{Price: in.Price, Availability: in.Availability}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.MenuItem{}, validationError(msgInvalidData)
		}
		patch.Name = &name
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return model.MenuItem{}, validationError(msgInvalidData)
		}
		patch.Category = &category
	}
	if in.Price != nil && *in.Price < 0 {
		return model.MenuItem{}, validationError(msgInvalidData)
	}

	updated, err := u.menu.Update(ctx, id, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return model.MenuItem{}, notFoundError(msgMenuNotFound)
	}
	if errors.Is(err, repo.ErrDuplicate) {
		return model.MenuItem{}, conflictError(msgMenuNameTaken)
	}
	if err != nil {
		u.log.WithError(err).WithField("menu_item_id", id).Error("update menu item failed")
		return model.MenuItem{}, internalError("db error")
	}
	return updated, nil
}

func (u *MenuUsecase) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return notFoundError(msgMenuNotFound)
	}

	err := u.menu.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFoundError(msgMenuNotFound)
	}
	if err != nil {
		u.log.WithError(err).WithField("menu_item_id", id).Error("delete menu item failed")
		return internalError("db error")
	}
	return nil
}

// 形式不正のIDは「存在しない」扱い
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
