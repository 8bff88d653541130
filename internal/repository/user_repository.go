package repository

import (
	"context"

	"foodorder/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（username重複はErrDuplicate）
	Create(ctx context.Context, user *model.User) error
	//usernameからユーザーを一件取得する。無ければErrNotFound
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
