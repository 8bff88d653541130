package validator

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"foodorder/internal/usecase"
)

// パスワード最低文字数
const MinPasswordLength = 6

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, username string, password string) error {
	// 必須チェック
	if strings.TrimSpace(username) == "" {
		return invalid()
	}

	// パスワード最低文字数（文字数で数える）
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid()
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	// 必須チェック
	if strings.TrimSpace(username) == "" || password == "" {
		return invalid()
	}
	return nil
}

func invalid() error {
	return usecase.NewHTTPError(http.StatusBadRequest, "Invalid data")
}
