package client

import (
	"errors"
	"fmt"
	"net/http"
)

// サーバーが返した {"message": ...}
type APIError struct {
	Status  int
	Message string
}

// 画面にそのまま出せるようにメッセージだけ返す
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// 401 と期限切れ/未ログインはログイン画面に戻す
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrNoSession) {
		return true
	}
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}
