package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	//400 入力不正
	ErrValidation = errors.New("validation error")
	//400 ユニーク競合
	ErrConflict = errors.New("conflict")
	//400/401 認証失敗（ログイン失敗・所有者無し）
	ErrUnauthorized = errors.New("unauthorized")
	//404
	ErrNotFound = errors.New("not found")
	//500
	ErrInternal = errors.New("internal error")
)

type HTTPError struct {
	Status  int
	Message string

	//errors.Is 用の種別
	kind error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.kind
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		kind:    kindForStatus(status),
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func validationError(message string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, kind: ErrValidation}
}

func conflictError(message string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, kind: ErrConflict}
}

// ログイン失敗は400（元の挙動に合わせる）
func authError(message string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, kind: ErrUnauthorized}
}

func notFoundError(message string) error {
	return &HTTPError{Status: http.StatusNotFound, Message: message, kind: ErrNotFound}
}

func internalError(message string) error {
	return &HTTPError{Status: http.StatusInternalServerError, Message: message, kind: ErrInternal}
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrInternal
	}
}
