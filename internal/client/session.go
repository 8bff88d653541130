package client

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/infra/token"
)

var (
	ErrSessionExpired = errors.New("session expired")
	ErrNoSession      = errors.New("not signed in")
)

// ログイン中のセッション。期限はトークンのclaimsから読む（署名は検証しない）。
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

func NewSession(raw string) (Session, error) {
	claims, err := token.ParseUnverified(raw)
	if err != nil {
		return Session{}, fmt.Errorf("read session token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return Session{}, errors.New("session token has no expiry")
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	return Session{Token: raw, UserID: userID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// 認証付き呼び出しの前に必ず通す
func (s *Session) check(now time.Time) error {
	if s == nil || s.Token == "" {
		return ErrNoSession
	}
	if s.Expired(now) {
		return ErrSessionExpired
	}
	return nil
}
