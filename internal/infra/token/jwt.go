package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// 署名/期限/形式のどれかが不正
var ErrInvalidToken = errors.New("invalid token")

// トークンに入れるclaims
type SessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// HS256でセッショントークンを発行・検証する。
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue は now を起点に ttl 後に切れるトークンを返す。
func (i *JWTIssuer) Issue(userID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)

	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify は署名と期限を確認してユーザーIDを返す。
func (i *JWTIssuer) Verify(raw string) (string, error) {
	var claims SessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	tok, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	//期限なしトークンは受け付けない
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(i.now()) {
		return "", ErrInvalidToken
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// 署名を検証せずにclaimsだけ読む（クライアント側の期限チェック用）
func ParseUnverified(raw string) (SessionClaims, error) {
	var claims SessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return SessionClaims{}, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}
