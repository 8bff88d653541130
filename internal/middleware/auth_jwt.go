package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// c.Set するキー（値は string の user id）
const CtxUserIDKey = "user_id"

// 署名と期限を確認してuser idを返す約束
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

type errorResponse struct {
	Message string `json:"message"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Message: msg}
}

// bearerAuth用のJWT検証ミドルウェア。
// ヘッダ無し/形式不正は401、トークン自体が不正なら400。
func AuthJWT(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Access Denied"))
			}

			//"Bearer " で始まること
			rawToken, ok := strings.CutPrefix(authz, "Bearer ")
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("Invalid token format"))
			}

			userID, err := verifier.Verify(strings.TrimSpace(rawToken))
			if err != nil || userID == "" {
				return c.JSON(http.StatusBadRequest, errorJSON("Invalid Token"))
			}

			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}

// AuthJWT が入れた user id を取り出す
func UserIDFrom(c echo.Context) (string, bool) {
	id, ok := c.Get(CtxUserIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
