package middleware

import (
	"errors"
	"net/http"
	"strings"

	"conference-admin/internal/api"
	"conference-admin/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var errUnauthorized = errors.New("unauthorized")

type authError struct{ msg string }

func (e *authError) Error() string { return e.msg }
func (e *authError) Unwrap() error { return errUnauthorized }

func extractClaims(c echo.Context, secret string) (*service.Claims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, &authError{"missing token"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, &authError{"invalid authorization header format"}
	}
	claims, err := service.VerifyAccessToken(secret, parts[1])
	if err != nil {
		return nil, &authError{"invalid token: " + err.Error()}
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer JWT，成功後將 *service.Claims 存入 context
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.MessageResponse{Msg: err.Error()})
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole 必須在 RequireAuth 之後；不具任何指定角色時回傳 403，不會觸及資料庫
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get(ContextUserKey).(*service.Claims)
			if err := service.Authorize(claims, roles...); err != nil {
				return c.JSON(http.StatusForbidden, api.MessageResponse{Msg: api.MsgInvalidRole})
			}
			return next(c)
		}
	}
}
