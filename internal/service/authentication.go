// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptySecret = errors.New("jwt secret not set")

// Claims 定義 JWT 負載內容；授權只看 Roles
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// IssueAccessToken 依據使用者名稱、角色與 TTL 產生 HS256 JWT；cmd/token 以此簽發維運用令牌
func IssueAccessToken(secret, username string, roles []string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	now := timeNow()
	claims := Claims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(timeNow))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
