// File: internal/handler/ping.go
package handler

import (
	"context"
	"net/http"

	"conference-admin/internal/api"

	"github.com/labstack/echo/v4"
)

// Pinger 為 PingHandler 需要的資料庫能力
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.MessageResponse
// @Router      /ping [get]
func PingHandler(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.MessageResponse{Msg: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
