package handler

import (
	"io"
	"net/http"

	"conference-admin/internal/api"
	"conference-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// Respond 將 service.Result 轉成 HTTP 回應；204 不帶 body
func Respond(c echo.Context, res service.Result) error {
	if res.Status == http.StatusNoContent {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(res.Status, api.MessageResponse{Msg: res.Message})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: msg})
}

func ReadBody(c echo.Context) ([]byte, error) {
	return io.ReadAll(c.Request().Body)
}
