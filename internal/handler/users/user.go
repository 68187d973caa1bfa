// File: internal/handler/users/user.go
package users

import (
	"context"
	"net/http"

	"conference-admin/internal/api"
	"conference-admin/internal/handler"
	"conference-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 為 handler 需要的使用者操作；由 *service.UserService 實作
type Service interface {
	Create(ctx context.Context, reqs []api.CreateUserRequest) service.Result
	Update(ctx context.Context, reqs []api.UpdateUserRequest) service.Result
	Delete(ctx context.Context, reqs []api.DeleteUserRequest) service.Result
	List(ctx context.Context) ([]api.UserResponse, error)
}

// batchHandler 解析單一物件或陣列後交給 op
func batchHandler[T any](op func(context.Context, []T) service.Result) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := handler.ReadBody(c)
		if err != nil {
			return handler.BadRequest(c, api.MsgInvalidUserFields)
		}
		reqs, err := api.DecodeOneOrMany[T](body, false)
		if err != nil {
			return handler.BadRequest(c, api.MsgInvalidUserFields)
		}
		return handler.Respond(c, op(c.Request().Context(), reqs))
	}
}

// CreateUsersHandler 建立一位或多位使用者並寄出帳號建立通知
// @Summary     Create users
// @Description body 可以是單一使用者或陣列；password 為 base64；roles 需搭配 conference_id
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     []api.CreateUserRequest true "user or list of users"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.MessageResponse
// @Failure     401  {object} api.MessageResponse
// @Failure     403  {object} api.MessageResponse
// @Failure     500  {object} api.MessageResponse
// @Security    BearerAuth
// @Router      /admin/users [post]
func CreateUsersHandler(svc Service) echo.HandlerFunc {
	return batchHandler(svc.Create)
}

// UpdateUsersHandler 以 username 更新使用者；角色不變
// @Summary     Update users
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     []api.UpdateUserRequest true "user or list of users"
// @Success     200  {object} api.MessageResponse
// @Success     204
// @Failure     400  {object} api.MessageResponse
// @Failure     401  {object} api.MessageResponse
// @Failure     403  {object} api.MessageResponse
// @Failure     500  {object} api.MessageResponse
// @Security    BearerAuth
// @Router      /admin/users [put]
func UpdateUsersHandler(svc Service) echo.HandlerFunc {
	return batchHandler(svc.Update)
}

// DeleteUsersHandler 以 username 刪除使用者及其角色
// @Summary     Delete users
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     []api.DeleteUserRequest true "username or list of usernames"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.MessageResponse
// @Failure     401  {object} api.MessageResponse
// @Failure     403  {object} api.MessageResponse
// @Failure     404  {object} api.MessageResponse
// @Failure     500  {object} api.MessageResponse
// @Security    BearerAuth
// @Router      /admin/users [delete]
func DeleteUsersHandler(svc Service) echo.HandlerFunc {
	return batchHandler(svc.Delete)
}

// ListUsersHandler 列出所有使用者及其研討會角色
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     401 {object} api.MessageResponse
// @Failure     403 {object} api.MessageResponse
// @Failure     500 {object} api.MessageResponse
// @Security    BearerAuth
// @Router      /admin/users [get]
func ListUsersHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := svc.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.MessageResponse{Msg: api.MsgDatabaseError})
		}
		return c.JSON(http.StatusOK, users)
	}
}
