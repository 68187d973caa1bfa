// File: internal/handler/conferences/conference.go
package conferences

import (
	"context"
	"errors"

	"conference-admin/internal/api"
	"conference-admin/internal/handler"
	"conference-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 為 handler 需要的研討會操作；由 *service.ConferenceService 實作
type Service interface {
	Create(ctx context.Context, req api.CreateConferenceRequest) service.Result
	Update(ctx context.Context, req api.UpdateConferenceRequest) service.Result
	Delete(ctx context.Context, req api.DeleteConferenceRequest) service.Result
}

// CreateConferenceHandler 建立研討會
// @Summary     Create a conference
// @Description start_date / end_date 為 unix timestamp；path_to_logo 與 path_to_description 可省略
// @Tags        conferences
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateConferenceRequest true "conference"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.MessageResponse
// @Failure     401  {object} api.MessageResponse
// @Failure     403  {object} api.MessageResponse
// @Failure     500  {object} api.MessageResponse
// @Security    BearerAuth
// @Router      /admin/conferences [post]
func CreateConferenceHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := handler.ReadBody(c)
		if err != nil {
			return handler.BadRequest(c, api.MsgInvalidConferenceFields)
		}
		req, err := api.DecodeOne[api.CreateConferenceRequest](body, false)
		if err != nil {
			return handler.BadRequest(c, api.MsgInvalidConferenceFields)
		}
		return handler.Respond(c, svc.Create(c.Request().Context(), req))
	}
}

// UpdateConferenceHandler 依 title 更新研討會的所有欄位
// @Summary     Update a conference
// @Description 只接受 title, country, location, start_date, end_date, path_to_description, path_to_logo；找不到或未變更時回傳 204
// @Tags        conferences
// @Accept      json
// @Produce     json
// @Param       body body     api.UpdateConferenceRequest true "conference"
// @Success     200  {object} api.MessageResponse
// @Success     204
// @Failure     400  {object} api.MessageResponse
// @Failure     401  {object} api.MessageResponse
// @Failure     403  {object} api.MessageResponse
// @Failure     500  {object} api.MessageResponse
// @Security    BearerAuth
// @Router      /admin/conferences [put]
func UpdateConferenceHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := handler.ReadBody(c)
		if err != nil {
			return handler.BadRequest(c, api.MsgInvalidConferenceFields)
		}
		if err := api.CheckFields(body, api.ConferenceFields); err != nil {
			if errors.Is(err, api.ErrUnknownField) {
				return handler.BadRequest(c, api.MsgUnknownConferenceFields)
			}
			return handler.BadRequest(c, api.MsgInvalidConferenceFields)
		}
		req, err := api.DecodeOne[api.UpdateConferenceRequest](body, true)
		if err != nil {
			return handler.BadRequest(c, api.MsgInvalidConferenceFields)
		}
		return handler.Respond(c, svc.Update(c.Request().Context(), req))
	}
}

// DeleteConferenceHandler 依 title 刪除研討會
// @Summary     Delete a conference
// @Tags        conferences
// @Accept      json
// @Produce     json
// @Param       body body     api.DeleteConferenceRequest true "conference title"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.MessageResponse
// @Failure     401  {object} api.MessageResponse
// @Failure     403  {object} api.MessageResponse
// @Failure     404  {object} api.MessageResponse
// @Failure     500  {object} api.MessageResponse
// @Security    BearerAuth
// @Router      /admin/conferences [delete]
func DeleteConferenceHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := handler.ReadBody(c)
		if err != nil {
			return handler.BadRequest(c, api.MsgInvalidConferenceFields)
		}
		req, err := api.DecodeOne[api.DeleteConferenceRequest](body, false)
		if err != nil {
			return handler.BadRequest(c, api.MsgInvalidConferenceFields)
		}
		return handler.Respond(c, svc.Delete(c.Request().Context(), req))
	}
}
