// File: internal/service/conference.go
package service

import (
	"context"
	"errors"
	"fmt"

	"conference-admin/internal/api"
	"conference-admin/internal/database"
	"conference-admin/internal/store"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// errNoRows 讓交易在影響列數為 0 時回滾
var errNoRows = errors.New("no rows affected")

var (
	createConference = store.CreateConference
	updateConference = store.UpdateConference
	deleteConference = store.DeleteConference
)

type ConferenceService struct {
	db       database.DB
	validate *validator.Validate
	logger   *zap.Logger
}

func NewConferenceService(db database.DB, validate *validator.Validate, logger *zap.Logger) *ConferenceService {
	return &ConferenceService{db: db, validate: validate, logger: logger}
}

func (s *ConferenceService) Create(ctx context.Context, req api.CreateConferenceRequest) Result {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return badRequest(api.MsgInvalidConferenceFields)
	}
	c := req.Conference()

	err := database.WithTx(ctx, s.db, func(tx database.Tx) error {
		return createConference(ctx, tx, c)
	})
	if err != nil {
		s.logger.Error("create conference", zap.String("title", c.Title), zap.Error(err))
		return internalError(fmt.Sprintf("Something went wrong while creating conference %s.", c.Title))
	}
	return ok(fmt.Sprintf("Conference %s created successfully.", c.Title))
}

// Update 以 title 為鍵覆寫所有欄位；沒有列被更新時回傳 204
func (s *ConferenceService) Update(ctx context.Context, req api.UpdateConferenceRequest) Result {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return badRequest(api.MsgInvalidConferenceFields)
	}
	c := req.Conference()

	err := database.WithTx(ctx, s.db, func(tx database.Tx) error {
		n, err := updateConference(ctx, tx, c)
		if err != nil {
			return err
		}
		if n == 0 {
			return errNoRows
		}
		return nil
	})
	switch {
	case errors.Is(err, errNoRows):
		msg := fmt.Sprintf("Conference %s either does not exist or it has not been modified.", c.Title)
		s.logger.Debug(msg)
		return noContent(msg)
	case err != nil:
		s.logger.Error("update conference", zap.String("title", c.Title), zap.Error(err))
		return internalError(fmt.Sprintf("Something went wrong while updating conference %s.", c.Title))
	}
	return ok(fmt.Sprintf("Conference %s updated successfully.", c.Title))
}

func (s *ConferenceService) Delete(ctx context.Context, req api.DeleteConferenceRequest) Result {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return badRequest(api.MsgInvalidConferenceFields)
	}
	title := *req.Title

	err := database.WithTx(ctx, s.db, func(tx database.Tx) error {
		n, err := deleteConference(ctx, tx, title)
		if err != nil {
			return err
		}
		if n == 0 {
			return errNoRows
		}
		return nil
	})
	switch {
	case errors.Is(err, errNoRows):
		return notFound(fmt.Sprintf("Conference %s does not exist.", title))
	case err != nil:
		s.logger.Error("delete conference", zap.String("title", title), zap.Error(err))
		return internalError(fmt.Sprintf("Something went wrong while deleting conference %s.", title))
	}
	return ok(fmt.Sprintf("Conference %s deleted successfully.", title))
}
