// File: internal/service/user.go
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"slices"
	"time"

	"conference-admin/internal/api"
	"conference-admin/internal/database"
	"conference-admin/internal/mailer"
	"conference-admin/internal/model"
	"conference-admin/internal/store"
	"conference-admin/internal/worker"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	MsgUsersCreated      = "Users created successfully."
	MsgUsersUpdated      = "Users updated successfully."
	MsgUsersDeleted      = "Users deleted successfully."
	MsgUsernameExists    = "Username already exists."
	MsgUsersNotModified  = "Users either do not exist or have not been modified."
	MsgUsersNotFound     = "Given users do not exist."
	msgUsersCreateFailed = "Something went wrong while creating users."
	msgUsersUpdateFailed = "Something went wrong while updating users."
	msgUsersDeleteFailed = "Something went wrong while deleting users."

	AccountCreatedSubject = "Account created."
	AccountCreatedBody    = "Your account has been created, download the conference application to activate your account!"
)

var (
	createUser                  = store.CreateUser
	createRoleAssignment        = store.CreateRoleAssignment
	updateUser                  = store.UpdateUser
	getUserIDByUsername         = store.GetUserIDByUsername
	deleteRoleAssignmentsByUser = store.DeleteRoleAssignmentsByUser
	deleteUser                  = store.DeleteUser
	listUsers                   = store.ListUsers
)

type UserService struct {
	db          database.DB
	validate    *validator.Validate
	logger      *zap.Logger
	mailer      mailer.Mailer
	pool        worker.Pool
	mailTimeout time.Duration
}

func NewUserService(db database.DB, validate *validator.Validate, logger *zap.Logger,
	m mailer.Mailer, pool worker.Pool, mailTimeout time.Duration) *UserService {
	return &UserService{
		db:          db,
		validate:    validate,
		logger:      logger,
		mailer:      m,
		pool:        pool,
		mailTimeout: mailTimeout,
	}
}

// Create 在單一交易中新增所有使用者及其角色，提交後寄出一封通知信
func (s *UserService) Create(ctx context.Context, reqs []api.CreateUserRequest) Result {
	if len(reqs) == 0 {
		return badRequest(api.MsgInvalidUserFields)
	}

	users := make([]*model.User, 0, len(reqs))
	for _, req := range reqs {
		if err := s.validate.StructCtx(ctx, req); err != nil {
			return badRequest(api.MsgInvalidUserFields)
		}
		password, err := base64.StdEncoding.DecodeString(*req.Password)
		if err != nil {
			return badRequest(api.MsgInvalidUserFields)
		}
		hash, err := HashPassword(password)
		if err != nil {
			s.logger.Warn("hash password", zap.String("username", *req.Username), zap.Error(err))
			return badRequest(api.MsgInvalidUserFields)
		}

		u := &model.User{
			Username:         *req.Username,
			PasswordHash:     hash,
			FirstName:        *req.FirstName,
			LastName:         *req.LastName,
			ValidAccount:     req.ValidAccount.Bool(),
			IsPhD:            req.IsPhD.Bool(),
			EducationalTitle: *req.EducationalTitle,
		}
		for _, role := range req.Roles {
			if slices.ContainsFunc(u.Roles, func(ra model.RoleAssignment) bool { return ra.RoleID == role }) {
				continue
			}
			u.Roles = append(u.Roles, model.RoleAssignment{ConferenceID: *req.ConferenceID, RoleID: role})
		}
		users = append(users, u)
	}

	err := database.WithTx(ctx, s.db, func(tx database.Tx) error {
		for _, u := range users {
			if err := createUser(ctx, tx, u); err != nil {
				return err
			}
			for _, ra := range u.Roles {
				ra.UserID = u.ID
				if err := createRoleAssignment(ctx, tx, ra); err != nil {
					return err
				}
			}
		}
		return nil
	})
	switch {
	case database.IsDuplicateKey(err):
		return badRequest(MsgUsernameExists)
	case err != nil:
		s.logger.Error("create users", zap.Error(err))
		return internalError(msgUsersCreateFailed)
	}

	usernames := make([]string, len(users))
	for i, u := range users {
		usernames[i] = u.Username
	}
	s.notify(usernames)
	return ok(MsgUsersCreated)
}

// notify 在 worker pool 上寄送帳號建立通知；失敗只記錄
func (s *UserService) notify(to []string) {
	if s.mailer == nil || s.pool == nil {
		return
	}
	err := s.pool.Submit(func() {
		ctx := context.Background()
		if s.mailTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.mailTimeout)
			defer cancel()
		}
		if err := s.mailer.Send(ctx, to, AccountCreatedSubject, AccountCreatedBody); err != nil {
			s.logger.Error("send account created mail", zap.Strings("to", to), zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("queue account created mail", zap.Strings("to", to), zap.Error(err))
	}
}

func (s *UserService) Update(ctx context.Context, reqs []api.UpdateUserRequest) Result {
	if len(reqs) == 0 {
		return badRequest(api.MsgInvalidUserFields)
	}
	users := make([]*model.User, 0, len(reqs))
	for _, req := range reqs {
		if err := s.validate.StructCtx(ctx, req); err != nil {
			return badRequest(api.MsgInvalidUserFields)
		}
		users = append(users, &model.User{
			Username:         *req.Username,
			FirstName:        *req.FirstName,
			LastName:         *req.LastName,
			ValidAccount:     req.ValidAccount.Bool(),
			IsPhD:            req.IsPhD.Bool(),
			EducationalTitle: *req.EducationalTitle,
		})
	}

	err := database.WithTx(ctx, s.db, func(tx database.Tx) error {
		for _, u := range users {
			n, err := updateUser(ctx, tx, u)
			if err != nil {
				return err
			}
			if n == 0 {
				return errNoRows
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, errNoRows):
		s.logger.Debug(MsgUsersNotModified)
		return noContent(MsgUsersNotModified)
	case err != nil:
		s.logger.Error("update users", zap.Error(err))
		return internalError(msgUsersUpdateFailed)
	}
	return ok(MsgUsersUpdated)
}

// Delete 先刪除角色指派再刪除使用者；任一使用者不存在則整批回滾
func (s *UserService) Delete(ctx context.Context, reqs []api.DeleteUserRequest) Result {
	if len(reqs) == 0 {
		return badRequest(api.MsgInvalidUserFields)
	}
	for _, req := range reqs {
		if err := s.validate.StructCtx(ctx, req); err != nil {
			return badRequest(api.MsgInvalidUserFields)
		}
	}

	err := database.WithTx(ctx, s.db, func(tx database.Tx) error {
		for _, req := range reqs {
			id, err := getUserIDByUsername(ctx, tx, *req.Username)
			if database.IsNotFound(err) {
				return errNoRows
			}
			if err != nil {
				return err
			}
			if _, err := deleteRoleAssignmentsByUser(ctx, tx, id); err != nil {
				return err
			}
			n, err := deleteUser(ctx, tx, id)
			if err != nil {
				return err
			}
			if n == 0 {
				return errNoRows
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, errNoRows):
		return notFound(MsgUsersNotFound)
	case err != nil:
		s.logger.Error("delete users", zap.Error(err))
		return internalError(msgUsersDeleteFailed)
	}
	return ok(MsgUsersDeleted)
}

// List 回傳所有使用者及其角色
func (s *UserService) List(ctx context.Context) ([]api.UserResponse, error) {
	users, err := listUsers(ctx, s.db)
	if err != nil {
		s.logger.Error("list users", zap.Error(err))
		return nil, err
	}
	resp := make([]api.UserResponse, 0, len(users))
	for _, u := range users {
		roles := make([]api.RoleAssignmentResponse, 0, len(u.Roles))
		for _, ra := range u.Roles {
			roles = append(roles, api.RoleAssignmentResponse{ConferenceID: ra.ConferenceID, RoleID: ra.RoleID})
		}
		resp = append(resp, api.UserResponse{
			ID:               u.ID,
			Username:         u.Username,
			FirstName:        u.FirstName,
			LastName:         u.LastName,
			IsPhD:            u.IsPhD,
			EducationalTitle: u.EducationalTitle,
			Roles:            roles,
		})
	}
	return resp, nil
}
