package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"conference-admin/internal/api"
	"conference-admin/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	result service.Result
	users  []api.UserResponse
	err    error

	created []api.CreateUserRequest
	updated []api.UpdateUserRequest
	deleted []api.DeleteUserRequest
}

func (f *fakeService) Create(_ context.Context, reqs []api.CreateUserRequest) service.Result {
	f.created = reqs
	return f.result
}

func (f *fakeService) Update(_ context.Context, reqs []api.UpdateUserRequest) service.Result {
	f.updated = reqs
	return f.result
}

func (f *fakeService) Delete(_ context.Context, reqs []api.DeleteUserRequest) service.Result {
	f.deleted = reqs
	return f.result
}

func (f *fakeService) List(context.Context) ([]api.UserResponse, error) {
	return f.users, f.err
}

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/api/admin/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("malformed", func(t *testing.T) {
		svc := &fakeService{}
		ctx, rec := newJSONCtx(e, http.MethodPost, `[{"username":"a"`)
		require.NoError(t, CreateUsersHandler(svc)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"msg":"Invalid fields for users."}`, rec.Body.String())
		require.Nil(t, svc.created)
	})

	t.Run("single object", func(t *testing.T) {
		svc := &fakeService{result: service.Result{Status: http.StatusOK, Message: "Users created successfully."}}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","password":"cHcxMjM=","valid_account":1,"is_phd":false}`)
		require.NoError(t, CreateUsersHandler(svc)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"msg":"Users created successfully."}`, rec.Body.String())
		require.Len(t, svc.created, 1)
		require.Equal(t, "alice", *svc.created[0].Username)
		require.True(t, svc.created[0].ValidAccount.Bool())
	})

	t.Run("array", func(t *testing.T) {
		svc := &fakeService{result: service.Result{Status: http.StatusBadRequest, Message: "Username already exists."}}
		ctx, rec := newJSONCtx(e, http.MethodPost, `[{"username":"a"},{"username":"b","roles":[2],"conference_id":1}]`)
		require.NoError(t, CreateUsersHandler(svc)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Len(t, svc.created, 2)
		require.Equal(t, []int{2}, svc.created[1].Roles)
	})
}

func TestUpdateUsersHandler(t *testing.T) {
	e := echo.New()
	svc := &fakeService{result: service.Result{Status: http.StatusNoContent, Message: "Users either do not exist or have not been modified."}}
	ctx, rec := newJSONCtx(e, http.MethodPut, `[{"username":"a"},{"username":"ghost"}]`)
	require.NoError(t, UpdateUsersHandler(svc)(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	require.Len(t, svc.updated, 2)
}

func TestDeleteUsersHandler(t *testing.T) {
	e := echo.New()
	svc := &fakeService{result: service.Result{Status: http.StatusNotFound, Message: "Given users do not exist."}}
	ctx, rec := newJSONCtx(e, http.MethodDelete, `{"username":"ghost"}`)
	require.NoError(t, DeleteUsersHandler(svc)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"msg":"Given users do not exist."}`, rec.Body.String())
	require.Equal(t, "ghost", *svc.deleted[0].Username)
}

func TestListUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("ok", func(t *testing.T) {
		svc := &fakeService{users: []api.UserResponse{{
			ID: 1, Username: "alice", IsPhD: true,
			Roles: []api.RoleAssignmentResponse{{ConferenceID: 1, RoleID: 2}},
		}}}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListUsersHandler(svc)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[{"id":1,"username":"alice","first_name":"","last_name":"","is_phd":true,
			"educational_title":"","roles":[{"conference_id":1,"role_id":2}]}]`, rec.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListUsersHandler(&fakeService{users: []api.UserResponse{}})(ctx))
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("db error", func(t *testing.T) {
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListUsersHandler(&fakeService{err: errors.New("down")})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"msg":"Database error."}`, rec.Body.String())
	})
}
