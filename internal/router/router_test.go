package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conference-admin/internal/api"
	"conference-admin/internal/database"
	"conference-admin/internal/mailer"
	"conference-admin/internal/model"
	"conference-admin/internal/service"
	"conference-admin/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const secret = "router-secret"

func newEcho(db database.DB) *echo.Echo {
	e := echo.New()
	v := api.NewValidator()
	Setup(e, Deps{
		DB:          db,
		JWTSecret:   secret,
		Conferences: service.NewConferenceService(db, v, zap.NewNop()),
		Users:       service.NewUserService(db, v, zap.NewNop(), &mailer.FakeMailer{}, worker.Sync{}, time.Second),
	})
	return e
}

func bearer(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := service.IssueAccessToken(secret, "caller", roles, time.Minute)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestSetupRoutes(t *testing.T) {
	e := newEcho(&database.FakeDB{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/admin/conferences",
		http.MethodPut + " /api/admin/conferences",
		http.MethodDelete + " /api/admin/conferences",
		http.MethodPost + " /api/admin/users",
		http.MethodPut + " /api/admin/users",
		http.MethodDelete + " /api/admin/users",
		http.MethodGet + " /api/admin/users",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestAccessControl(t *testing.T) {
	// FakeDB 未設定任何 Fn：一旦觸及資料庫就會 panic
	e := newEcho(&database.FakeDB{})

	cases := []struct {
		name   string
		method string
		path   string
		auth   string
		status int
		msg    string
	}{
		{"no token", http.MethodPost, "/api/admin/users", "", http.StatusUnauthorized, "missing token"},
		{"committee creates users", http.MethodPost, "/api/admin/users", bearer(t, model.RoleProgramCommittee), http.StatusForbidden, "Invalid role for request"},
		{"author deletes conference", http.MethodDelete, "/api/admin/conferences", bearer(t, "AUTHOR"), http.StatusForbidden, "Invalid role for request"},
		{"no roles", http.MethodPut, "/api/admin/conferences", bearer(t), http.StatusForbidden, "Invalid role for request"},
		{"author lists users", http.MethodGet, "/api/admin/users", bearer(t, "AUTHOR"), http.StatusForbidden, "Invalid role for request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{"title":"x","username":"x"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tc.auth != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.auth)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, tc.status, rec.Code)
			require.Contains(t, rec.Body.String(), tc.msg)
		})
	}
}

func TestCreateUserEndToEnd(t *testing.T) {
	tx := &database.FakeTx{}
	var hash string
	tx.QueryRowFn = func(_ context.Context, _ string, args ...any) pgx.Row {
		hash = args[1].(string)
		return idRow(1)
	}
	e := newEcho(database.NewFakeDB(tx))

	body := `{"username":"alice","password":"cHcxMjM=","first_name":"A","last_name":"L",
		"valid_account":true,"is_phd":false,"educational_title":"Dr"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, model.RoleAdministrator))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"msg":"Users created successfully."}`, rec.Body.String())
	require.True(t, tx.Committed)
	require.NotEqual(t, "pw123", hash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw123")))
}

func TestListUsersAsCommittee(t *testing.T) {
	calls := 0
	db := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			calls++
			return &emptyRows{}, nil
		},
	}
	e := newEcho(db)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, model.RoleProgramCommittee))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
	require.Equal(t, 2, calls)
}

type idRow int

func (r idRow) Scan(dest ...any) error {
	*dest[0].(*int) = int(r)
	return nil
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }
