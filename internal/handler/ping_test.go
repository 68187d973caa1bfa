package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"conference-admin/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { return errors.New("fail") },
		}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(db)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"msg":"database unhealthy"}`, rec.Body.String())
	})

	t.Run("ok", func(t *testing.T) {
		dbCalled := false
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { dbCalled = true; return nil },
		}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(db)(ctx)
		require.NoError(t, err)
		require.True(t, dbCalled)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}
