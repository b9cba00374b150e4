package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/auth/service"
	"github.com/h809829-coder/agrosmart/pkg/middleware"
)

type fakeAuth struct{ valid string }

func (f fakeAuth) Authenticate(_ context.Context, token string) (*service.Principal, error) {
	if token != f.valid {
		return nil, apperr.Wrap(apperr.ErrUnauthorized, "session expired or invalid")
	}
	return &service.Principal{UserID: "u-1", SessionID: "s-1"}, nil
}

func run(t *testing.T, prepare func(*http.Request)) (string, string, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	prepare(req)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var uid, sid string
	h := middleware.Session(fakeAuth{valid: "good"})(func(c echo.Context) error {
		uid, sid = middleware.UserID(c), middleware.SessionID(c)
		return nil
	})
	err := h(c)
	return uid, sid, err
}

func TestSession_Bearer(t *testing.T) {
	uid, sid, err := run(t, func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") })
	require.NoError(t, err)
	assert.Equal(t, "u-1", uid)
	assert.Equal(t, "s-1", sid)
}

func TestSession_Cookie(t *testing.T) {
	uid, _, err := run(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "good"})
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", uid)
}

func TestSession_Rejects(t *testing.T) {
	for name, prep := range map[string]func(*http.Request){
		"none":       func(*http.Request) {},
		"bad bearer": func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") },
		"basic":      func(r *http.Request) { r.Header.Set("Authorization", "Basic good") },
		"bad cookie": func(r *http.Request) { r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "x"}) },
	} {
		uid, _, err := run(t, prep)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized, name)
		assert.Empty(t, uid, name)
	}
}
