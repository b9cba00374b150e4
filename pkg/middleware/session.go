package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/h809829-coder/agrosmart/pkg/auth/service"
	"github.com/h809829-coder/agrosmart/pkg/logger"
)

const (
	SessionCookie = "agrosmart_session"

	ctxUserID    = "uid"
	ctxSessionID = "sid"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Principal, error)
}

// Session requires a live session. The token is read from an
// "Authorization: Bearer" header, falling back to the session cookie.
func Session(auth authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := auth.Authenticate(c.Request().Context(), tokenFrom(c))
			if err != nil {
				return err
			}
			c.Set(ctxUserID, p.UserID)
			c.Set(ctxSessionID, p.SessionID)
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithFields(req.Context(), zap.String("user_id", p.UserID))))
			return next(c)
		}
	}
}

func tokenFrom(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		if scheme, tok, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
	}
	if ck, err := c.Cookie(SessionCookie); err == nil {
		return ck.Value
	}
	return ""
}

func UserID(c echo.Context) string {
	uid, _ := c.Get(ctxUserID).(string)
	return uid
}

func SessionID(c echo.Context) string {
	sid, _ := c.Get(ctxSessionID).(string)
	return sid
}
