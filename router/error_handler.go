package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// httpErrorHandler writes every failure as {"error": msg}. Server-side
// causes are logged, never sent.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var code int
	var msg string
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = http.StatusText(code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
	} else {
		code, msg = apperr.Resolve(err)
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %v", c.Request().Method, c.Path(), err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Error: msg})
	}
	if err != nil {
		logger.Errorf(c.Request().Context(), "write error response: %v", err)
	}
}
