package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/h809829-coder/agrosmart/pkg/health"
)

type HealthCtrl struct{ h *health.Checker }

func New(h *health.Checker) *HealthCtrl { return &HealthCtrl{h: h} }

func (ctl *HealthCtrl) Health(c echo.Context) error {
	r := ctl.h.Run(c.Request().Context())
	status := http.StatusOK
	if !r.Status.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, r)
}
