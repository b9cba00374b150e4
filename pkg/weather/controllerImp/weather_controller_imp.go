package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/weather"
)

const (
	defaultLat = 17.3850
	defaultLon = 78.4867
)

type WeatherCtrl struct{ s *weather.Service }

func New(s *weather.Service) *WeatherCtrl { return &WeatherCtrl{s: s} }

type coords struct {
	Lat float64 `query:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `query:"lon" validate:"gte=-180,lte=180"`
}

// Current serves GET /weather. Missing coordinates default to Hyderabad.
func (h *WeatherCtrl) Current(c echo.Context) error {
	req := coords{Lat: defaultLat, Lon: defaultLon}
	if err := echo.QueryParamsBinder(c).
		Float64("lat", &req.Lat).
		Float64("lon", &req.Lon).
		BindError(); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, "lat and lon must be numbers")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.s.Advisory(c.Request().Context(), req.Lat, req.Lon))
}
