package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/crop/repository"
)

type CropCtrl struct{ repo repository.CropRepository }

func New(repo repository.CropRepository) *CropCtrl { return &CropCtrl{repo: repo} }

// Get serves GET /crop/:name.
func (h *CropCtrl) Get(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return apperr.Wrap(apperr.ErrInvalidInput, "crop name is required")
	}
	crop, err := h.repo.FindByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	if crop == nil {
		return apperr.Wrap(apperr.ErrNotFound, "crop not found")
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) List(c echo.Context) error {
	crops, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crops)
}
