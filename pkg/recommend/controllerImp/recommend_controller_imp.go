package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/recommend/service"
	"github.com/h809829-coder/agrosmart/pkg/report"
)

type RecommendCtrl struct{ svc service.RecommendService }

func New(svc service.RecommendService) *RecommendCtrl { return &RecommendCtrl{svc: svc} }

type recommendResp struct {
	Success        bool                 `json:"success"`
	Recommendation entities.CropProfile `json:"recommendation"`
	Match          service.MatchTier    `json:"match"`
}

func (h *RecommendCtrl) Recommend(c echo.Context) error {
	var q service.Query
	if err := c.Bind(&q); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, "bad json")
	}
	res, err := h.svc.Resolve(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recommendResp{Success: true, Recommendation: res.Crop, Match: res.Tier})
}

func (h *RecommendCtrl) History(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}
	recs, err := h.svc.History(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *RecommendCtrl) Export(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}
	recs, err := h.svc.History(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.WriteHistory(&buf, recs); err != nil {
		return fmt.Errorf("export history: %w", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.HistoryFilename))
	return c.Blob(http.StatusOK, report.ContentTypeXLSX, buf.Bytes())
}

// parseLimit reads ?limit. Missing or non-positive values mean the default;
// clamping to the maximum happens in the repository.
func parseLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Wrap(apperr.ErrInvalidInput, "limit must be an integer")
	}
	return n, nil
}
