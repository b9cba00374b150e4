package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/kb/service"
)

const (
	defaultK = 6
	maxK     = 20
)

type KBCtrl struct{ s service.KBService }

func New(s service.KBService) *KBCtrl { return &KBCtrl{s: s} }

type ingestReq struct {
	Title     string `json:"title" validate:"required"`
	Tags      string `json:"tags"`
	Text      string `json:"text" validate:"required"`
	SourceURL string `json:"source_url"`
}

type ingestURLReq struct {
	URL   string `json:"url" validate:"required,url"`
	Title string `json:"title"`
	Tags  string `json:"tags"`
}

func (h *KBCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, "invalid json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	doc, n, err := h.s.Ingest(c.Request().Context(), service.IngestInput{
		Title: req.Title, Tags: req.Tags, Text: req.Text, SourceURL: req.SourceURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"doc": doc, "chunks": n})
}

func (h *KBCtrl) IngestURL(c echo.Context) error {
	var req ingestURLReq
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, "invalid json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	doc, n, err := h.s.IngestURL(c.Request().Context(), req.URL, req.Title, req.Tags)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"doc": doc, "chunks": n})
}

func (h *KBCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return apperr.Wrap(apperr.ErrInvalidInput, "q required")
	}
	k := defaultK
	if raw := c.QueryParam("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return apperr.Wrap(apperr.ErrInvalidInput, "k must be a positive integer")
		}
		k = min(n, maxK)
	}

	hits, err := h.s.Search(c.Request().Context(), q, k)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hits)
}

func (h *KBCtrl) ListDocs(c echo.Context) error {
	docs, err := h.s.ListDocs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}
