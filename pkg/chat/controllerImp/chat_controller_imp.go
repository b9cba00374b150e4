package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/chat/service"
)

type ChatCtrl struct{ s service.ChatService }

func New(s service.ChatService) *ChatCtrl { return &ChatCtrl{s: s} }

type chatReq struct {
	Message string `json:"message"`
}

func (h *ChatCtrl) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, "invalid json")
	}
	out, err := h.s.Reply(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
