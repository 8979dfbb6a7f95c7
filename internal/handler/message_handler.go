package handler

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// MessageHandler handles contact form endpoints.
type MessageHandler struct {
	res resource[model.Message]
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(svc service.ResourceService[model.Message]) *MessageHandler {
	return &MessageHandler{res: resource[model.Message]{svc: svc, msg: messages{
		created: "Message envoyé avec succès",
		deleted: "Message supprimé avec succès",
	}}}
}

// List godoc
// @Summary List received messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	return h.res.list(c)
}

// Create godoc
// @Summary Send a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body model.Message true "Message"
// @Success 201 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	return h.res.create(c)
}

// Delete godoc
// @Summary Delete a message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	return h.res.delete(c)
}
