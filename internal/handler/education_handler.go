package handler

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// EducationHandler handles education endpoints.
type EducationHandler struct {
	res resource[model.Education]
}

// NewEducationHandler creates a new education handler.
func NewEducationHandler(svc service.ResourceService[model.Education]) *EducationHandler {
	return &EducationHandler{res: resource[model.Education]{svc: svc, msg: messages{
		created: "Formation créée avec succès",
		updated: "Formation mise à jour avec succès",
		deleted: "Formation supprimée avec succès",
	}}}
}

// List godoc
// @Summary List education entries
// @Description Newest first. Served from the bundled snapshot when the database is unreachable.
// @Tags education
// @Produce json
// @Success 200 {array} model.Education
// @Failure 500 {object} errors.ErrorResponse
// @Router /education [get]
func (h *EducationHandler) List(c echo.Context) error {
	return h.res.list(c)
}

// Create godoc
// @Summary Create an education entry
// @Tags education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Education true "Education entry"
// @Success 201 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /education [post]
func (h *EducationHandler) Create(c echo.Context) error {
	return h.res.create(c)
}

// Update godoc
// @Summary Update an education entry
// @Tags education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Education ID"
// @Param request body model.Education true "Education entry"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /education/{id} [put]
func (h *EducationHandler) Update(c echo.Context) error {
	return h.res.update(c)
}

// Delete godoc
// @Summary Delete an education entry
// @Tags education
// @Produce json
// @Security BearerAuth
// @Param id path int true "Education ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /education/{id} [delete]
func (h *EducationHandler) Delete(c echo.Context) error {
	return h.res.delete(c)
}
