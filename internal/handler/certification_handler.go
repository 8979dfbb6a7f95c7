package handler

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// CertificationHandler handles certification endpoints.
type CertificationHandler struct {
	res resource[model.Certification]
}

// NewCertificationHandler creates a new certification handler.
func NewCertificationHandler(svc service.ResourceService[model.Certification]) *CertificationHandler {
	return &CertificationHandler{res: resource[model.Certification]{svc: svc, msg: messages{
		created: "Certification créée avec succès",
		updated: "Certification mise à jour avec succès",
		deleted: "Certification supprimée avec succès",
	}}}
}

// List godoc
// @Summary List certifications
// @Description Most recent first. Served from the bundled snapshot when the database is unreachable (see X-Data-Source).
// @Tags certifications
// @Produce json
// @Success 200 {array} model.Certification
// @Failure 500 {object} errors.ErrorResponse
// @Router /certifications [get]
func (h *CertificationHandler) List(c echo.Context) error {
	return h.res.list(c)
}

// Create godoc
// @Summary Create a certification
// @Tags certifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Certification true "Certification"
// @Success 201 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /certifications [post]
func (h *CertificationHandler) Create(c echo.Context) error {
	return h.res.create(c)
}

// Update godoc
// @Summary Update a certification
// @Tags certifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certification ID"
// @Param request body model.Certification true "Certification"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /certifications/{id} [put]
func (h *CertificationHandler) Update(c echo.Context) error {
	return h.res.update(c)
}

// Delete godoc
// @Summary Delete a certification
// @Tags certifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certification ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /certifications/{id} [delete]
func (h *CertificationHandler) Delete(c echo.Context) error {
	return h.res.delete(c)
}
