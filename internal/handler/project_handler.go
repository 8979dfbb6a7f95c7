package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
	res            resource[model.Project]
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		res: resource[model.Project]{svc: projectService, msg: messages{
			created: "Projet créé avec succès",
			updated: "Projet mis à jour avec succès",
			deleted: "Projet supprimé avec succès",
		}},
	}
}

// List godoc
// @Summary List projects with their categories
// @Description Most recent start date first. Served from the bundled snapshot when the database is unreachable.
// @Tags projects
// @Produce json
// @Success 200 {object} service.ProjectCatalog
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	catalog, source, err := h.projectService.Catalog(c.Request().Context())
	if err != nil {
		return err
	}
	setSource(c, source)
	return c.JSON(http.StatusOK, catalog)
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Project true "Project"
// @Success 201 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	return h.res.create(c)
}

// Update godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body model.Project true "Project"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	return h.res.update(c)
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	return h.res.delete(c)
}
