package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// SkillHandler handles skill and skill category endpoints.
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// SkillRequest is the body of POST /skills. With categoryId it describes a skill,
// without it a category.
type SkillRequest struct {
	CategoryID  *uint  `json:"categoryId,omitempty"`
	Name        string `json:"name,omitempty"`
	Level       *int   `json:"level,omitempty"`
	Description string `json:"description,omitempty"`
	Title       string `json:"title,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	BgColor     string `json:"bgColor,omitempty"`
}

// List godoc
// @Summary List skill categories with their skills
// @Description Served from the bundled snapshot when the database is unreachable.
// @Tags skills
// @Produce json
// @Success 200 {array} model.SkillCategory
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	categories, source, err := h.skillService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	setSource(c, source)
	return c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary Create a skill or a skill category
// @Description A body carrying categoryId creates a skill in that category, otherwise a category.
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SkillRequest true "Skill or category"
// @Success 201 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	ctx := c.Request().Context()

	if req.CategoryID != nil {
		skill := model.Skill{
			CategoryID:  *req.CategoryID,
			Name:        req.Name,
			Level:       req.Level,
			Description: req.Description,
		}
		if err := h.skillService.CreateSkill(ctx, &skill); err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, MutationResponse{Message: "Compétence créée avec succès", Data: skill})
	}

	category := model.SkillCategory{
		Title:   req.Title,
		Icon:    req.Icon,
		Color:   req.Color,
		BgColor: req.BgColor,
	}
	if err := h.skillService.CreateCategory(ctx, &category); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, MutationResponse{Message: "Catégorie créée avec succès", Data: category})
}

// UpdateSkill godoc
// @Summary Update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Param request body model.Skill true "Skill"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/{id} [put]
func (h *SkillHandler) UpdateSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var skill model.Skill
	if err := c.Bind(&skill); err != nil {
		return errInvalidBody
	}
	updated, err := h.skillService.UpdateSkill(c.Request().Context(), id, &skill)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MutationResponse{Message: "Compétence mise à jour avec succès", Data: updated})
}

// DeleteSkill godoc
// @Summary Delete a skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/{id} [delete]
func (h *SkillHandler) DeleteSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.skillService.DeleteSkill(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Compétence supprimée avec succès"})
}

// UpdateCategory godoc
// @Summary Update a skill category
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body model.SkillCategory true "Category"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/categories/{id} [put]
func (h *SkillHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var category model.SkillCategory
	if err := c.Bind(&category); err != nil {
		return errInvalidBody
	}
	updated, err := h.skillService.UpdateCategory(c.Request().Context(), id, &category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MutationResponse{Message: "Catégorie mise à jour avec succès", Data: updated})
}

// DeleteCategory godoc
// @Summary Delete a skill category and its skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/categories/{id} [delete]
func (h *SkillHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.skillService.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Catégorie supprimée avec succès"})
}
