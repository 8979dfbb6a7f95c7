package service

import (
	"context"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// ErrCategoryNotFound is returned when a skill references a missing category.
var ErrCategoryNotFound = apperrors.NotFound("Catégorie non trouvée")

// SkillService manages skill categories and the skills nested in them.
type SkillService interface {
	ListCategories(ctx context.Context) ([]model.SkillCategory, Source, error)
	CreateCategory(ctx context.Context, category *model.SkillCategory) error
	UpdateCategory(ctx context.Context, id uint, category *model.SkillCategory) (*model.SkillCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	CreateSkill(ctx context.Context, skill *model.Skill) error
	UpdateSkill(ctx context.Context, id uint, skill *model.Skill) (*model.Skill, error)
	DeleteSkill(ctx context.Context, id uint) error
}

type skillService struct {
	categories ResourceService[model.SkillCategory]
	skills     ResourceService[model.Skill]
}

// NewSkillService creates a skill service over the two underlying resources.
func NewSkillService(categories ResourceService[model.SkillCategory], skills ResourceService[model.Skill]) SkillService {
	return &skillService{categories: categories, skills: skills}
}

func (s *skillService) ListCategories(ctx context.Context) ([]model.SkillCategory, Source, error) {
	return s.categories.List(ctx)
}

func (s *skillService) CreateCategory(ctx context.Context, category *model.SkillCategory) error {
	return s.categories.Create(ctx, category)
}

func (s *skillService) UpdateCategory(ctx context.Context, id uint, category *model.SkillCategory) (*model.SkillCategory, error) {
	return s.categories.Update(ctx, id, category)
}

// DeleteCategory removes the category together with its skills.
func (s *skillService) DeleteCategory(ctx context.Context, id uint) error {
	return s.categories.Delete(ctx, id)
}

func (s *skillService) CreateSkill(ctx context.Context, skill *model.Skill) error {
	if err := s.ensureCategory(ctx, skill.CategoryID); err != nil {
		return err
	}
	return s.skills.Create(ctx, skill)
}

func (s *skillService) UpdateSkill(ctx context.Context, id uint, skill *model.Skill) (*model.Skill, error) {
	if err := s.ensureCategory(ctx, skill.CategoryID); err != nil {
		return nil, err
	}
	return s.skills.Update(ctx, id, skill)
}

func (s *skillService) DeleteSkill(ctx context.Context, id uint) error {
	return s.skills.Delete(ctx, id)
}

// ensureCategory lets validation report a missing categoryId before the lookup runs.
func (s *skillService) ensureCategory(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	if _, err := s.categories.Get(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
