package service

import (
	"context"

	"portfolio/internal/model"
)

// ProjectCatalog is the projects page payload.
type ProjectCatalog struct {
	Projects   []model.Project         `json:"projects"`
	Categories []model.ProjectCategory `json:"categories"`
}

// ProjectService manages projects. Categories are a fixed list.
type ProjectService interface {
	ResourceService[model.Project]
	Catalog(ctx context.Context) (*ProjectCatalog, Source, error)
}

type projectService struct {
	ResourceService[model.Project]
	categories func() []model.ProjectCategory
}

// NewProjectService creates a project service.
func NewProjectService(projects ResourceService[model.Project], categories func() []model.ProjectCategory) ProjectService {
	return &projectService{ResourceService: projects, categories: categories}
}

func (s *projectService) Catalog(ctx context.Context) (*ProjectCatalog, Source, error) {
	projects, source, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}
	return &ProjectCatalog{Projects: projects, Categories: s.categories()}, source, nil
}
