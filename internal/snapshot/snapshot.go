// Package snapshot holds the bundled copy of the public content. Reads fall back to it
// when the database cannot be reached, and seeding uses it to fill empty tables.
package snapshot

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"

	"portfolio/internal/model"
)

//go:embed data/*.json
var files embed.FS

// Snapshot is the decoded static content, in the same shape as the live tables.
type Snapshot struct {
	skillCategories   []model.SkillCategory
	certifications    []model.Certification
	education         []model.Education
	projects          []model.Project
	projectCategories []model.ProjectCategory
}

// Load decodes the embedded data files.
func Load() (*Snapshot, error) {
	s := &Snapshot{}
	targets := map[string]interface{}{
		"data/skills.json":             &s.skillCategories,
		"data/certifications.json":     &s.certifications,
		"data/education.json":          &s.education,
		"data/projects.json":           &s.projects,
		"data/project_categories.json": &s.projectCategories,
	}
	for name, dst := range targets {
		raw, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	}
	return s, nil
}

// MustLoad is like Load but panics on malformed embedded data.
func MustLoad() *Snapshot {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// SkillCategories returns categories ordered by id, each with its skills.
func (s *Snapshot) SkillCategories() []model.SkillCategory {
	return slices.Clone(s.skillCategories)
}

// Certifications returns certifications ordered by year, newest first.
func (s *Snapshot) Certifications() []model.Certification {
	return slices.Clone(s.certifications)
}

// Education returns education entries, most recently created first.
func (s *Snapshot) Education() []model.Education {
	return slices.Clone(s.education)
}

// Projects returns projects, most recently started first.
func (s *Snapshot) Projects() []model.Project {
	return slices.Clone(s.projects)
}

// ProjectCategories returns the static project category list.
func (s *Snapshot) ProjectCategories() []model.ProjectCategory {
	return slices.Clone(s.projectCategories)
}

// ProjectCategoryIDs returns the accepted values of Project.Category.
func (s *Snapshot) ProjectCategoryIDs() []string {
	ids := make([]string, 0, len(s.projectCategories))
	for _, c := range s.projectCategories {
		ids = append(ids, c.ID)
	}
	return ids
}
