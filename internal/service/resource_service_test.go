package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/internal/db"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/snapshot"
	"portfolio/internal/testutil"
	"portfolio/internal/validation"
)

func level(n int) *int { return &n }

func testValidator(snap *snapshot.Snapshot) *validation.Validator {
	return validation.New(snap.ProjectCategoryIDs(), validation.WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}))
}

func newProjects(store *db.Store, snap *snapshot.Snapshot) ResourceService[model.Project] {
	repo := repository.New[model.Project](store, repository.Options{
		NotFound: "Projet non trouvé",
		Order:    "start_date DESC, id ASC",
	})
	return NewResourceService("projects", repo, snap.Projects, testValidator(snap), zap.NewNop())
}

func validProject(title string) *model.Project {
	return &model.Project{
		Title:        title,
		Description:  "Étude de structure",
		Category:     "civil",
		Technologies: []string{"Robot Structural"},
		Status:       model.ProjectStatusDone,
		StartDate:    "2024-01",
	}
}

func TestResourceService_ListSource(t *testing.T) {
	snap := snapshot.MustLoad()

	t.Run("live", func(t *testing.T) {
		svc := newProjects(testutil.Store(t), snap)
		require.NoError(t, svc.Create(context.Background(), validProject("Pont")))

		projects, source, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, SourceLive, source)
		require.Len(t, projects, 1)
		assert.Equal(t, "Pont", projects[0].Title)
	})

	t.Run("snapshot when store unreachable", func(t *testing.T) {
		svc := newProjects(testutil.UnreachableStore(t), snap)

		projects, source, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, SourceSnapshot, source)
		assert.Equal(t, snap.Projects(), projects)
	})

	t.Run("no snapshot", func(t *testing.T) {
		repo := repository.New[model.Message](testutil.UnreachableStore(t), repository.Options{})
		svc := NewResourceService[model.Message]("messages", repo, nil, testValidator(snap), zap.NewNop())

		_, _, err := svc.List(context.Background())
		assert.True(t, apperrors.Is(err, apperrors.KindStoreUnavailable))
	})
}

func TestResourceService_WritesFailWhenStoreUnreachable(t *testing.T) {
	svc := newProjects(testutil.UnreachableStore(t), snapshot.MustLoad())

	err := svc.Create(context.Background(), validProject("Pont"))
	assert.True(t, apperrors.Is(err, apperrors.KindStoreUnavailable))

	_, err = svc.Update(context.Background(), 1, validProject("Pont"))
	assert.True(t, apperrors.Is(err, apperrors.KindStoreUnavailable))
}

func TestResourceService_InvalidPayloadCreatesNothing(t *testing.T) {
	svc := newProjects(testutil.Store(t), snapshot.MustLoad())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.Project)
		field  string
	}{
		{"missing title", func(p *model.Project) { p.Title = "" }, "title"},
		{"unknown category", func(p *model.Project) { p.Category = "cooking" }, "category"},
		{"bad status", func(p *model.Project) { p.Status = "Fini" }, "status"},
		{"bad start date", func(p *model.Project) { p.StartDate = "2024/01" }, "startDate"},
		{"bad link", func(p *model.Project) { p.Link = "not a url" }, "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject("Pont")
			tt.mutate(p)

			err := svc.Create(ctx, p)
			require.Error(t, err)

			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			require.NotEmpty(t, appErr.Fields)
			assert.Equal(t, tt.field, appErr.Fields[0].Field)
		})
	}

	projects, _, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestResourceService_MissingIDLeavesOthersUnchanged(t *testing.T) {
	svc := newProjects(testutil.Store(t), snapshot.MustLoad())
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, validProject("Pont")))
	require.NoError(t, svc.Create(ctx, validProject("Barrage")))
	before, _, err := svc.List(ctx)
	require.NoError(t, err)

	_, err = svc.Update(ctx, 404, validProject("Tunnel"))
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	err = svc.Delete(ctx, 404)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	after, _, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestResourceService_CreateIgnoresClientIdentity(t *testing.T) {
	store := testutil.Store(t)
	snap := snapshot.MustLoad()
	repo := repository.New[model.Message](store, repository.Options{Order: "created_at DESC"})
	svc := NewResourceService[model.Message]("messages", repo, nil, testValidator(snap), zap.NewNop())
	ctx := context.Background()

	msg := &model.Message{
		ID:        42,
		Name:      "Jean",
		Email:     "jean@example.com",
		Subject:   "Collaboration",
		Content:   "Bonjour, je souhaite collaborer.",
		CreatedAt: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Create(ctx, msg))
	assert.NotEqual(t, uint(42), msg.ID)
	assert.WithinDuration(t, time.Now(), msg.CreatedAt, time.Minute)
}

func TestSkillService(t *testing.T) {
	store := testutil.Store(t)
	snap := snapshot.MustLoad()
	v := testValidator(snap)
	categories := NewResourceService("skill categories",
		repository.New[model.SkillCategory](store, repository.Options{
			NotFound: "Catégorie non trouvée",
			Preload:  []string{"Skills"},
		}), snap.SkillCategories, v, zap.NewNop())
	skills := NewResourceService[model.Skill]("skills",
		repository.New[model.Skill](store, repository.Options{NotFound: "Compétence non trouvée"}),
		nil, v, zap.NewNop())
	svc := NewSkillService(categories, skills)
	ctx := context.Background()

	cat := &model.SkillCategory{Title: "Logiciels", Color: "text-blue-600", BgColor: "bg-blue-100"}
	require.NoError(t, svc.CreateCategory(ctx, cat))

	err := svc.CreateSkill(ctx, &model.Skill{CategoryID: cat.ID + 100, Name: "AutoCAD", Level: level(80)})
	assert.Equal(t, ErrCategoryNotFound, err)

	err = svc.CreateSkill(ctx, &model.Skill{Name: "AutoCAD", Level: level(80)})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	err = svc.CreateSkill(ctx, &model.Skill{CategoryID: cat.ID, Name: "AutoCAD", Level: level(120)})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	skill := &model.Skill{CategoryID: cat.ID, Name: "AutoCAD", Level: level(80)}
	require.NoError(t, svc.CreateSkill(ctx, skill))

	updated, err := svc.UpdateSkill(ctx, skill.ID, &model.Skill{CategoryID: cat.ID, Name: "AutoCAD 2025", Level: level(85)})
	require.NoError(t, err)
	assert.Equal(t, 85, *updated.Level)

	list, source, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceLive, source)
	require.Len(t, list, 1)
	require.Len(t, list[0].Skills, 1)
	assert.Equal(t, "AutoCAD 2025", list[0].Skills[0].Name)

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID))
	assert.True(t, apperrors.Is(svc.DeleteSkill(ctx, skill.ID), apperrors.KindNotFound))
}

func TestProjectService_Catalog(t *testing.T) {
	snap := snapshot.MustLoad()
	svc := NewProjectService(newProjects(testutil.UnreachableStore(t), snap), snap.ProjectCategories)

	catalog, source, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceSnapshot, source)
	assert.Len(t, catalog.Projects, 6)
	assert.Len(t, catalog.Categories, 3)
}
