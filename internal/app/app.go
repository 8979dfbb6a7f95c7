// Package app assembles the HTTP server from its components.
package app

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
	"portfolio/internal/snapshot"
	"portfolio/internal/validation"
)

// New builds the echo server with every route registered.
func New(cfg *config.Config, l *zap.Logger, store *db.Store, cacheClient *cache.Client, snap *snapshot.Snapshot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	v := validation.New(snap.ProjectCategoryIDs())

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(store)
	categoryRepo := repository.New[model.SkillCategory](store, repository.Options{
		NotFound: "Catégorie non trouvée",
		Order:    "id ASC",
		Preload:  []string{"Skills"},
	})
	skillRepo := repository.New[model.Skill](store, repository.Options{
		NotFound: "Compétence non trouvée",
		Order:    "id ASC",
	})
	certificationRepo := repository.New[model.Certification](store, repository.Options{
		NotFound: "Certification non trouvée",
		Order:    "year DESC, id ASC",
	})
	educationRepo := repository.New[model.Education](store, repository.Options{
		NotFound: "Formation non trouvée",
		Order:    "created_at DESC, id DESC",
	})
	projectRepo := repository.New[model.Project](store, repository.Options{
		NotFound: "Projet non trouvé",
		Order:    "start_date DESC, id ASC",
	})
	messageRepo := repository.New[model.Message](store, repository.Options{
		NotFound: "Message non trouvé",
		Order:    "created_at DESC, id DESC",
	})

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(adminRepo, cfg.Admin, jwtService, tokenStore, v, l)
	skillService := service.NewSkillService(
		service.NewResourceService("skill_categories", categoryRepo, snap.SkillCategories, v, l),
		service.NewResourceService[model.Skill]("skills", skillRepo, nil, v, l),
	)
	certificationService := service.NewResourceService("certifications", certificationRepo, snap.Certifications, v, l)
	educationService := service.NewResourceService("education", educationRepo, snap.Education, v, l)
	projectService := service.NewProjectService(
		service.NewResourceService("projects", projectRepo, snap.Projects, v, l),
		snap.ProjectCategories,
	)
	messageService := service.NewResourceService[model.Message]("messages", messageRepo, nil, v, l)
	seedService := service.NewSeedService(store, snap, cfg.Admin, l)

	// Register routes
	router.Register(e, cfg, l, v, authService.Verify, router.Handlers{
		Auth:          handler.NewAuthHandler(authService, cfg.IsProduction()),
		Skill:         handler.NewSkillHandler(skillService),
		Certification: handler.NewCertificationHandler(certificationService),
		Education:     handler.NewEducationHandler(educationService),
		Project:       handler.NewProjectHandler(projectService),
		Message:       handler.NewMessageHandler(messageService),
		Seed:          handler.NewSeedHandler(seedService),
		Health:        handler.NewHealthHandler(store, cacheClient),
	})
	return e
}
