// Command seed loads the initial accounts and demo content into the
// database. Running it twice is safe: existing rows are left alone.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/arsitekstudio/cms-api/internal/auth"
	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/infrastructure/config"
	"github.com/arsitekstudio/cms-api/internal/infrastructure/db/postgres"
	"github.com/arsitekstudio/cms-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration failed")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	if err := seed(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seeding complete")
}

func seed(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	users := postgres.NewUserRepository(db)

	seedUsers := []struct {
		name     string
		email    string
		password string
		role     domain.Role
	}{
		{"Admin", "admin@arsitekstudio.com", "admin123", domain.RoleAdmin},
		{"Editor", "editor@arsitekstudio.com", "editor123", domain.RoleEditor},
	}
	for _, u := range seedUsers {
		if _, err := users.FindByEmail(ctx, u.email); err == nil {
			log.Info().Str("email", u.email).Msg("user exists, skipping")
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return err
		}
		if _, err := users.Create(ctx, &domain.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
		}); err != nil {
			return err
		}
		log.Info().Str("email", u.email).Str("role", string(u.role)).Msg("user created")
	}

	// The settings row is created with defaults on first read; fill it in.
	company := postgres.NewCompanyRepository(db)
	info, err := company.Get(ctx)
	if err != nil {
		return err
	}
	if info.Tagline == "" {
		info.Name = "Arsitek Studio"
		info.Tagline = "Designing spaces that inspire"
		info.Story = "Founded in 2010, Arsitek Studio blends contemporary design with tropical sensibility."
		info.YearsExperience = 15
		info.ProjectsCompleted = 120
		info.TeamSize = 24
		info.Awards = 8
		info.Email = "hello@arsitekstudio.com"
		info.Phone = "+62 21 555 0123"
		info.Address = "Jl. Senopati No. 45, Jakarta Selatan"
		if _, err := company.Update(ctx, info); err != nil {
			return err
		}
		log.Info().Msg("company settings seeded")
	}

	if err := seedServices(db, log); err != nil {
		return err
	}
	return seedProjects(db, log)
}

func seedServices(db *gorm.DB, log zerolog.Logger) error {
	services := []domain.Service{
		{Number: "01", Title: "Architectural Design", Slug: "architectural-design", Description: "Full-cycle building design from concept to construction documents.", DisplayOrder: 1},
		{Number: "02", Title: "Interior Design", Slug: "interior-design", Description: "Interior concepts, material palettes, and custom furniture design.", DisplayOrder: 2},
		{Number: "03", Title: "Urban Planning", Slug: "urban-planning", Description: "Masterplans and feasibility studies for mixed-use developments.", DisplayOrder: 3},
		{Number: "04", Title: "Project Management", Slug: "project-management", Description: "On-site supervision and contractor coordination through handover.", DisplayOrder: 4},
	}
	for i := range services {
		var count int64
		if err := db.Model(&domain.Service{}).Where("slug = ?", services[i].Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		services[i].ID = uuid.NewString()
		if err := db.Create(&services[i]).Error; err != nil {
			return err
		}
		log.Info().Str("slug", services[i].Slug).Msg("service created")
	}
	return nil
}

func seedProjects(db *gorm.DB, log zerolog.Logger) error {
	projects := []domain.Project{
		{
			Title:        "Villa Serenity",
			Slug:         "villa-serenity",
			Category:     "Residential",
			Sector:       "Private",
			Location:     "Bali",
			Year:         2023,
			Description:  "A hillside retreat opening onto rice terraces, built around a central courtyard.",
			Status:       domain.StatusPublished,
			Featured:     true,
			DisplayOrder: 1,
			CoverImage:   "/uploads/villa-serenity.jpg",
		},
		{
			Title:        "Menara Kuningan Office",
			Slug:         "menara-kuningan-office",
			Category:     "Commercial",
			Sector:       "Corporate",
			Location:     "Jakarta",
			Year:         2024,
			Description:  "A 12-floor office fit-out focused on daylight and collaborative space.",
			Status:       domain.StatusPublished,
			DisplayOrder: 2,
			CoverImage:   "/uploads/menara-kuningan.jpg",
		},
		{
			Title:        "Riverside Pavilion",
			Slug:         "riverside-pavilion",
			Category:     "Public",
			Sector:       "Government",
			Location:     "Bandung",
			Year:         2025,
			Description:  "A public pavilion and event space along the Cikapundung river.",
			Status:       domain.StatusDraft,
			DisplayOrder: 3,
			CoverImage:   "/uploads/riverside-pavilion.jpg",
		},
	}
	for i := range projects {
		var count int64
		if err := db.Model(&domain.Project{}).Where("slug = ?", projects[i].Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		projects[i].ID = uuid.NewString()
		if err := db.Create(&projects[i]).Error; err != nil {
			return err
		}
		log.Info().Str("slug", projects[i].Slug).Msg("project created")
	}
	return nil
}
