package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/usc-bienestar/backend/internal/app/models"
	appRepos "github.com/usc-bienestar/backend/internal/app/repositories"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/auth"
)

// defaultAdmin is created on first startup so the administrative surface
// is reachable before any role has been granted by hand.
const (
	defaultAdminIdentifier = 1000000000
	defaultAdminName       = "Administrador Bienestar"
	defaultAdminEmail      = "bienestar@usc.edu.co"
	defaultAdminPassword   = "bienestar2024"
	defaultAdminArea       = "Bienestar Universitario"
)

// careerCatalog lists every career offered by the university, grouped by
// faculty.
var careerCatalog = map[appModels.Faculty][]string{
	appModels.FacultySalud: {
		"Medicina",
		"Enfermeria",
		"Fisioterapia",
		"Odontologia",
		"Psicologia",
		"Fonoaudiologia",
		"Terapia Respiratoria",
		"Instrumentacion Quirurgica",
	},
	appModels.FacultyDerecho: {
		"Derecho",
		"Ciencia Politica",
	},
	appModels.FacultyIngenieria: {
		"Bioingenieria",
		"Ingenieria Civil",
		"Ingenieria Quimica",
		"Ingenieria Industrial",
		"Ingenieria Comercial",
		"Ingenieria Electronica",
		"Ingenieria en Energias",
		"Ingenieria en Sistemas",
	},
	appModels.FacultyEducacion: {
		"Educacion Infantil",
		"Educacion Fisica",
		"Lenguas Extranjeras con enfasis en Ingles - Frances",
	},
	appModels.FacultyCiencias: {
		"Quimica",
		"Microbiologia",
		"Medicina Veterinaria",
		"Quimica Farmaceutica",
	},
	appModels.FacultyHumanidades: {
		"Publicidad",
		"Trabajo Social",
		"Comunicacion Social",
	},
	appModels.FacultyEconomicas: {
		"Economia",
		"Mercadeo",
		"Contaduria Publica",
		"Administracion de Empresas",
		"Finanzas y Negocios Internacionales",
	},
}

// CreateDefaultData seeds the career catalog and the bootstrap
// administrative user. Existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	careerRepo := appRepos.NewCareerRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (careers, bootstrap admin)...")
	var finalErr error

	for faculty, names := range careerCatalog {
		for _, name := range names {
			career := &appModels.Career{Name: name, Faculty: faculty}
			if _, err := careerRepo.Create(ctx, career); err != nil && !errors.Is(err, apperrors.ErrCareerAlreadyExists) {
				lgr.Error().Err(err).Str("career", name).Msg("Error seeding career")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if err := seedDefaultAdmin(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedDefaultAdmin(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing bootstrap admin password")
		return err
	}

	user := &appModels.User{
		Name:       defaultAdminName,
		Identifier: defaultAdminIdentifier,
		Email:      defaultAdminEmail,
		Password:   hashed,
	}

	userID, err := userRepo.CreateUser(ctx, user)
	switch {
	case err == nil:
		lgr.Info().Int64("identifier", defaultAdminIdentifier).Msg("Bootstrap admin user created")
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		existing, errGet := userRepo.GetByIdentifier(ctx, defaultAdminIdentifier)
		if errGet != nil {
			lgr.Error().Err(errGet).Msg("Error resolving existing bootstrap admin")
			return errGet
		}
		userID = existing.ID
	default:
		lgr.Error().Err(err).Msg("Error creating bootstrap admin user")
		return err
	}

	err = userRepo.CreateAdministrative(ctx, &appModels.Administrative{
		UserID: userID,
		Area:   defaultAdminArea,
		Role:   appModels.AdminRoleAdmin,
	})
	if err != nil && !errors.Is(err, apperrors.ErrConflict) {
		lgr.Error().Err(err).Msg("Error granting bootstrap admin role")
		return err
	}

	return nil
}
