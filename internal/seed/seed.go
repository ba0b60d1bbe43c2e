package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/atlasedu/accredia/internal/app/models"
	appRepos "github.com/atlasedu/accredia/internal/app/repositories"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

// CreateDefaultData seeds a starter curriculum so a fresh install has
// something to evaluate against. Every insert tolerates already-existing
// rows, so reruns are harmless.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data (degrees/objectives)...")
	var finalErr error

	degrees := []*appModels.Degree{
		{Name: "Computer Science", Level: appModels.LevelBS, Description: "Undergraduate computer science program", Status: appModels.StatusActive},
		{Name: "Computer Science", Level: appModels.LevelMS, Description: "Graduate computer science program", Status: appModels.StatusActive},
	}
	for _, degree := range degrees {
		err := repos.DegreeRepository.Create(ctx, degree)
		if err != nil && !errors.Is(err, apperrors.ErrDuplicateKey) {
			lgr.Error().Err(err).Str("degree", degree.Name).Str("level", string(degree.Level)).
				Msg("Error creating default degree")
			finalErr = errors.Join(finalErr, err)
		}
	}

	objectives := []*appModels.Objective{
		{Code: "OBJ1", Title: "Problem solving", Description: "Analyze a problem and define the computing requirements appropriate to its solution."},
		{Code: "OBJ2", Title: "Software design", Description: "Design, implement and evaluate a computer-based system to meet desired needs."},
		{Code: "OBJ3", Title: "Communication", Description: "Communicate effectively with a range of audiences."},
	}
	for _, objective := range objectives {
		err := repos.ObjectiveRepository.Create(ctx, objective)
		if err != nil && !errors.Is(err, apperrors.ErrDuplicateKey) {
			lgr.Error().Err(err).Str("objective", objective.Code).Msg("Error creating default objective")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, degree := range degrees {
		for _, objective := range objectives {
			link := &appModels.DegreeObjective{Degree: degree.Key(), ObjCode: objective.Code}
			err := repos.CurriculumRepository.LinkDegreeObjective(ctx, link)
			if err != nil && !errors.Is(err, apperrors.ErrDuplicateKey) {
				lgr.Error().Err(err).Str("degree", degree.Name).Str("objective", objective.Code).
					Msg("Error linking default objective")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
