package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/dberrors"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// CareerRepository handles career catalog database operations
type CareerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCareerRepository creates a new CareerRepository
func NewCareerRepository(db *pgxpool.Pool) *CareerRepository {
	return &CareerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a career catalog entry. Used by the seeder.
func (r *CareerRepository) Create(ctx context.Context, career *models.Career) (int64, error) {
	sql, args, err := r.sb.Insert("careers").
		Columns("name", "faculty").
		Values(career.Name, career.Faculty).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create career query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrCareerAlreadyExists
		}
		logger.Error().Err(err).Str("career", career.Name).Msg("Error executing create career query")
		return 0, fmt.Errorf("error creating career: %w", err)
	}

	return id, nil
}

// GetByID retrieves a career by ID
func (r *CareerRepository) GetByID(ctx context.Context, id int64) (*models.Career, error) {
	sql, args, err := r.sb.Select("id", "name", "faculty").
		From("careers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get career query: %w", err)
	}

	career := &models.Career{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&career.ID, &career.Name, &career.Faculty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCareerNotFound
		}
		logger.Error().Err(err).Int64("careerID", id).Msg("Error scanning career row")
		return nil, fmt.Errorf("error getting career by ID: %w", err)
	}

	return career, nil
}

// GetAll retrieves the full career catalog ordered by faculty and name
func (r *CareerRepository) GetAll(ctx context.Context) ([]*models.Career, error) {
	sql, args, err := r.sb.Select("id", "name", "faculty").
		From("careers").
		OrderBy("faculty ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all careers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all careers query")
		return nil, fmt.Errorf("error querying careers: %w", err)
	}
	defer rows.Close()

	careers := []*models.Career{}
	for rows.Next() {
		career := &models.Career{}
		if err := rows.Scan(&career.ID, &career.Name, &career.Faculty); err != nil {
			return nil, fmt.Errorf("error scanning career row: %w", err)
		}
		careers = append(careers, career)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating career rows: %w", err)
	}

	return careers, nil
}
