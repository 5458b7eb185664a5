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

// UserRepository handles user and role-profile database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser inserts a new user record
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "identifier", "email", "password_hash", "phone", "gender", "ethnicity", "disability").
		Values(user.Name, user.Identifier, user.Email, user.Password, user.Phone, user.Gender, user.Ethnicity, user.Disability).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByIdentifier retrieves a user by their external identifier
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier int64) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "identifier", "email", "password_hash", "phone", "gender", "ethnicity", "disability").
		From("users").
		Where(squirrel.Eq{"identifier": identifier}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Identifier, &user.Email, &user.Password,
		&user.Phone, &user.Gender, &user.Ethnicity, &user.Disability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("identifier", identifier).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by identifier: %w", err)
	}

	return user, nil
}

// GetAdministrative retrieves the administrative role profile of a user,
// or apperrors.ErrResourceNotFound when the user has none.
func (r *UserRepository) GetAdministrative(ctx context.Context, userID int64) (*models.Administrative, error) {
	sql, args, err := r.sb.Select("user_id", "area", "role").
		From("administratives").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get administrative query: %w", err)
	}

	admin := &models.Administrative{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.UserID, &admin.Area, &admin.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning administrative row")
		return nil, fmt.Errorf("error getting administrative profile: %w", err)
	}

	return admin, nil
}

// CreateAdministrative grants the administrative role profile
func (r *UserRepository) CreateAdministrative(ctx context.Context, admin *models.Administrative) error {
	sql, args, err := r.sb.Insert("administratives").
		Columns("user_id", "area", "role").
		Values(admin.UserID, admin.Area, admin.Role).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create administrative query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Int64("userID", admin.UserID).Msg("Error executing create administrative query")
		return fmt.Errorf("error creating administrative profile: %w", err)
	}

	return nil
}

// DeleteAdministrative revokes the administrative role profile
func (r *UserRepository) DeleteAdministrative(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Delete("administratives").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete administrative query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing delete administrative query")
		return fmt.Errorf("error deleting administrative profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// GetStudent retrieves the student role profile of a user joined with its
// career, or apperrors.ErrResourceNotFound when the user has none.
func (r *UserRepository) GetStudent(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("s.id", "s.user_id", "s.career_id", "s.semester", "c.name", "c.faculty").
		From("students s").
		Join("careers c ON c.id = s.career_id").
		Where(squirrel.Eq{"s.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{Career: &models.Career{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.UserID, &student.CareerID, &student.Semester,
		&student.Career.Name, &student.Career.Faculty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student profile: %w", err)
	}
	student.Career.ID = student.CareerID

	return student, nil
}

// CreateStudent inserts the student role profile
func (r *UserRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "career_id", "semester").
		Values(student.UserID, student.CareerID, student.Semester).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrConflict
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCareerNotFound
		}
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student profile: %w", err)
	}

	return id, nil
}
