package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/db"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/dberrors"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations. Enroll and
// Cancel run inside a transaction that locks the session row, so the
// capacity counter cannot be oversold by concurrent requests.
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Exists reports whether an enrollment exists for (session, user)
func (r *EnrollmentRepository) Exists(ctx context.Context, sessionID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("enrollments").
		Where(squirrel.Eq{"session_id": sessionID, "user_id": userID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build enrollment existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("sessionID", sessionID).Int64("userID", userID).Msg("Error checking enrollment existence")
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// Enroll creates an enrollment and decrements the session's remaining
// capacity when tracking is enabled. Returns ErrNoCapacity when the
// counter is exhausted and ErrAlreadyEnrolled when the unique constraint
// on (session_id, user_id) fires.
func (r *EnrollmentRepository) Enroll(ctx context.Context, sessionID, userID int64, enrolledAt time.Time) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		// Lock the session row so concurrent toggles serialize on it
		var remaining *int32
		err := tx.QueryRow(ctx,
			`SELECT remaining_capacity FROM sessions WHERE id = $1 FOR UPDATE`,
			sessionID).Scan(&remaining)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrSessionNotFound
			}
			return fmt.Errorf("error locking session row: %w", err)
		}

		if remaining != nil {
			if *remaining <= 0 {
				return apperrors.ErrNoCapacity
			}
			if _, err := tx.Exec(ctx,
				`UPDATE sessions SET remaining_capacity = remaining_capacity - 1 WHERE id = $1`,
				sessionID); err != nil {
				return fmt.Errorf("error decrementing session capacity: %w", err)
			}
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO enrollments (session_id, user_id, enrolled_at, status) VALUES ($1, $2, $3, true)`,
			sessionID, userID, enrolledAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "enrollments_session_user_unique") {
				return apperrors.ErrAlreadyEnrolled
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
}

// Cancel deletes an enrollment and gives the seat back when capacity
// tracking is enabled. Returns ErrNotEnrolled when no row existed.
func (r *EnrollmentRepository) Cancel(ctx context.Context, sessionID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`DELETE FROM enrollments WHERE session_id = $1 AND user_id = $2`,
			sessionID, userID)
		if err != nil {
			return fmt.Errorf("error deleting enrollment: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotEnrolled
		}

		// LEAST guards remaining_capacity <= max_capacity
		_, err = tx.Exec(ctx,
			`UPDATE sessions
			 SET remaining_capacity = LEAST(remaining_capacity + 1, max_capacity)
			 WHERE id = $1 AND remaining_capacity IS NOT NULL`,
			sessionID)
		if err != nil {
			return fmt.Errorf("error incrementing session capacity: %w", err)
		}

		return nil
	})
}

// ListBySessionWithUsers retrieves the enrollments of a session joined
// with the display fields of each enrolled user, oldest first.
func (r *EnrollmentRepository) ListBySessionWithUsers(ctx context.Context, sessionID int64) ([]*models.EnrollmentWithUser, error) {
	sql, args, err := r.sb.Select("u.name", "u.identifier", "u.email", "e.enrolled_at").
		From("enrollments e").
		Join("users u ON u.id = e.user_id").
		Where(squirrel.Eq{"e.session_id": sessionID}).
		OrderBy("e.enrolled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sessionID", sessionID).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.EnrollmentWithUser{}
	for rows.Next() {
		e := &models.EnrollmentWithUser{}
		if err := rows.Scan(&e.UserName, &e.UserIdentifier, &e.UserEmail, &e.EnrolledAt); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}
