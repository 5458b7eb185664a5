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

// sessionColumns formats TIME columns as HH:MM:SS strings on the way out
var sessionColumns = []string{
	"id", "course_id", "day",
	"to_char(start_time, 'HH24:MI:SS')",
	"to_char(end_time, 'HH24:MI:SS')",
	"instructor", "max_capacity", "remaining_capacity", "active",
}

// SessionRepository handles session ("horario") database operations
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSession(row pgx.Row) (*models.Session, error) {
	session := &models.Session{}
	err := row.Scan(
		&session.ID, &session.CourseID, &session.Day,
		&session.StartTime, &session.EndTime,
		&session.Instructor, &session.MaxCapacity, &session.RemainingCapacity, &session.Active,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Create inserts a new session. The owning course must exist; a foreign
// key violation maps to ErrCourseNotFound and no row is created.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) (int64, error) {
	sql, args, err := r.sb.Insert("sessions").
		Columns("course_id", "day", "start_time", "end_time", "instructor", "max_capacity", "remaining_capacity", "active").
		Values(session.CourseID, session.Day, session.StartTime, session.EndTime,
			session.Instructor, session.MaxCapacity, session.RemainingCapacity, session.Active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create session query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", session.CourseID).Msg("Error executing create session query")
		return 0, fmt.Errorf("error creating session: %w", err)
	}

	return id, nil
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	sql, args, err := r.sb.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	session, err := scanSession(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Int64("sessionID", id).Msg("Error scanning session row")
		return nil, fmt.Errorf("error getting session by ID: %w", err)
	}

	return session, nil
}

// ListByCourse retrieves all sessions of a course ordered by weekday and
// start time
func (r *SessionRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Session, error) {
	sql, args, err := r.sb.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("array_position(ARRAY['lunes','martes','miercoles','jueves','viernes','sabado','domingo'], day::text)", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list sessions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing list sessions query")
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}

// Delete removes a session; its enrollments cascade with it
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete session query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sessionID", id).Msg("Error executing delete session query")
		return fmt.Errorf("error deleting session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}
