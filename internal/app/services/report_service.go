package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// ReportService builds the nested enrollment report and its xlsx export
type ReportService interface {
	Build(ctx context.Context, identifier int64, category *models.CourseCategory) ([]dto.ReportCourse, error)
	// Export renders the report as an xlsx workbook, one sheet per
	// course.
	Export(ctx context.Context, identifier int64, category *models.CourseCategory) ([]byte, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	courses     CourseStore
	sessions    SessionStore
	enrollments EnrollmentStore
	users       UserStore
}

// NewReportService creates a new report service instance
func NewReportService(courses CourseStore, sessions SessionStore, enrollments EnrollmentStore, users UserStore) ReportService {
	return &reportServiceImpl{
		courses:     courses,
		sessions:    sessions,
		enrollments: enrollments,
		users:       users,
	}
}

// Build assembles the course -> session -> enrollment hierarchy across
// the courses matching the optional category filter, including inactive
// courses and sessions with no enrollments.
func (s *reportServiceImpl) Build(ctx context.Context, identifier int64, category *models.CourseCategory) ([]dto.ReportCourse, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown course category %q", apperrors.ErrValidationFailed, *category)
	}

	if _, err := s.users.GetByIdentifier(ctx, identifier); err != nil {
		return nil, err
	}

	courses, err := s.courses.GetAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error listing courses for report: %w", err)
	}

	report := make([]dto.ReportCourse, 0, len(courses))
	for _, course := range courses {
		sessions, err := s.sessions.ListByCourse(ctx, course.ID)
		if err != nil {
			return nil, fmt.Errorf("error listing sessions for report: %w", err)
		}

		rc := dto.ReportCourse{
			Name:     course.Name,
			Category: course.Category,
			Sessions: make([]dto.ReportSession, 0, len(sessions)),
		}

		for _, sess := range sessions {
			enrollments, err := s.enrollments.ListBySessionWithUsers(ctx, sess.ID)
			if err != nil {
				return nil, fmt.Errorf("error listing enrollments for report: %w", err)
			}

			rs := dto.ReportSession{
				Day:           sess.Day,
				StartTime:     sess.StartTime,
				EndTime:       sess.EndTime,
				Instructor:    sess.Instructor,
				EnrolledCount: len(enrollments),
				Enrollments:   make([]dto.ReportEnrollment, 0, len(enrollments)),
			}
			for _, e := range enrollments {
				rs.Enrollments = append(rs.Enrollments, dto.ReportEnrollment{
					User: dto.ReportUser{
						Name:       e.UserName,
						Identifier: e.UserIdentifier,
						Email:      e.UserEmail,
					},
					EnrolledAt: e.EnrolledAt,
				})
			}
			rc.Sessions = append(rc.Sessions, rs)
		}

		report = append(report, rc)
	}

	return report, nil
}

var reportHeaders = []string{
	"Dia", "Hora inicio", "Hora fin", "Profesor", "Matriculados",
	"Nombre", "Identificacion", "Correo", "Fecha inscripcion",
}

func (s *reportServiceImpl) Export(ctx context.Context, identifier int64, category *models.CourseCategory) ([]byte, error) {
	report, err := s.Build(ctx, identifier, category)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing xlsx workbook")
		}
	}()

	used := map[string]bool{}
	for i, course := range report {
		sheet := sheetName(course.Name, used)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("error creating sheet %q: %w", sheet, err)
			}
		}

		if err := writeCourseSheet(f, sheet, course); err != nil {
			return nil, err
		}
	}

	// A workbook cannot be empty, keep a named placeholder sheet
	if len(report) == 0 {
		f.SetSheetName("Sheet1", "Reporte")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing xlsx workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeCourseSheet(f *excelize.File, sheet string, course dto.ReportCourse) error {
	for col, h := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("error resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("error writing header cell: %w", err)
		}
	}

	row := 2
	for _, sess := range course.Sessions {
		instructor := ""
		if sess.Instructor != nil {
			instructor = *sess.Instructor
		}
		base := []interface{}{string(sess.Day), sess.StartTime, sess.EndTime, instructor, sess.EnrolledCount}

		if len(sess.Enrollments) == 0 {
			if err := writeRow(f, sheet, row, base); err != nil {
				return err
			}
			row++
			continue
		}

		for _, e := range sess.Enrollments {
			values := append(append([]interface{}{}, base...),
				e.User.Name,
				e.User.Identifier,
				e.User.Email,
				e.EnrolledAt.Format("2006-01-02 15:04:05"),
			)
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("error resolving row cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("error writing report row: %w", err)
	}
	return nil
}

// sheetName fits a course name into the 31-character sheet name limit and
// deduplicates collisions with a numeric suffix.
func sheetName(name string, used map[string]bool) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", "*", "-", "?", "-", ":", "-", "[", "(", "]", ")")
	base := strings.TrimSpace(replacer.Replace(name))
	if base == "" {
		base = "Curso"
	}
	// The 31-char sheet limit counts characters, truncate on rune
	// boundaries so multi-byte names stay valid UTF-8
	if runes := []rune(base); len(runes) > 31 {
		base = string(runes[:31])
	}

	candidate := base
	for n := 2; used[candidate]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		trimmed := base
		if runes := []rune(trimmed); len(runes)+len(suffix) > 31 {
			trimmed = string(runes[:31-len(suffix)])
		}
		candidate = trimmed + suffix
	}
	used[candidate] = true
	return candidate
}
