package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
)

type reportFixture struct {
	users       *mockUserStore
	courses     *mockCourseStore
	sessions    *mockSessionStore
	enrollments *mockEnrollmentStore
	svc         ReportService
}

func newReportFixture() *reportFixture {
	users := newMockUserStore()
	sessions := newMockSessionStore()
	courses := newMockCourseStore(sessions)
	enrollments := newMockEnrollmentStore(sessions, users)
	return &reportFixture{
		users:       users,
		courses:     courses,
		sessions:    sessions,
		enrollments: enrollments,
		svc:         NewReportService(courses, sessions, enrollments, users),
	}
}

func (f *reportFixture) seed(t *testing.T) (courseID, sessionID int64) {
	t.Helper()
	ctx := context.Background()

	user := &models.User{Name: "Ana Torres", Identifier: 1001, Email: "ana@usc.edu.co"}
	f.users.CreateUser(ctx, user)

	courseID, _ = f.courses.Create(ctx, &models.Course{Name: "Natacion", Category: models.CategorySport, Active: true})

	remaining := int32(10)
	instructor := "Carlos Ruiz"
	session := &models.Session{
		CourseID:          courseID,
		Day:               models.WeekdayLunes,
		StartTime:         "08:00:00",
		EndTime:           "10:00:00",
		Instructor:        &instructor,
		MaxCapacity:       10,
		RemainingCapacity: &remaining,
		Active:            true,
	}
	f.sessions.Create(ctx, session)

	if err := f.enrollments.Enroll(ctx, session.ID, user.ID, time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	return courseID, session.ID
}

func TestReportBuildNesting(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	f.seed(t)

	// A second course with an empty session still appears in the report
	emptyCourseID, _ := f.courses.Create(ctx, &models.Course{Name: "Teatro", Category: models.CategoryArts, Active: false})
	remaining := int32(5)
	f.sessions.Create(ctx, &models.Session{
		CourseID:          emptyCourseID,
		Day:               models.WeekdayJueves,
		StartTime:         "14:00:00",
		EndTime:           "16:00:00",
		MaxCapacity:       5,
		RemainingCapacity: &remaining,
		Active:            true,
	})

	report, err := f.svc.Build(ctx, 1001, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 courses in report, got %d", len(report))
	}

	natacion := report[0]
	if natacion.Name != "Natacion" {
		t.Fatalf("expected Natacion first, got %q", natacion.Name)
	}
	if len(natacion.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(natacion.Sessions))
	}
	sess := natacion.Sessions[0]
	if sess.EnrolledCount != 1 || len(sess.Enrollments) != 1 {
		t.Fatalf("expected 1 enrollment, got count=%d len=%d", sess.EnrolledCount, len(sess.Enrollments))
	}
	e := sess.Enrollments[0]
	if e.User.Name != "Ana Torres" || e.User.Identifier != 1001 || e.User.Email != "ana@usc.edu.co" {
		t.Errorf("unexpected enrollment user %+v", e.User)
	}

	teatro := report[1]
	if len(teatro.Sessions) != 1 || teatro.Sessions[0].EnrolledCount != 0 {
		t.Error("expected Teatro session present with zero enrollments")
	}

	arts := models.CategoryArts
	filtered, err := f.svc.Build(ctx, 1001, &arts)
	if err != nil {
		t.Fatalf("Build with category filter failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "Teatro" {
		t.Fatalf("expected only Teatro under %s, got %+v", arts, filtered)
	}
}

func TestReportBuildRejectsBadInput(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	f.seed(t)

	if _, err := f.svc.Build(ctx, 9999, nil); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown requester, got %v", err)
	}

	bogus := models.CourseCategory("Ajedrez Extremo")
	if _, err := f.svc.Build(ctx, 1001, &bogus); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed for unknown category, got %v", err)
	}
}

func TestReportExportSheets(t *testing.T) {
	f := newReportFixture()
	f.seed(t)

	content, err := f.svc.Export(context.Background(), 1001, nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("exported content is not a valid workbook: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Natacion" {
		t.Fatalf("expected single sheet Natacion, got %v", sheets)
	}

	header, err := wb.GetCellValue("Natacion", "A1")
	if err != nil || header != "Dia" {
		t.Errorf("expected header Dia in A1, got %q (err %v)", header, err)
	}
	day, _ := wb.GetCellValue("Natacion", "A2")
	if day != "lunes" {
		t.Errorf("expected lunes in A2, got %q", day)
	}
	name, _ := wb.GetCellValue("Natacion", "F2")
	if name != "Ana Torres" {
		t.Errorf("expected enrolled user name in F2, got %q", name)
	}
}

func TestReportExportEmptyCatalog(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	f.users.CreateUser(ctx, &models.User{Name: "Ana Torres", Identifier: 1001, Email: "ana@usc.edu.co"})

	content, err := f.svc.Export(ctx, 1001, nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("exported content is not a valid workbook: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Reporte" {
		t.Fatalf("expected placeholder sheet Reporte, got %v", sheets)
	}
}

func TestSheetNameTruncationAndDedup(t *testing.T) {
	used := map[string]bool{}

	long := "Catedra Santiaguina de Historia y Patrimonio Cultural"
	first := sheetName(long, used)
	if len(first) > 31 {
		t.Fatalf("sheet name exceeds 31 chars: %q", first)
	}

	second := sheetName(long, used)
	if second == first {
		t.Fatalf("expected deduplicated name, got %q twice", second)
	}
	if len(second) > 31 {
		t.Fatalf("deduplicated sheet name exceeds 31 chars: %q", second)
	}
}

func TestSheetNameTruncatesOnRuneBoundary(t *testing.T) {
	used := map[string]bool{}

	// 30 ASCII chars followed by multi-byte runes, truncation must not
	// split one in half
	accented := "123456789012345678901234567890áéí"
	name := sheetName(accented, used)
	if !utf8.ValidString(name) {
		t.Fatalf("sheet name is not valid UTF-8: %q", name)
	}
	if got := utf8.RuneCountInString(name); got > 31 {
		t.Fatalf("sheet name exceeds 31 runes: %d", got)
	}
	if name != "123456789012345678901234567890á" {
		t.Fatalf("unexpected truncation result: %q", name)
	}

	deduped := sheetName(accented, used)
	if !utf8.ValidString(deduped) {
		t.Fatalf("deduplicated sheet name is not valid UTF-8: %q", deduped)
	}
	if got := utf8.RuneCountInString(deduped); got > 31 {
		t.Fatalf("deduplicated sheet name exceeds 31 runes: %d", got)
	}
}
