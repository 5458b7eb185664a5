package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func registerTestUser(t *testing.T, svc AuthService, identifier int64, email string) int64 {
	t.Helper()
	id, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Name:       "Ana Torres",
		Identifier: identifier,
		Email:      email,
		Password:   "secret-password",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return id
}

func TestRegisterDuplicateIdentifier(t *testing.T) {
	users := newMockUserStore()
	svc := NewAuthService(users, newTestJWTService())

	registerTestUser(t, svc, 1001, "ana@usc.edu.co")

	_, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Name:       "Otra Persona",
		Identifier: 1001,
		Email:      "otra@usc.edu.co",
		Password:   "secret-password",
	})
	if !errors.Is(err, apperrors.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newMockUserStore()
	svc := NewAuthService(users, newTestJWTService())
	registerTestUser(t, svc, 1001, "ana@usc.edu.co")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: 1001, Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	users := newMockUserStore()
	svc := NewAuthService(users, newTestJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: 999, Password: "whatever"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestLoginResolvesUndefinedRole(t *testing.T) {
	users := newMockUserStore()
	svc := NewAuthService(users, newTestJWTService())
	registerTestUser(t, svc, 1001, "ana@usc.edu.co")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: 1001, Password: "secret-password"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Role != models.RoleLabelUndefined {
		t.Errorf("expected role %q, got %q", models.RoleLabelUndefined, resp.Role)
	}
	if resp.Token == "" {
		t.Error("expected a token on successful login")
	}
	if resp.Semester != nil || resp.Career != nil || resp.Area != "" {
		t.Error("undefined role must not carry student or administrative fields")
	}
}

func TestLoginResolvesStudentRole(t *testing.T) {
	users := newMockUserStore()
	svc := NewAuthService(users, newTestJWTService())
	userID := registerTestUser(t, svc, 1001, "ana@usc.edu.co")

	users.students[userID] = &models.Student{
		UserID:   userID,
		CareerID: 3,
		Semester: 5,
		Career:   &models.Career{ID: 3, Name: "Medicina", Faculty: models.FacultySalud},
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: 1001, Password: "secret-password"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Role != models.RoleLabelStudent {
		t.Errorf("expected role %q, got %q", models.RoleLabelStudent, resp.Role)
	}
	if resp.Semester == nil || *resp.Semester != 5 {
		t.Errorf("expected semester 5, got %v", resp.Semester)
	}
	if resp.Career == nil || *resp.Career != "Medicina" {
		t.Errorf("expected career Medicina, got %v", resp.Career)
	}
}

func TestLoginAdministrativeWinsOverStudent(t *testing.T) {
	users := newMockUserStore()
	svc := NewAuthService(users, newTestJWTService())
	userID := registerTestUser(t, svc, 1001, "ana@usc.edu.co")

	users.students[userID] = &models.Student{UserID: userID, CareerID: 3, Semester: 5}
	users.admins[userID] = &models.Administrative{
		UserID: userID,
		Area:   "Bienestar Universitario",
		Role:   models.AdminRoleCoordinador,
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: 1001, Password: "secret-password"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Role != string(models.AdminRoleCoordinador) {
		t.Errorf("expected role %q, got %q", models.AdminRoleCoordinador, resp.Role)
	}
	if resp.Area != "Bienestar Universitario" {
		t.Errorf("expected area to be set, got %q", resp.Area)
	}
	if resp.Semester != nil {
		t.Error("administrative login must not carry student fields")
	}
}

func TestLoginTokenCarriesResolvedRole(t *testing.T) {
	users := newMockUserStore()
	jwtSvc := newTestJWTService()
	svc := NewAuthService(users, jwtSvc)
	userID := registerTestUser(t, svc, 1001, "ana@usc.edu.co")

	users.admins[userID] = &models.Administrative{
		UserID: userID,
		Area:   "Deportes",
		Role:   models.AdminRoleAdmin,
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: 1001, Password: "secret-password"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := jwtSvc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if claims.Identifier != 1001 {
		t.Errorf("expected identifier 1001 in claims, got %d", claims.Identifier)
	}
	if claims.Role != string(models.AdminRoleAdmin) {
		t.Errorf("expected role %q in claims, got %q", models.AdminRoleAdmin, claims.Role)
	}
	if claims.Area != "Deportes" {
		t.Errorf("expected area in claims, got %q", claims.Area)
	}
}
