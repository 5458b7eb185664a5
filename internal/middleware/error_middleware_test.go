package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{apperrors.ErrUserNotFound, 404, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrCourseNotFound, 404, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrSessionNotFound, 404, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrCareerNotFound, 404, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrUserAlreadyExists, 400, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrAlreadyEnrolled, 400, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{apperrors.ErrTokenInvalid, 401, dto.ErrorCodeInvalidToken},
		{apperrors.ErrUnknownSubject, 401, dto.ErrorCodeUnknownSubject},
		{apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{apperrors.ErrCourseInactive, 400, dto.ErrorCodeResourceInactive},
		{apperrors.ErrSessionInactive, 400, dto.ErrorCodeResourceInactive},
		{apperrors.ErrNoCapacity, 400, dto.ErrorCodeCapacityExceeded},
		{apperrors.ErrNotEnrolled, 400, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrValidationFailed, 400, dto.ErrorCodeValidationFailed},
		{fmt.Errorf("boom"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, w.Code)
			}

			var resp dto.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Error == nil {
				t.Fatal("expected an error payload")
			}
			if resp.Error.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestHandleAPIErrorWrappedError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, fmt.Errorf("looking up: %w", apperrors.ErrSessionNotFound))

	if w.Code != 404 {
		t.Fatalf("expected 404 for wrapped sentinel, got %d", w.Code)
	}
}
