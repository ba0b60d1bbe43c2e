package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/atlasedu/accredia/internal/app/models/dto"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

func recordError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "duplicate key", err: apperrors.ErrDegreeAlreadyExists, wantStatus: http.StatusConflict, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "missing relationship", err: apperrors.ErrCourseNotLinked, wantStatus: http.StatusConflict, wantCode: dto.ErrorCodeMissingRelationship},
		{name: "validation failure", err: apperrors.NewValidationFailure("bad input"), wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidationFailed},
		{name: "grade total violation", err: apperrors.NewValidationError("OBJ1", 12, 30), wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidationFailed},
		{name: "policy violation", err: apperrors.ErrInstructorArchived, wantStatus: http.StatusUnprocessableEntity, wantCode: dto.ErrorCodePolicyViolation},
		{name: "not found", err: apperrors.ErrSectionNotFound, wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := recordError(t, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Success {
				t.Error("error response should have success=false")
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %v, want %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorCarriesValidationDetail(t *testing.T) {
	w := recordError(t, apperrors.NewValidationError("OBJ2", 25, 30))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Field != "OBJ2" {
		t.Errorf("field = %q, want OBJ2", resp.Error.Field)
	}
	want := "objective OBJ2: total graded (25) must be 0 or exactly 30"
	if resp.Error.Message != want {
		t.Errorf("message = %q, want %q", resp.Error.Message, want)
	}
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	w := recordError(t, errors.New("pq: something leaked"))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Message != "Internal server error" {
		t.Errorf("internal errors must not leak detail, got %q", resp.Error.Message)
	}
}
