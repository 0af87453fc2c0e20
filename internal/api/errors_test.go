package api

import (
	"blogs/internal/apperr"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, http.StatusBadRequest, apperr.CodeInvalidRequest, "无效的请求")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	var response APIError
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Code != apperr.CodeInvalidRequest || response.Message != "无效的请求" {
		t.Errorf("unexpected response %+v", response)
	}
}

func TestErrorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "NotFound",
			err:            apperr.New(apperr.NotFound, apperr.CodePostNotFound, "post not found"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   apperr.CodePostNotFound,
			expectedMsg:    "post not found",
		},
		{
			name:           "WrappedForbidden",
			err:            fmt.Errorf("update: %w", apperr.New(apperr.Forbidden, apperr.CodeNotAuthorized, "not authorized")),
			expectedStatus: http.StatusForbidden,
			expectedCode:   apperr.CodeNotAuthorized,
			expectedMsg:    "not authorized",
		},
		{
			name:           "ExpiredToken",
			err:            apperr.New(apperr.ExpiredOrInvalid, apperr.CodeInvalidResetToken, "invalid or expired token"),
			expectedStatus: http.StatusExpectationFailed,
			expectedCode:   apperr.CodeInvalidResetToken,
			expectedMsg:    "invalid or expired token",
		},
		{
			name:           "Unclassified",
			err:            errors.New("database is locked"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apperr.CodeInternal,
			expectedMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorMiddleware())
			r.GET("/", func(c *gin.Context) { fail(c, tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var response APIError
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, response.Code)
			}
			if response.Message != tt.expectedMsg {
				t.Errorf("expected message %s, got %s", tt.expectedMsg, response.Message)
			}
		})
	}
}

func TestErrorMiddlewareLeavesWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
