package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: apperr.NotFound("profile does not exist"), wantStatus: http.StatusNotFound, wantCode: apperr.CodeNotFound},
		{name: "duplicate", err: apperr.Duplicate("name taken"), wantStatus: http.StatusConflict, wantCode: apperr.CodeDuplicate},
		{name: "conflict", err: apperr.Conflict("version race"), wantStatus: http.StatusConflict, wantCode: apperr.CodeConflict},
		{name: "invalid", err: apperr.Invalid("unknown operation"), wantStatus: http.StatusUnprocessableEntity, wantCode: apperr.CodeInvalid},
		{name: "transaction", err: apperr.Transaction(errors.New("aborted")), wantStatus: http.StatusInternalServerError, wantCode: apperr.CodeTransaction},
		{name: "wrapped apperr", err: fmt.Errorf("load profile: %w", apperr.NotFound("gone")), wantStatus: http.StatusNotFound, wantCode: apperr.CodeNotFound},
		{name: "plain error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			RespondServiceError(c, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: want=%d got=%d", tt.wantStatus, rec.Code)
			}
			var envelope ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if envelope.Error.Code != tt.wantCode {
				t.Fatalf("code: want=%q got=%q", tt.wantCode, envelope.Error.Code)
			}
			if envelope.Error.Message == "" {
				t.Fatalf("message must not be empty")
			}
		})
	}
}

func TestBindJSONRejectsMissingRequiredField(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/register-profile", nil)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if BindJSON(c, &req) {
		t.Fatalf("BindJSON accepted an empty body")
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: want=%d got=%d", http.StatusUnprocessableEntity, rec.Code)
	}
}
