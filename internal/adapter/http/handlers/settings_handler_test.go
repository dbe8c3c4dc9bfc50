package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ckforest/internal/adapter/http/handlers/mocks"
	"ckforest/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler_GetSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty table reads as zero values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.GET("/v1/settings", h.GetSettings)

		uc.EXPECT().Get(gomock.Any()).Return(entities.GeneralSettings{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["deposit_instructions"] != "" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.GET("/v1/settings", h.GetSettings)

		uc.EXPECT().Get(gomock.Any()).Return(entities.GeneralSettings{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockISettingsUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/settings", h.UpdateSettings)
		return r, uc
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := build(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/settings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, s entities.GeneralSettings) (entities.GeneralSettings, error) {
				if s.ContactEmail != "stay@ckforest.example" || s.DepositInstructions == "" {
					t.Fatalf("unexpected settings: %+v", s)
				}
				return s, nil
			})

		body := `{"contact_email":"stay@ckforest.example","phone_number":"5926000000","deposit_instructions":"Transfer 50% to account 001-234"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/settings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["contact_email"] != "stay@ckforest.example" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
