package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ckforest/internal/adapter/http/handlers/mocks"
	"ckforest/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIDashboardUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/dashboard/stats", h.GetStats)
		r.GET("/v1/admin/dashboard/trends", h.GetTrends)
		return r, uc
	}

	t.Run("stats success", func(t *testing.T) {
		r, uc := build(t)
		next := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Stats(gomock.Any()).Return(usecase.DashboardStats{
			NextBookingDate: &next,
			BookingsLast30d: 2,
			BookingsNext30d: 5,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["bookings_next_30_days"] != 5.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("stats error", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Stats(gomock.Any()).Return(usecase.DashboardStats{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("trends success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Trends(gomock.Any()).Return([]usecase.BookingTrend{
			{Month: "July", Bookings: 2},
			{Month: "August", Bookings: 0},
			{Month: "September", Bookings: 1},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard/trends", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 3 || resp[0]["month"] != "July" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
