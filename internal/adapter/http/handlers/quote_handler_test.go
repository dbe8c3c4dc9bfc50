package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ckforest/internal/adapter/http/handlers/mocks"
	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIPackageUseCase, *mocks.MockIQuoteUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		packages := mocks.NewMockIPackageUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(packages, quotes)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)
		return r, packages, quotes
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := build(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("package not found", func(t *testing.T) {
		r, packages, _ := build(t)
		packages.EXPECT().GetByID(gomock.Any(), "pkg-404").Return(entities.TourPackage{}, usecase.ErrPackageNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"package_id":"pkg-404","adults":"12"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("garbage counts still produce a quote", func(t *testing.T) {
		r, packages, quotes := build(t)
		packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(dayStayPackage(), nil)
		quotes.EXPECT().ComputeQuote(dayStayPackage(), "abc", "").Return(entities.PriceQuote{})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"package_id":"pkg-1","adults":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, packages, quotes := build(t)
		packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(dayStayPackage(), nil)
		quotes.EXPECT().ComputeQuote(dayStayPackage(), "12", "3").Return(entities.PriceQuote{
			Adults:         12,
			Children:       3,
			HeadcountTotal: 15,
			Subtotal:       60000,
			DepositDue:     30000,
			IsEligible:     true,
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"package_id":"pkg-1","adults":"12","children":"3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["subtotal"] != 60000.0 || resp["deposit_due"] != 30000.0 || resp["is_eligible"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
