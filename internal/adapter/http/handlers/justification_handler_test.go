package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mutawazi_proposals/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJustificationHandler_GenerateJustification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing service id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJustificationUseCase(ctrl)
		h := NewJustificationHandler(uc)

		r := gin.New()
		r.POST("/v1/price-justification", h.GenerateJustification)

		req := httptest.NewRequest(http.MethodPost, "/v1/price-justification", bytes.NewBufferString(`{"proposed_price":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJustificationUseCase(ctrl)
		h := NewJustificationHandler(uc)

		r := gin.New()
		r.POST("/v1/price-justification", h.GenerateJustification)

		req := httptest.NewRequest(http.MethodPost, "/v1/price-justification", bytes.NewBufferString(`{"service_id":"1.2","proposed_price":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("always answers 200 with text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJustificationUseCase(ctrl)
		h := NewJustificationHandler(uc)

		r := gin.New()
		r.POST("/v1/price-justification", h.GenerateJustification)

		uc.EXPECT().RequestJustification(gomock.Any(), "1.2", 55000.0).Return("This price reflects strong market value.")

		req := httptest.NewRequest(http.MethodPost, "/v1/price-justification", bytes.NewBufferString(`{"service_id":"1.2","proposed_price":55000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["justification"] != "This price reflects strong market value." {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if resp["service_id"] != "1.2" || resp["proposed_price"] != float64(55000) {
			t.Fatalf("unexpected echo fields: %s", w.Body.String())
		}
	})
}
