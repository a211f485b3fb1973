package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"arquitetura_xpto/internal/adapter/http/handlers/mocks"
	"arquitetura_xpto/internal/domain/entities"
	"arquitetura_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBriefingHandler_GetBriefing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIBriefingUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBriefingUseCase(ctrl)
		h := NewBriefingHandler(uc)
		r := gin.New()
		r.GET("/v1/briefings/:id", h.GetBriefing)
		return r, uc
	}

	t.Run("not found", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "brief-404").Return(entities.Briefing{}, usecase.ErrBriefingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/briefings/brief-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "brief-1").
			Return(entities.Briefing{ID: "brief-1", ProjectName: "Casa"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/briefings/brief-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
