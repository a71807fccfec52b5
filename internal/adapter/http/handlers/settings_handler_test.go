package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"comunikapp/internal/adapter/http/handlers/mocks"
	"comunikapp/internal/adapter/http/middleware"
	"comunikapp/internal/domain/entities"
	"comunikapp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSettingsRouter(t *testing.T) (*gin.Engine, *mocks.MockISettingsUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISettingsUseCase(ctrl)
	h := NewSettingsHandler(uc)

	r := gin.New()
	settings := r.Group("/v1", middleware.RequireStore()).Group("/loja/configuracoes")
	settings.GET("", h.Get)
	settings.PUT("", h.Save)
	return r, uc
}

func TestSettingsHandler_Get(t *testing.T) {
	t.Run("not configured yet", func(t *testing.T) {
		r, uc := newSettingsRouter(t)
		uc.EXPECT().Get(gomock.Any(), "store-1").Return(entities.StoreSettings{}, usecase.ErrStoreNotFound)

		w := doJSON(r, http.MethodGet, "/v1/loja/configuracoes", "store-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newSettingsRouter(t)
		labor := 50.0
		uc.EXPECT().Get(gomock.Any(), "store-1").Return(entities.StoreSettings{
			StoreID: "store-1", LaborCostPerHour: &labor,
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/loja/configuracoes", "store-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["custo_mao_obra_hora"] != 50.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSettingsHandler_Save(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newSettingsRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/loja/configuracoes", "store-1", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative value maps to 400", func(t *testing.T) {
		r, uc := newSettingsRouter(t)
		uc.EXPECT().Save(gomock.Any(), "store-1", gomock.Any()).Return(entities.StoreSettings{}, usecase.ErrInvalidSettingsInput)

		w := doJSON(r, http.MethodPut, "/v1/loja/configuracoes", "store-1", `{"custo_mao_obra_hora":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial payload forwards only present fields", func(t *testing.T) {
		r, uc := newSettingsRouter(t)
		uc.EXPECT().Save(gomock.Any(), "store-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, in usecase.SettingsInput) (entities.StoreSettings, error) {
				if in.LaborCostPerHour == nil || *in.LaborCostPerHour != 45 {
					t.Fatalf("labor cost lost: %+v", in)
				}
				if in.IndirectMonthlyCosts != nil || in.DefaultTaxPercent != nil {
					t.Fatalf("absent fields must stay nil: %+v", in)
				}
				labor := 45.0
				return entities.StoreSettings{StoreID: "store-1", LaborCostPerHour: &labor}, nil
			},
		)

		w := doJSON(r, http.MethodPut, "/v1/loja/configuracoes", "store-1", `{"custo_mao_obra_hora":45}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
