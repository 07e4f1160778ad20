package http

import (
	"net/http"

	"github.com/agrilabs/wms-backend-go/internal/domain/insights"
	"github.com/agrilabs/wms-backend-go/internal/handler/http/response"
)

type InsightsHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type insightsHandlerImpl struct {
	insightsService insights.InsightsService
}

func NewInsightsHandler(insightsService insights.InsightsService) InsightsHandler {
	return &insightsHandlerImpl{insightsService: insightsService}
}

func (h *insightsHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.insightsService.Overview(r.Context(), farmerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
