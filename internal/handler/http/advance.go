package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByWorker(w http.ResponseWriter, r *http.Request)
	ListByRange(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

func (h *advanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.advanceService.Create(r.Context(), farmerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded", result)
}

func (h *advanceHandlerImpl) ListByWorker(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.advanceService.ListByWorker(r.Context(), farmerID, chi.URLParam(r, "workerId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *advanceHandlerImpl) ListByRange(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.advanceService.ListByRange(r.Context(), farmerID, r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *advanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req advance.UpdateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.advanceService.Update(r.Context(), farmerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *advanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.advanceService.Delete(r.Context(), farmerID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance deleted", nil)
}
