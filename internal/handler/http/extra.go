package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExtraHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByWorker(w http.ResponseWriter, r *http.Request)
	ListByRange(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type extraHandlerImpl struct {
	extraService extra.ExtraService
}

func NewExtraHandler(extraService extra.ExtraService) ExtraHandler {
	return &extraHandlerImpl{extraService: extraService}
}

func (h *extraHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req extra.CreateExtraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.extraService.Create(r.Context(), farmerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Extra recorded", result)
}

func (h *extraHandlerImpl) ListByWorker(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.extraService.ListByWorker(r.Context(), farmerID, chi.URLParam(r, "workerId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *extraHandlerImpl) ListByRange(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.extraService.ListByRange(r.Context(), farmerID, r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *extraHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req extra.UpdateExtraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.extraService.Update(r.Context(), farmerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *extraHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.extraService.Delete(r.Context(), farmerID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Extra deleted", nil)
}
