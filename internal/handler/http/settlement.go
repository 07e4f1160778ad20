package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettlementHandler interface {
	GetPending(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
	MonthWiseSummary(w http.ResponseWriter, r *http.Request)
	MonthWiseSettle(w http.ResponseWriter, r *http.Request)
	WalletDeposit(w http.ResponseWriter, r *http.Request)
	WalletWithdraw(w http.ResponseWriter, r *http.Request)
	HistoryByWorker(w http.ResponseWriter, r *http.Request)
	HistoryByFarmer(w http.ResponseWriter, r *http.Request)
	Ledger(w http.ResponseWriter, r *http.Request)
	LastSettlement(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(settlementService settlement.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: settlementService}
}

func (h *settlementHandlerImpl) GetPending(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settlementService.GetPending(r.Context(), farmerID, chi.URLParam(r, "workerId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) Settle(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req settlement.SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.Settle(r.Context(), farmerID, chi.URLParam(r, "workerId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Settlement recorded", result)
}

func (h *settlementHandlerImpl) MonthWiseSummary(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	q := r.URL.Query()
	req := settlement.MonthWiseSettleRequest{
		StartDate:        q.Get("startDate"),
		EndDate:          q.Get("endDate"),
		IncludeTillToday: q.Get("includeTillToday") == "true",
	}

	result, err := h.settlementService.MonthWiseSummary(r.Context(), farmerID, chi.URLParam(r, "workerId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) MonthWiseSettle(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req settlement.MonthWiseSettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.MonthWiseSettle(r.Context(), farmerID, chi.URLParam(r, "workerId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Settlement recorded", result)
}

func (h *settlementHandlerImpl) WalletDeposit(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req settlement.WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.WalletDeposit(r.Context(), farmerID, chi.URLParam(r, "workerId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wallet deposit recorded", result)
}

func (h *settlementHandlerImpl) WalletWithdraw(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req settlement.WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.WalletWithdraw(r.Context(), farmerID, chi.URLParam(r, "workerId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wallet withdrawal recorded", result)
}

func (h *settlementHandlerImpl) HistoryByWorker(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settlementService.HistoryByWorker(r.Context(), farmerID, chi.URLParam(r, "workerId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) HistoryByFarmer(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settlementService.HistoryByFarmer(r.Context(), farmerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) Ledger(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settlementService.Ledger(r.Context(), farmerID, chi.URLParam(r, "workerId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) LastSettlement(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settlementService.LastSettlement(r.Context(), farmerID, chi.URLParam(r, "workerId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
