package http

import (
	"net/http"

	"github.com/agrilabs/wms-backend-go/internal/domain/notification"
	"github.com/agrilabs/wms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{notificationService: notificationService}
}

func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.notificationService.List(r.Context(), farmerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *notificationHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.notificationService.UnreadCount(r.Context(), farmerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *notificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), farmerID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

func (h *notificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	farmerID, err := farmerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), farmerID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}
