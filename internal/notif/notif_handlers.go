package notif

import (
	"net/http"

	"github.com/gorilla/mux"

	"gameotion/internal/common"
)

type NotificationHandlers struct {
	NotifSvc NotificationUsecase
}

func NewNotificationHandlers(svc *NotificationService) *NotificationHandlers {
	return &NotificationHandlers{NotifSvc: svc}
}

func (h *NotificationHandlers) Register(protected *mux.Router) {
	protected.HandleFunc("/api/notifications", h.List).Methods("GET")
}

func (h *NotificationHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.NotifSvc.ListForUser(r.Context(), userID)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "notifications_unavailable")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
