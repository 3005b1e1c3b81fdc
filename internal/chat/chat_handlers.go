package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gameotion/internal/common"
)

type ChatHandlers struct {
	ChatSvc ChatUsecase
}

func NewChatHandlers(svc *ChatService) *ChatHandlers {
	return &ChatHandlers{ChatSvc: svc}
}

func (h *ChatHandlers) Register(protected *mux.Router) {
	protected.HandleFunc("/conversations", h.ListConversations).Methods("GET")
	protected.HandleFunc("/conversations/{id}/messages", h.ListMessages).Methods("GET")
	protected.HandleFunc("/conversations/{id}/messages", h.SendMessage).Methods("POST")
}

func (h *ChatHandlers) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.ChatSvc.ListConversations(r.Context(), userID)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "conversations_unavailable")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *ChatHandlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	items, err := h.ChatSvc.ListMessages(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, ErrConversationNotFound) {
			common.WriteError(w, http.StatusNotFound, "not_found")
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "messages_unavailable")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *ChatHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, http.StatusBadRequest, "text_required")
		return
	}

	msg, err := h.ChatSvc.SendMessage(r.Context(), mux.Vars(r)["id"], userID, body.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			common.WriteError(w, http.StatusBadRequest, "text_required")
		case errors.Is(err, ErrConversationNotFound):
			common.WriteError(w, http.StatusNotFound, "not_found")
		default:
			common.WriteError(w, http.StatusInternalServerError, "send_failed")
		}
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"message": msg})
}
