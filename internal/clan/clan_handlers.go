package clan

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gameotion/internal/common"
)

type ClanHandlers struct {
	ClanSvc ClanUsecase
	// Users resolves the inviter's display name for invite payloads.
	Users UserSource
}

func NewClanHandlers(svc *ClanService, users UserSource) *ClanHandlers {
	return &ClanHandlers{ClanSvc: svc, Users: users}
}

func (h *ClanHandlers) Register(protected *mux.Router) {
	protected.HandleFunc("/api/clans/my", h.MyClans).Methods("GET")
	protected.HandleFunc("/api/clans/{id}/join", h.Join).Methods("POST")
	protected.HandleFunc("/api/clans/{id}/leave", h.Leave).Methods("POST")
	protected.HandleFunc("/api/clans/{id}/invites", h.Invite).Methods("POST")
	protected.HandleFunc("/api/invites", h.PendingInvites).Methods("GET")
	protected.HandleFunc("/api/invites/{id}/accept", h.Accept).Methods("POST")
	protected.HandleFunc("/api/invites/{id}/reject", h.Reject).Methods("POST")
}

func (h *ClanHandlers) MyClans(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.ClanSvc.MyClans(r.Context(), userID)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "clans_unavailable")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *ClanHandlers) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	clan, err := h.ClanSvc.JoinClan(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		h.writeClanError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"clan": clan})
}

func (h *ClanHandlers) Leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	clan, err := h.ClanSvc.LeaveClan(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		h.writeClanError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"clan": clan})
}

func (h *ClanHandlers) Invite(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
		common.WriteError(w, http.StatusBadRequest, "user_id_required")
		return
	}

	inviterName := userID
	if u, err := h.Users.GetUserByID(r.Context(), userID); err == nil {
		inviterName = u.Name
	}

	invite, err := h.ClanSvc.InviteToClan(r.Context(), mux.Vars(r)["id"], userID, inviterName, body.UserID)
	if err != nil {
		h.writeClanError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"invite": invite})
}

func (h *ClanHandlers) PendingInvites(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.ClanSvc.PendingInvites(r.Context(), userID)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "invites_unavailable")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *ClanHandlers) Accept(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	clan, err := h.ClanSvc.AcceptInvite(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		h.writeClanError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"clan": clan})
}

func (h *ClanHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.ClanSvc.RejectInvite(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		h.writeClanError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// writeClanError maps the service's error vocabulary onto the status
// codes the original backend used.
func (h *ClanHandlers) writeClanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrClanNotFound), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInviteNotFound):
		common.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotClanMember):
		common.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrClanFull), errors.Is(err, ErrNotMember),
		errors.Is(err, ErrUserAlreadyInClan), errors.Is(err, ErrInviteAlreadySent), errors.Is(err, ErrInviteNotPending):
		common.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		common.WriteError(w, http.StatusInternalServerError, "internal_error")
	}
}
