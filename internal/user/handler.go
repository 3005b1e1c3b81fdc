package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gameotion/internal/common"
)

type UserHandlers struct {
	UserSvc UserService
}

func NewUserHandlers(svc UserService) *UserHandlers {
	return &UserHandlers{UserSvc: svc}
}

func (h *UserHandlers) Register(public, protected *mux.Router) {
	public.HandleFunc("/auth/signup", h.Signup).Methods("POST")
	public.HandleFunc("/auth/login", h.Login).Methods("POST")
	public.HandleFunc("/users/{id}", h.GetUser).Methods("GET")

	protected.HandleFunc("/me", h.Me).Methods("GET")
	protected.HandleFunc("/api/user/profile", h.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/api/users/search", h.Search).Methods("GET")
	protected.HandleFunc("/users/nearby", h.Nearby).Methods("GET")
	protected.HandleFunc("/users/{id}/friend-request", h.SendFriendRequest).Methods("POST")
	protected.HandleFunc("/users/{id}/friend-request/accept", h.AcceptFriendRequest).Methods("POST")
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		common.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.UserSvc.Signup(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			common.WriteError(w, http.StatusConflict, "email_taken")
			return
		}
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"token": token, "user": user})
}

func (h *UserHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		common.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.UserSvc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			common.WriteError(w, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

func (h *UserHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserSvc.GetProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			common.WriteError(w, http.StatusNotFound, "not_found")
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.UserSvc.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized: User not found")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		DisplayName string `json:"displayName"`
		GamerTag    string `json:"gamerTag"`
		AvatarURL   string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if body.DisplayName == "" || body.GamerTag == "" {
		common.WriteError(w, http.StatusBadRequest, "Display name and gamer tag are required")
		return
	}

	user, err := h.UserSvc.UpdateProfile(r.Context(), userID, body.DisplayName, body.GamerTag, body.AvatarURL)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandlers) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.UserSvc.SendFriendRequest(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		h.writeFriendError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *UserHandlers) AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.UserSvc.AcceptFriendRequest(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		h.writeFriendError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *UserHandlers) writeFriendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrFriendRequestNotFound):
		common.WriteError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, ErrSelfFriendRequest):
		common.WriteError(w, http.StatusBadRequest, "self_request")
	case errors.Is(err, ErrFriendRequestExists):
		common.WriteError(w, http.StatusConflict, "request_exists")
	default:
		common.WriteError(w, http.StatusInternalServerError, "internal_error")
	}
}

func (h *UserHandlers) Search(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	items, err := h.UserSvc.SearchUsers(r.Context(), r.URL.Query().Get("query"), userID)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "search_failed")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *UserHandlers) Nearby(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	items, err := h.UserSvc.NearbyUsers(r.Context(), userID)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "nearby_failed")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
