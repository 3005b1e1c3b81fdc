package feed

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"gameotion/internal/common"
	"gameotion/internal/dbmysql"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type FeedHandlers struct {
	FeedSvc FeedUsecase
}

func NewFeedHandlers(svc *FeedService) *FeedHandlers {
	return &FeedHandlers{FeedSvc: svc}
}

// Register mounts the feed routes. The feed itself and the post list
// stay public; everything that writes requires auth.
func (h *FeedHandlers) Register(public, protected *mux.Router) {
	public.HandleFunc("/feed", h.GetFeed).Methods("GET")
	public.HandleFunc("/posts", h.ListPosts).Methods("GET")
	public.HandleFunc("/users/{id}/posts", h.ListUserPosts).Methods("GET")

	protected.HandleFunc("/posts", h.CreatePost).Methods("POST")
	protected.HandleFunc("/posts/{id}/like", h.LikePost).Methods("POST")
	protected.HandleFunc("/posts/{id}/bookmark", h.BookmarkPost).Methods("POST")
	protected.HandleFunc("/posts/{id}/share", h.SharePost).Methods("POST")
	protected.HandleFunc("/posts/{id}/comments", h.AddComment).Methods("POST")
	protected.HandleFunc("/posts/{id}/comments", h.ListComments).Methods("GET")
}

// GetFeed serves the ranked feed:
//
//	GET /feed?game=valorant&city=Delhi&page=1&limit=10&friends=true
//
// Absent or unparseable page/limit fall back to 1/10. friends is only
// honored for the literal string "true".
func (h *FeedHandlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := FeedQuery{
		Game:        query.Get("game"),
		City:        query.Get("city"),
		FriendsOnly: query.Get("friends") == "true",
		Page:        intQueryParam(query.Get("page"), defaultPage),
		Limit:       intQueryParam(query.Get("limit"), defaultLimit),
	}

	// The feed is public, but a logged-in caller gets the friends
	// boost scoped to their own friend list.
	q.RequesterID = optionalUserID(r)

	result, err := h.FeedSvc.GetFeed(r.Context(), q)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "feed_unavailable")
		return
	}

	common.WriteJSON(w, http.StatusOK, result)
}

func (h *FeedHandlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.FeedSvc.ListPosts(r.Context())
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "posts_unavailable")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

func (h *FeedHandlers) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	query := r.URL.Query()
	page := intQueryParam(query.Get("page"), defaultPage)
	limit := intQueryParam(query.Get("limit"), defaultLimit)

	items, nextPage, err := h.FeedSvc.ListUserPosts(r.Context(), userID, page, limit)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "posts_unavailable")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":    items,
		"nextPage": nextPage,
	})
}

func (h *FeedHandlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		ContentText string         `json:"contentText"`
		GameTags    []string       `json:"gameTags"`
		Media       []dbmysql.Media `json:"media"`
		City        string         `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	post, err := h.FeedSvc.CreatePost(r.Context(), userID, CreatePostInput{
		ContentText: body.ContentText,
		GameTags:    body.GameTags,
		Media:       body.Media,
		City:        body.City,
	})
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"post": post})
}

func (h *FeedHandlers) LikePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	var body struct {
		Action string `json:"action"`
	}
	// an empty body means "like"
	_ = json.NewDecoder(r.Body).Decode(&body)

	count, err := h.FeedSvc.LikePost(r.Context(), mux.Vars(r)["id"], userID, body.Action == "unlike")
	if err != nil {
		h.writePostError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int{"likesCount": count})
}

func (h *FeedHandlers) BookmarkPost(w http.ResponseWriter, r *http.Request) {
	if err := h.FeedSvc.BookmarkPost(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writePostError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *FeedHandlers) SharePost(w http.ResponseWriter, r *http.Request) {
	count, err := h.FeedSvc.SharePost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writePostError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int{"viewsCount": count})
}

func (h *FeedHandlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		common.WriteError(w, http.StatusBadRequest, "text_required")
		return
	}

	comment, err := h.FeedSvc.AddComment(r.Context(), mux.Vars(r)["id"], userID, body.Text)
	if err != nil {
		h.writePostError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"comment": comment})
}

func (h *FeedHandlers) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.FeedSvc.ListComments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "comments_unavailable")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": comments})
}

func (h *FeedHandlers) writePostError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrPostNotFound) {
		common.WriteError(w, http.StatusNotFound, "not_found")
		return
	}
	common.WriteError(w, http.StatusInternalServerError, "internal_error")
}

// intQueryParam mirrors the old backend's forgiving query parsing:
// anything that is not a positive integer becomes the default.
func intQueryParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// optionalUserID pulls an identity from the auth middleware when the
// route was mounted protected, or from a Bearer token the caller sent
// voluntarily on a public route.
func optionalUserID(r *http.Request) string {
	if id, ok := common.UserIDFromContext(r.Context()); ok {
		return id
	}

	header := r.Header.Get("Authorization")
	parts := strings.Fields(header)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		if claims, err := common.ValidToken(parts[1]); err == nil {
			return claims.UserID
		}
	}
	return ""
}
