package di

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"gameotion/internal/chat"
	"gameotion/internal/clan"
	"gameotion/internal/common"
	"gameotion/internal/config"
	"gameotion/internal/dbmongo"
	"gameotion/internal/feed"
	"gameotion/internal/media"
	"gameotion/internal/notif"
	"gameotion/internal/user"
)

// App holds every wired handler plus the shared infrastructure the
// server entrypoint needs for migrations and shutdown.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Mongo  *dbmongo.MongoClient

	Feed   *feed.FeedHandlers
	Users  *user.UserHandlers
	Chat   *chat.ChatHandlers
	Clans  *clan.ClanHandlers
	Notifs *notif.NotificationHandlers
	Media  *media.MediaHandlers
}

// Router mounts every handler. Routes live on one of two subrouters:
// public, or protected behind the JWT middleware.
func (a *App) Router() *mux.Router {
	root := mux.NewRouter()
	root.Use(common.LoggingMiddleware())

	root.HandleFunc("/health", a.health).Methods("GET")

	public := root.NewRoute().Subrouter()
	protected := root.NewRoute().Subrouter()
	protected.Use(common.AuthMiddleware())

	a.Users.Register(public, protected)
	a.Feed.Register(public, protected)
	a.Media.Register(public, protected)
	a.Chat.Register(protected)
	a.Clans.Register(protected)
	a.Notifs.Register(protected)

	return root
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
