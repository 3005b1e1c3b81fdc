//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gameotion/internal/chat"
	"gameotion/internal/clan"
	"gameotion/internal/config"
	"gameotion/internal/dbmongo"
	"gameotion/internal/dbmysql"
	"gameotion/internal/feed"
	"gameotion/internal/media"
	"gameotion/internal/notif"
	"gameotion/internal/user"
)

// This is just a declaration — wire generates the real body
func InitApp(cfg *config.Config) (*App, error) {
	wire.Build(
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,

		feed.NewFeedRepository,
		wire.Bind(new(feed.ContentSource), new(*feed.FeedRepository)),
		wire.Bind(new(feed.Comments), new(*feed.FeedRepository)),

		user.NewUserRepository,
		user.NewFriendRepository,
		wire.Bind(new(feed.FriendSource), new(user.FriendRepository)),
		wire.Bind(new(feed.UserSource), new(user.UserRepository)),
		wire.Bind(new(feed.Notifier), new(notif.NotificationRepository)),
		wire.Bind(new(clan.UserSource), new(user.UserRepository)),

		feed.NewFeedService,
		feed.NewFeedHandlers,

		user.NewUserService,
		user.NewUserHandlers,

		chat.NewChatRepository,
		chat.NewChatService,
		chat.NewChatHandlers,

		clan.NewClanRepository,
		clan.NewClanService,
		clan.NewClanHandlers,

		notif.NewNotificationRepository,
		notif.NewNotificationService,
		notif.NewNotificationHandlers,

		media.NewMediaHandlers,

		wire.Struct(new(App), "*"),
	)
	return &App{}, nil // dummy for compilation
}
