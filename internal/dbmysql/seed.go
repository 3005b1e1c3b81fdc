package dbmysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"gameotion/internal/common"
)

// Seed fills an empty database with demo content so the mobile client
// has something realistic to scroll on first run. Stable ids are used
// on purpose: the dev client hardcodes a few of them.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := common.HashPassword("password")
	if err != nil {
		return err
	}

	users := []User{
		{
			UserID: "u1", Email: "dev@gameotion.com", PasswordHash: hash,
			Name: "NovaStriker", DisplayName: "NovaStriker", GamerTag: "NovaStriker",
			AvatarURL: "https://i.pravatar.cc/100?img=65", City: "Delhi",
			GameTags: []string{"Valorant", "Immortal I"}, Bio: "Immortal Valorant player | Content creator | Looking for serious squad",
			Followers: 2847, Following: 156, Level: 42, Location: "Delhi, India",
			IsVerified: true, IsOnline: true, Onboarded: true,
		},
		{
			UserID: "u2", Email: "shadowfox@gameotion.com", PasswordHash: hash,
			Name: "ShadowFox", GamerTag: "ShadowFox",
			AvatarURL: "https://i.pravatar.cc/100?img=12", City: "Mumbai", Onboarded: true,
		},
		{
			UserID: "u3", Email: "arcmage@gameotion.com", PasswordHash: hash,
			Name: "ArcMage", GamerTag: "ArcMage",
			AvatarURL: "https://i.pravatar.cc/100?img=30", City: "Delhi", Onboarded: true,
		},
		// Suggested players
		{UserID: "su1", Email: "progamer123@gameotion.com", PasswordHash: hash, Name: "ProGamer123", GamerTag: "ProGamer123", AvatarURL: "https://i.pravatar.cc/100?img=11", City: "Mumbai"},
		{UserID: "su2", Email: "skillshot@gameotion.com", PasswordHash: hash, Name: "SkillShot", GamerTag: "SkillShot", AvatarURL: "https://i.pravatar.cc/100?img=22", City: "Delhi"},
		{UserID: "su3", Email: "ninjaplayer@gameotion.com", PasswordHash: hash, Name: "NinjaPlayer", GamerTag: "NinjaPlayer", AvatarURL: "https://i.pravatar.cc/100?img=33", City: "Bangalore"},
		{UserID: "su4", Email: "gamemaster@gameotion.com", PasswordHash: hash, Name: "GameMaster", GamerTag: "GameMaster", AvatarURL: "https://i.pravatar.cc/100?img=44", City: "Chennai"},
		{UserID: "su5", Email: "shadowfoxx@gameotion.com", PasswordHash: hash, Name: "ShadowFoxX", GamerTag: "ShadowFoxX", AvatarURL: "https://i.pravatar.cc/100?img=15", City: "Pune"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// u1's friends, for the friends-scoped feed
	acceptedAt := time.Now().Add(-30 * 24 * time.Hour)
	friends := []Friend{
		{UserID: "u1", FriendUserID: "u2", Status: "accepted", AcceptedAt: &acceptedAt},
		{UserID: "u3", FriendUserID: "u1", Status: "accepted", AcceptedAt: &acceptedAt},
		// waiting for u1 to accept
		{UserID: "su1", FriendUserID: "u1", Status: "pending"},
	}
	if err := db.Create(&friends).Error; err != nil {
		return err
	}

	now := time.Now()

	sampleTexts := []string{
		"Just hit Immortal! The grind was real but totally worth it 🔥",
		"That flick was insane. Clipped it for later!",
		"Tournament practice tonight — need a fifth.",
		"New crosshair settings feel so good.",
		"Streaming in 10 – drop by and say hi!",
		"Who is up for scrims this weekend?",
		"Ranked grind continues. One more win for promo!",
		"Finally beat the boss. GG!",
	}
	sampleImages := []string{
		"https://images.unsplash.com/photo-1511512578047-dfb367046420?q=80&w=1470&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1542751371-adc38448a05e?q=80&w=1470&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1612197527762-8cfb55b6183a?q=80&w=1470&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=1470&auto=format&fit=crop",
	}
	sampleGames := []string{"valorant", "apex", "elden_ring", "cs2", "lol"}
	sampleCities := []string{"Delhi", "Mumbai", "Bangalore"}

	var posts []Post
	for i := 0; i < 24; i++ {
		author := users[i%len(users)]
		posts = append(posts, Post{
			PostID:        fmt.Sprintf("p%d", 100+i),
			Kind:          "post",
			AuthorID:      author.UserID,
			ContentText:   sampleTexts[i%len(sampleTexts)],
			Media:         []Media{{URL: sampleImages[i%len(sampleImages)], Type: "image"}},
			GameTags:      []string{sampleGames[i%len(sampleGames)]},
			Location:      Location{City: sampleCities[i%len(sampleCities)]},
			LikesCount:    20 + (i % 90),
			CommentsCount: 2 + (i % 25),
			ViewsCount:    200 + i*15,
			Visibility:    "public",
			CreatedAt:     now.Add(-time.Duration(20+i*7) * time.Minute),
		})
	}
	if err := db.Create(&posts).Error; err != nil {
		return err
	}

	events := []Event{
		{
			EventID: "e1", Kind: "event", Title: "Valorant Community Cup — 32 teams",
			GameTag: "valorant", City: "Delhi", CTA: "Register", EngagementHint: 87,
			StartsAt: now.Add(6 * time.Hour), CreatedAt: now.Add(-50 * time.Minute),
		},
		{
			EventID: "e2", Kind: "event", Title: "BGMI City Qualifiers — 64 teams",
			GameTag: "bgmi", City: "Mumbai", CTA: "Register", EngagementHint: 42,
			StartsAt: now.Add(24 * time.Hour), CreatedAt: now.Add(-120 * time.Minute),
		},
		{
			EventID: "e3", Kind: "event", Title: "CS2 LAN Night",
			GameTag: "cs2", City: "Bangalore", CTA: "Join", EngagementHint: 33,
			StartsAt: now.Add(48 * time.Hour), CreatedAt: now.Add(-200 * time.Minute),
		},
	}
	if err := db.Create(&events).Error; err != nil {
		return err
	}

	clans := []Clan{
		{
			ClanID: "cl1", Name: "Neon Warriors", Tag: "NEON", Level: 15, Region: "Asia",
			GameTags:    []string{"Valorant", "Diamond"},
			Description: "Elite Valorant clan looking for Diamond+ players. Active daily, tournaments every weekend.",
			MembersCount: 127, MembersMax: 150, Founded: "2023",
			Requirements: []string{"Diamond+ rank", "18+ age", "active daily"},
			Recruiting:   true, Members: []string{},
		},
		{
			ClanID: "cl2", Name: "Shadow Legends", Tag: "SHDW", Level: 12, Region: "India",
			GameTags:    []string{"BGMI", "Platinum"},
			Description: "Multi-game competitive clan. BGMI, COD Mobile, and more. Family-friendly community.",
			MembersCount: 89, MembersMax: 100, Founded: "2024",
			Requirements: []string{"Platinum+ rank", "good attitude"},
			Recruiting:   true, Members: []string{},
		},
		{
			ClanID: "cl3", Name: "Cyber Phoenixes", Tag: "CYBER", Level: 25, Region: "Global",
			GameTags:    []string{"Multiple", "Immortal"},
			Description: "High-level multi-game clan with weekly events and scrims.",
			MembersCount: 210, MembersMax: 250, Founded: "2021",
			Requirements: []string{"Immortal+ rank", "scrim-ready"},
			Recruiting:   false, Members: []string{},
		},
	}
	if err := db.Create(&clans).Error; err != nil {
		return err
	}

	sampleComments := []string{
		"GG! That was insane 🔥",
		"Congrats on the win! 🏆",
		"Teach me your crosshair settings please!",
		"That clutch had me on the edge!",
		"Let's squad up later?",
		"Clean headshots. Respect.",
	}
	var comments []Comment
	for i := 0; i < 15 && i < len(posts); i++ {
		comments = append(comments, Comment{
			CommentID: fmt.Sprintf("c%d", 100+i),
			PostID:    posts[i].PostID,
			UserID:    users[(i+1)%len(users)].UserID,
			Text:      sampleComments[i%len(sampleComments)],
			CreatedAt: posts[i].CreatedAt.Add(5 * time.Minute),
		})
	}
	if err := db.Create(&comments).Error; err != nil {
		return err
	}

	conversations := []Conversation{
		{
			ConversationID: "cv1", Title: "Valorant Squad", IsGroup: true,
			GameTag: "valorant", ExtraTag: "ranked",
			Snippet: "scrims at 9 tonight, be there", Unread: 2,
			MembersCount: 5, Members: []string{"u1", "u2", "u3", "su1", "su2"},
			LastMessageAt: now.Add(-10 * time.Minute),
		},
		{
			ConversationID: "cv2", Title: "ShadowFox", IsGroup: false,
			Snippet: "gg, rematch tomorrow?", Unread: 0,
			MembersCount: 2, Members: []string{"u1", "u2"},
			LastMessageAt: now.Add(-2 * time.Hour),
		},
		{
			ConversationID: "cv3", Title: "Delhi LAN Crew", IsGroup: true,
			ExtraTag: "local",
			Snippet: "venue confirmed for Saturday", Unread: 5,
			MembersCount: 12, Members: []string{},
			LastMessageAt: now.Add(-26 * time.Hour),
		},
	}
	if err := db.Create(&conversations).Error; err != nil {
		return err
	}

	messages := []Message{
		{MessageID: "m1", ConversationID: "cv1", SenderID: "u2", Text: "anyone up for comp?", CreatedAt: now.Add(-30 * time.Minute)},
		{MessageID: "m2", ConversationID: "cv1", SenderID: "u3", Text: "give me 15", CreatedAt: now.Add(-20 * time.Minute)},
		{MessageID: "m3", ConversationID: "cv1", SenderID: "u1", Text: "scrims at 9 tonight, be there", CreatedAt: now.Add(-10 * time.Minute)},
		{MessageID: "m4", ConversationID: "cv2", SenderID: "u2", Text: "gg, rematch tomorrow?", CreatedAt: now.Add(-2 * time.Hour)},
	}
	if err := db.Create(&messages).Error; err != nil {
		return err
	}

	firstPostID := posts[0].PostID
	notifications := []Notification{
		{NotificationID: "n1", UserID: "u1", Type: "follow", ActorID: "u2", CreatedAt: now.Add(-5 * time.Minute)},
		{NotificationID: "n2", UserID: "u1", Type: "like", ActorID: "u3", PostID: &firstPostID, PostText: posts[0].ContentText, CreatedAt: now.Add(-time.Hour)},
		{NotificationID: "n3", UserID: "u1", Type: "comment", ActorID: "su1", PostID: &firstPostID, PostText: posts[0].ContentText, CommentText: "That looks amazing! What keyboard is that?", CreatedAt: now.Add(-3 * time.Hour)},
		{NotificationID: "n4", UserID: "u1", Type: "follow", ActorID: "su2", CreatedAt: now.Add(-24 * time.Hour)},
	}
	if err := db.Create(&notifications).Error; err != nil {
		return err
	}

	log.Println("✅ Demo data seeded")
	return nil
}
