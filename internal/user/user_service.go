package user

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gameotion/internal/common"
	"gameotion/internal/dbmysql"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailTaken            = errors.New("email already registered")
	ErrSelfFriendRequest     = errors.New("cannot send a friend request to yourself")
	ErrFriendRequestExists   = errors.New("already friends or request pending")
	ErrFriendRequestNotFound = errors.New("friend request not found")
)

// NearbyUser is the discovery card shown on the "players near you"
// screen. Distance is simulated; there is no real geo lookup.
type NearbyUser struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Avatar   string            `json:"avatar"`
	Distance string            `json:"distance"`
	Location string            `json:"location"`
	Roles    string            `json:"roles"`
	Tags     []map[string]string `json:"tags"`
}

type UserService interface {
	Signup(ctx context.Context, email, password string) (*dbmysql.User, string, error)
	Login(ctx context.Context, email, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID string) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID, displayName, gamerTag, avatarURL string) (*dbmysql.User, error)
	SearchUsers(ctx context.Context, query, requesterID string) ([]dbmysql.User, error)
	NearbyUsers(ctx context.Context, requesterID string) ([]NearbyUser, error)
	SendFriendRequest(ctx context.Context, requesterID, targetID string) error
	AcceptFriendRequest(ctx context.Context, userID, requesterID string) error
}

type userService struct {
	userRepo   UserRepository
	friendRepo FriendRepository
}

func NewUserService(userRepo UserRepository, friendRepo FriendRepository) UserService {
	return &userService{userRepo: userRepo, friendRepo: friendRepo}
}

func (s *userService) Signup(ctx context.Context, email, password string) (*dbmysql.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	// New accounts get a placeholder identity until onboarding sets a
	// display name and gamer tag.
	name := strings.SplitN(email, "@", 2)[0]
	user := &dbmysql.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		AvatarURL:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", email),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.GamerTag)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*dbmysql.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.New("email and password required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := common.GenerateToken(user.UserID, user.GamerTag)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, displayName, gamerTag, avatarURL string) (*dbmysql.User, error) {
	if displayName == "" || gamerTag == "" {
		return nil, errors.New("display name and gamer tag are required")
	}
	if err := common.ValidateGamerTag(gamerTag); err != nil {
		return nil, err
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = displayName
	user.DisplayName = displayName
	user.GamerTag = gamerTag
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	user.Onboarded = true

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SearchUsers(ctx context.Context, query, requesterID string) ([]dbmysql.User, error) {
	if strings.TrimSpace(query) == "" {
		return []dbmysql.User{}, nil
	}
	return s.userRepo.SearchUsers(ctx, query, requesterID)
}

func (s *userService) SendFriendRequest(ctx context.Context, requesterID, targetID string) error {
	if requesterID == targetID {
		return ErrSelfFriendRequest
	}
	if _, err := s.GetProfile(ctx, targetID); err != nil {
		return err
	}

	friends, err := s.friendRepo.CheckFriendshipExists(ctx, requesterID, targetID)
	if err != nil {
		return err
	}
	if friends {
		return ErrFriendRequestExists
	}

	// a pending request in either direction also counts as a duplicate
	for _, pair := range [][2]string{{requesterID, targetID}, {targetID, requesterID}} {
		_, err := s.friendRepo.GetFriendRequest(ctx, pair[0], pair[1])
		if err == nil {
			return ErrFriendRequestExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return s.friendRepo.CreateFriendRequest(ctx, &dbmysql.Friend{
		UserID:       requesterID,
		FriendUserID: targetID,
		Status:       "pending",
	})
}

func (s *userService) AcceptFriendRequest(ctx context.Context, userID, requesterID string) error {
	req, err := s.friendRepo.GetFriendRequest(ctx, requesterID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFriendRequestNotFound
		}
		return err
	}
	if req.Status != "pending" {
		return ErrFriendRequestExists
	}
	return s.friendRepo.AcceptFriendRequest(ctx, requesterID, userID)
}

func (s *userService) NearbyUsers(ctx context.Context, requesterID string) ([]NearbyUser, error) {
	users, err := s.userRepo.ListOtherUsers(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyUser, 0, len(users))
	for _, u := range users {
		location := u.Location
		if location == "" {
			location = u.City
		}
		nearby = append(nearby, NearbyUser{
			ID:       u.UserID,
			Name:     u.Name,
			Avatar:   u.AvatarURL,
			Distance: simulatedDistance(u.UserID),
			Location: location,
			Roles:    "Casual Games",
			Tags:     []map[string]string{{"label": "Valorant"}, {"label": "Diamond II"}},
		})
	}
	return nearby, nil
}

// simulatedDistance hashes the user id into a stable 1.0–15.9 km range,
// so the same card always shows the same distance.
func simulatedDistance(userID string) string {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return fmt.Sprintf("%.1f km", 1.0+float64(h.Sum32()%150)/10.0)
}
