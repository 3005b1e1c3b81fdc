package clan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

// Error vocabulary mirrors the codes the mobile client matches on.
var (
	ErrClanNotFound      = errors.New("clan_not_found")
	ErrAlreadyMember     = errors.New("already_a_member")
	ErrClanFull          = errors.New("clan_is_full")
	ErrNotMember         = errors.New("not_a_member")
	ErrNotClanMember     = errors.New("not_clan_member")
	ErrUserNotFound      = errors.New("user_not_found")
	ErrUserAlreadyInClan = errors.New("user_already_in_clan")
	ErrInviteAlreadySent = errors.New("invite_already_sent")
	ErrInviteNotFound    = errors.New("invite_not_found")
	ErrInviteNotPending  = errors.New("invite_not_pending")
)

// UserSource verifies invitees exist before an invite goes out.
type UserSource interface {
	GetUserByID(ctx context.Context, id string) (*dbmysql.User, error)
}

type ClanUsecase interface {
	MyClans(ctx context.Context, userID string) ([]dbmysql.Clan, error)
	JoinClan(ctx context.Context, clanID, userID string) (*dbmysql.Clan, error)
	LeaveClan(ctx context.Context, clanID, userID string) (*dbmysql.Clan, error)
	InviteToClan(ctx context.Context, clanID, inviterID, inviterName, inviteeID string) (*dbmysql.ClanInvite, error)
	PendingInvites(ctx context.Context, userID string) ([]dbmysql.ClanInvite, error)
	AcceptInvite(ctx context.Context, inviteID, userID string) (*dbmysql.Clan, error)
	RejectInvite(ctx context.Context, inviteID, userID string) error
}

type ClanService struct {
	repo     ClanRepository
	userRepo UserSource
}

func NewClanService(repo ClanRepository, users UserSource) *ClanService {
	return &ClanService{repo: repo, userRepo: users}
}

func (s *ClanService) MyClans(ctx context.Context, userID string) ([]dbmysql.Clan, error) {
	clans, err := s.repo.ListClans(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]dbmysql.Clan, 0)
	for _, c := range clans {
		if contains(c.Members, userID) {
			mine = append(mine, c)
		}
	}
	return mine, nil
}

func (s *ClanService) JoinClan(ctx context.Context, clanID, userID string) (*dbmysql.Clan, error) {
	clan, err := s.getClan(ctx, clanID)
	if err != nil {
		return nil, err
	}

	if contains(clan.Members, userID) {
		return nil, ErrAlreadyMember
	}
	if clan.MembersCount >= clan.MembersMax {
		return nil, ErrClanFull
	}

	clan.Members = append(clan.Members, userID)
	clan.MembersCount++
	if err := s.repo.SaveClan(ctx, clan); err != nil {
		return nil, err
	}
	return clan, nil
}

func (s *ClanService) LeaveClan(ctx context.Context, clanID, userID string) (*dbmysql.Clan, error) {
	clan, err := s.getClan(ctx, clanID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(clan.Members, userID)
	if idx < 0 {
		return nil, ErrNotMember
	}

	clan.Members = append(clan.Members[:idx], clan.Members[idx+1:]...)
	clan.MembersCount--
	if err := s.repo.SaveClan(ctx, clan); err != nil {
		return nil, err
	}
	return clan, nil
}

// InviteToClan lets any member invite; role checks are a real-app
// concern this backend does not model.
func (s *ClanService) InviteToClan(ctx context.Context, clanID, inviterID, inviterName, inviteeID string) (*dbmysql.ClanInvite, error) {
	clan, err := s.getClan(ctx, clanID)
	if err != nil {
		return nil, err
	}

	if !contains(clan.Members, inviterID) {
		return nil, ErrNotClanMember
	}

	if _, err := s.userRepo.GetUserByID(ctx, inviteeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if contains(clan.Members, inviteeID) {
		return nil, ErrUserAlreadyInClan
	}

	pending, err := s.repo.HasPendingInvite(ctx, clanID, inviteeID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrInviteAlreadySent
	}

	invite := &dbmysql.ClanInvite{
		InviteID:    uuid.NewString(),
		ClanID:      clan.ClanID,
		ClanName:    clan.Name,
		UserID:      inviteeID,
		InviterID:   inviterID,
		InviterName: inviterName,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateInvite(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

func (s *ClanService) PendingInvites(ctx context.Context, userID string) ([]dbmysql.ClanInvite, error) {
	return s.repo.ListPendingInvitesForUser(ctx, userID)
}

func (s *ClanService) AcceptInvite(ctx context.Context, inviteID, userID string) (*dbmysql.Clan, error) {
	invite, err := s.getInviteFor(ctx, inviteID, userID)
	if err != nil {
		return nil, err
	}

	clan, err := s.repo.GetClan(ctx, invite.ClanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// clan was deleted out from under the invite
			invite.Status = "expired"
			_ = s.repo.SaveInvite(ctx, invite)
			return nil, ErrClanNotFound
		}
		return nil, err
	}

	if clan.MembersCount >= clan.MembersMax {
		return nil, ErrClanFull
	}
	if contains(clan.Members, userID) {
		// already a member, just resolve the invite
		invite.Status = "accepted"
		_ = s.repo.SaveInvite(ctx, invite)
		return nil, ErrAlreadyMember
	}

	invite.Status = "accepted"
	if err := s.repo.SaveInvite(ctx, invite); err != nil {
		return nil, err
	}

	clan.Members = append(clan.Members, userID)
	clan.MembersCount++
	if err := s.repo.SaveClan(ctx, clan); err != nil {
		return nil, err
	}
	return clan, nil
}

func (s *ClanService) RejectInvite(ctx context.Context, inviteID, userID string) error {
	invite, err := s.getInviteFor(ctx, inviteID, userID)
	if err != nil {
		return err
	}

	invite.Status = "rejected"
	return s.repo.SaveInvite(ctx, invite)
}

func (s *ClanService) getClan(ctx context.Context, id string) (*dbmysql.Clan, error) {
	clan, err := s.repo.GetClan(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClanNotFound
		}
		return nil, err
	}
	return clan, nil
}

// getInviteFor loads an invite and checks both ownership and that it is
// still pending.
func (s *ClanService) getInviteFor(ctx context.Context, inviteID, userID string) (*dbmysql.ClanInvite, error) {
	invite, err := s.repo.GetInvite(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	if invite.UserID != userID {
		return nil, ErrInviteNotFound
	}
	if invite.Status != "pending" {
		return nil, ErrInviteNotPending
	}
	return invite, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
