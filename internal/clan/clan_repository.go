package clan

import (
	"context"

	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

type ClanRepository interface {
	ListClans(ctx context.Context) ([]dbmysql.Clan, error)
	GetClan(ctx context.Context, id string) (*dbmysql.Clan, error)
	SaveClan(ctx context.Context, clan *dbmysql.Clan) error
	CreateInvite(ctx context.Context, invite *dbmysql.ClanInvite) error
	GetInvite(ctx context.Context, id string) (*dbmysql.ClanInvite, error)
	SaveInvite(ctx context.Context, invite *dbmysql.ClanInvite) error
	ListPendingInvitesForUser(ctx context.Context, userID string) ([]dbmysql.ClanInvite, error)
	HasPendingInvite(ctx context.Context, clanID, userID string) (bool, error)
}

type clanRepository struct {
	db *gorm.DB
}

func NewClanRepository(db *gorm.DB) ClanRepository {
	return &clanRepository{db: db}
}

func (r *clanRepository) ListClans(ctx context.Context) ([]dbmysql.Clan, error) {
	var clans []dbmysql.Clan
	err := r.db.WithContext(ctx).Find(&clans).Error
	return clans, err
}

func (r *clanRepository) GetClan(ctx context.Context, id string) (*dbmysql.Clan, error) {
	var clan dbmysql.Clan
	err := r.db.WithContext(ctx).First(&clan, "clan_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &clan, nil
}

func (r *clanRepository) SaveClan(ctx context.Context, clan *dbmysql.Clan) error {
	return r.db.WithContext(ctx).Save(clan).Error
}

func (r *clanRepository) CreateInvite(ctx context.Context, invite *dbmysql.ClanInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *clanRepository) GetInvite(ctx context.Context, id string) (*dbmysql.ClanInvite, error) {
	var invite dbmysql.ClanInvite
	err := r.db.WithContext(ctx).First(&invite, "invite_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *clanRepository) SaveInvite(ctx context.Context, invite *dbmysql.ClanInvite) error {
	return r.db.WithContext(ctx).Save(invite).Error
}

func (r *clanRepository) ListPendingInvitesForUser(ctx context.Context, userID string) ([]dbmysql.ClanInvite, error) {
	var invites []dbmysql.ClanInvite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "pending").
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

func (r *clanRepository) HasPendingInvite(ctx context.Context, clanID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.ClanInvite{}).
		Where("clan_id = ? AND user_id = ? AND status = ?", clanID, userID, "pending").
		Count(&count).Error
	return count > 0, err
}
