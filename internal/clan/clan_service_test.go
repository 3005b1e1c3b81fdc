package clan

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

// ---- In-memory fakes ----

type fakeClanRepo struct {
	clans   map[string]dbmysql.Clan
	invites map[string]dbmysql.ClanInvite
}

func newFakeClanRepo() *fakeClanRepo {
	return &fakeClanRepo{
		clans:   map[string]dbmysql.Clan{},
		invites: map[string]dbmysql.ClanInvite{},
	}
}

func (r *fakeClanRepo) ListClans(ctx context.Context) ([]dbmysql.Clan, error) {
	var out []dbmysql.Clan
	for _, c := range r.clans {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClanRepo) GetClan(ctx context.Context, id string) (*dbmysql.Clan, error) {
	c, ok := r.clans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cc := c
	return &cc, nil
}

func (r *fakeClanRepo) SaveClan(ctx context.Context, clan *dbmysql.Clan) error {
	r.clans[clan.ClanID] = *clan
	return nil
}

func (r *fakeClanRepo) CreateInvite(ctx context.Context, invite *dbmysql.ClanInvite) error {
	r.invites[invite.InviteID] = *invite
	return nil
}

func (r *fakeClanRepo) GetInvite(ctx context.Context, id string) (*dbmysql.ClanInvite, error) {
	inv, ok := r.invites[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ii := inv
	return &ii, nil
}

func (r *fakeClanRepo) SaveInvite(ctx context.Context, invite *dbmysql.ClanInvite) error {
	r.invites[invite.InviteID] = *invite
	return nil
}

func (r *fakeClanRepo) ListPendingInvitesForUser(ctx context.Context, userID string) ([]dbmysql.ClanInvite, error) {
	var out []dbmysql.ClanInvite
	for _, inv := range r.invites {
		if inv.UserID == userID && inv.Status == "pending" {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeClanRepo) HasPendingInvite(ctx context.Context, clanID, userID string) (bool, error) {
	for _, inv := range r.invites {
		if inv.ClanID == clanID && inv.UserID == userID && inv.Status == "pending" {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserSource struct {
	users map[string]dbmysql.User
}

func (r *fakeUserSource) GetUserByID(ctx context.Context, id string) (*dbmysql.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	uu := u
	return &uu, nil
}

func newTestClanService() (*ClanService, *fakeClanRepo) {
	repo := newFakeClanRepo()
	users := &fakeUserSource{users: map[string]dbmysql.User{
		"u1": {UserID: "u1", Name: "Nova"},
		"u2": {UserID: "u2", Name: "Shadow"},
		"u3": {UserID: "u3", Name: "Arc"},
	}}
	return NewClanService(repo, users), repo
}

// ---- Tests ----

func TestClanService_MyClans(t *testing.T) {
	svc, repo := newTestClanService()
	repo.clans["cl1"] = dbmysql.Clan{ClanID: "cl1", Members: []string{"u1", "u2"}}
	repo.clans["cl2"] = dbmysql.Clan{ClanID: "cl2", Members: []string{"u3"}}

	mine, err := svc.MyClans(context.Background(), "u1")
	if err != nil {
		t.Fatalf("MyClans err: %v", err)
	}
	if len(mine) != 1 || mine[0].ClanID != "cl1" {
		t.Fatalf("mine = %+v", mine)
	}
}

func TestClanService_JoinClan(t *testing.T) {
	svc, repo := newTestClanService()
	repo.clans["cl1"] = dbmysql.Clan{ClanID: "cl1", Members: []string{"u2"}, MembersCount: 1, MembersMax: 2}

	clan, err := svc.JoinClan(context.Background(), "cl1", "u1")
	if err != nil {
		t.Fatalf("join err: %v", err)
	}
	if clan.MembersCount != 2 || !containsStr(clan.Members, "u1") {
		t.Fatalf("clan after join = %+v", clan)
	}

	// now full
	if _, err := svc.JoinClan(context.Background(), "cl1", "u3"); err != ErrClanFull {
		t.Fatalf("err = %v, want ErrClanFull", err)
	}
	// already in
	if _, err := svc.JoinClan(context.Background(), "cl1", "u1"); err != ErrAlreadyMember {
		t.Fatalf("err = %v, want ErrAlreadyMember", err)
	}
	// unknown clan
	if _, err := svc.JoinClan(context.Background(), "nope", "u1"); err != ErrClanNotFound {
		t.Fatalf("err = %v, want ErrClanNotFound", err)
	}
}

func TestClanService_LeaveClan(t *testing.T) {
	svc, repo := newTestClanService()
	repo.clans["cl1"] = dbmysql.Clan{ClanID: "cl1", Members: []string{"u1", "u2"}, MembersCount: 2, MembersMax: 10}

	clan, err := svc.LeaveClan(context.Background(), "cl1", "u1")
	if err != nil {
		t.Fatalf("leave err: %v", err)
	}
	if clan.MembersCount != 1 || containsStr(clan.Members, "u1") {
		t.Fatalf("clan after leave = %+v", clan)
	}

	if _, err := svc.LeaveClan(context.Background(), "cl1", "u1"); err != ErrNotMember {
		t.Fatalf("err = %v, want ErrNotMember", err)
	}
}

func TestClanService_InviteToClan(t *testing.T) {
	svc, repo := newTestClanService()
	repo.clans["cl1"] = dbmysql.Clan{ClanID: "cl1", Name: "Phoenix Rising", Members: []string{"u1"}, MembersCount: 1, MembersMax: 10}

	invite, err := svc.InviteToClan(context.Background(), "cl1", "u1", "Nova", "u2")
	if err != nil {
		t.Fatalf("invite err: %v", err)
	}
	if invite.Status != "pending" || invite.ClanName != "Phoenix Rising" || invite.UserID != "u2" {
		t.Fatalf("invite = %+v", invite)
	}

	// duplicate pending invite
	if _, err := svc.InviteToClan(context.Background(), "cl1", "u1", "Nova", "u2"); err != ErrInviteAlreadySent {
		t.Fatalf("err = %v, want ErrInviteAlreadySent", err)
	}
	// inviter not in the clan
	if _, err := svc.InviteToClan(context.Background(), "cl1", "u3", "Arc", "u2"); err != ErrNotClanMember {
		t.Fatalf("err = %v, want ErrNotClanMember", err)
	}
	// invitee does not exist
	if _, err := svc.InviteToClan(context.Background(), "cl1", "u1", "Nova", "ghost"); err != ErrUserNotFound {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
	// invitee already a member
	if _, err := svc.InviteToClan(context.Background(), "cl1", "u1", "Nova", "u1"); err != ErrUserAlreadyInClan {
		t.Fatalf("err = %v, want ErrUserAlreadyInClan", err)
	}
}

func TestClanService_AcceptInvite(t *testing.T) {
	svc, repo := newTestClanService()
	repo.clans["cl1"] = dbmysql.Clan{ClanID: "cl1", Members: []string{"u1"}, MembersCount: 1, MembersMax: 10}
	repo.invites["inv1"] = dbmysql.ClanInvite{InviteID: "inv1", ClanID: "cl1", UserID: "u2", Status: "pending"}

	clan, err := svc.AcceptInvite(context.Background(), "inv1", "u2")
	if err != nil {
		t.Fatalf("accept err: %v", err)
	}
	if !containsStr(clan.Members, "u2") || clan.MembersCount != 2 {
		t.Fatalf("clan after accept = %+v", clan)
	}
	if repo.invites["inv1"].Status != "accepted" {
		t.Fatalf("invite status = %q", repo.invites["inv1"].Status)
	}

	// resolved invites cannot be accepted again
	if _, err := svc.AcceptInvite(context.Background(), "inv1", "u2"); err != ErrInviteNotPending {
		t.Fatalf("err = %v, want ErrInviteNotPending", err)
	}
}

func TestClanService_AcceptInvite_OwnershipAndExpiry(t *testing.T) {
	svc, repo := newTestClanService()
	repo.invites["inv1"] = dbmysql.ClanInvite{InviteID: "inv1", ClanID: "gone", UserID: "u2", Status: "pending"}

	// someone else's invite looks like it does not exist
	if _, err := svc.AcceptInvite(context.Background(), "inv1", "u3"); err != ErrInviteNotFound {
		t.Fatalf("err = %v, want ErrInviteNotFound", err)
	}

	// clan deleted under the invite: invite expires
	if _, err := svc.AcceptInvite(context.Background(), "inv1", "u2"); err != ErrClanNotFound {
		t.Fatalf("err = %v, want ErrClanNotFound", err)
	}
	if repo.invites["inv1"].Status != "expired" {
		t.Fatalf("invite status = %q, want expired", repo.invites["inv1"].Status)
	}
}

func TestClanService_AcceptInvite_FullClan(t *testing.T) {
	svc, repo := newTestClanService()
	repo.clans["cl1"] = dbmysql.Clan{ClanID: "cl1", Members: []string{"u1"}, MembersCount: 1, MembersMax: 1}
	repo.invites["inv1"] = dbmysql.ClanInvite{InviteID: "inv1", ClanID: "cl1", UserID: "u2", Status: "pending"}

	if _, err := svc.AcceptInvite(context.Background(), "inv1", "u2"); err != ErrClanFull {
		t.Fatalf("err = %v, want ErrClanFull", err)
	}
	// the invite stays pending so the user can retry after a slot opens
	if repo.invites["inv1"].Status != "pending" {
		t.Fatalf("invite status = %q, want pending", repo.invites["inv1"].Status)
	}
}

func TestClanService_RejectInvite(t *testing.T) {
	svc, repo := newTestClanService()
	repo.invites["inv1"] = dbmysql.ClanInvite{InviteID: "inv1", ClanID: "cl1", UserID: "u2", Status: "pending"}

	if err := svc.RejectInvite(context.Background(), "inv1", "u2"); err != nil {
		t.Fatalf("reject err: %v", err)
	}
	if repo.invites["inv1"].Status != "rejected" {
		t.Fatalf("invite status = %q", repo.invites["inv1"].Status)
	}
}

func TestClanService_PendingInvites(t *testing.T) {
	svc, repo := newTestClanService()
	repo.invites["inv1"] = dbmysql.ClanInvite{InviteID: "inv1", UserID: "u2", Status: "pending"}
	repo.invites["inv2"] = dbmysql.ClanInvite{InviteID: "inv2", UserID: "u2", Status: "rejected"}
	repo.invites["inv3"] = dbmysql.ClanInvite{InviteID: "inv3", UserID: "u3", Status: "pending"}

	invites, err := svc.PendingInvites(context.Background(), "u2")
	if err != nil {
		t.Fatalf("pending err: %v", err)
	}
	if len(invites) != 1 || invites[0].InviteID != "inv1" {
		t.Fatalf("invites = %+v", invites)
	}
}

func containsStr(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
