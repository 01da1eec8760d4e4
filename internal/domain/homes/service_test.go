package homes

import (
	"context"
	"fmt"
	"testing"

	"ruff-service/internal/apperr"
	"ruff-service/internal/platform/logger"
	"ruff-service/internal/ports/storage"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID       map[string]Home
	members    []Membership
	knownUsers map[string]bool
}

func newTestRepo(userIDs ...string) *testRepo {
	known := map[string]bool{}
	for _, id := range userIDs {
		known[id] = true
	}
	return &testRepo{byID: map[string]Home{}, knownUsers: known}
}

func (r *testRepo) Create(ctx context.Context, h Home, owner Membership) error {
	if !r.knownUsers[h.OwnerID] {
		return fmt.Errorf("%w: homes_owner_id_fkey", storage.ErrForeignKeyViolation)
	}
	// home + membresía del owner, todo o nada
	r.byID[h.ID] = h
	r.members = append(r.members, owner)
	return nil
}

func (r *testRepo) FindByID(ctx context.Context, id string) (*Home, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *testRepo) List(ctx context.Context, memberUserID string) ([]Home, error) {
	out := make([]Home, 0)
	for _, h := range r.byID {
		if memberUserID == "" || r.isMember(memberUserID, h) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *testRepo) isMember(userID string, h Home) bool {
	if h.OwnerID == userID {
		return true
	}
	for _, m := range r.members {
		if m.UserID == userID && m.HomeID == h.ID {
			return true
		}
	}
	return false
}

func (r *testRepo) Update(ctx context.Context, h Home) error {
	if !r.knownUsers[h.OwnerID] {
		return fmt.Errorf("%w: homes_owner_id_fkey", storage.ErrForeignKeyViolation)
	}
	r.byID[h.ID] = h
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) AddMember(ctx context.Context, m Membership) error {
	if _, ok := r.byID[m.HomeID]; !ok || !r.knownUsers[m.UserID] {
		return fmt.Errorf("%w: user_homes_fkey", storage.ErrForeignKeyViolation)
	}
	for _, existing := range r.members {
		if existing.UserID == m.UserID && existing.HomeID == m.HomeID {
			return fmt.Errorf("%w: user_homes_pkey", storage.ErrUniqueViolation)
		}
	}
	r.members = append(r.members, m)
	return nil
}

func (r *testRepo) ListMembers(ctx context.Context, homeID string) ([]Membership, error) {
	out := make([]Membership, 0)
	for _, m := range r.members {
		if m.HomeID == homeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

// -------------------------
// Tests
// -------------------------

func TestCreate_OwnerBecomesMember(t *testing.T) {
	repo := newTestRepo("owner-1")
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	h, err := svc.Create(ctx, CreateInput{Name: "Casa Uno", OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	members, err := svc.RetrieveMembers(ctx, h.ID)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected exactly one membership, got %d", len(members))
	}
	if members[0].UserID != "owner-1" || members[0].HomeID != h.ID {
		t.Fatalf("unexpected membership %+v", members[0])
	}
}

func TestCreate_UnknownOwnerIsConflict(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testLogger())

	_, err := svc.Create(context.Background(), CreateInput{Name: "Casa Uno", OwnerID: "ghost"})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if got, want := apperr.Message(err), "Owner id ghost does not exist"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
	if len(repo.byID) != 0 || len(repo.members) != 0 {
		t.Fatal("failed create must not leave rows behind")
	}
}

func TestAddMember_DuplicateIsConflict(t *testing.T) {
	svc := NewService(newTestRepo("owner-1", "friend-1"), testLogger())
	ctx := context.Background()

	h, err := svc.Create(ctx, CreateInput{Name: "Casa Uno", OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.AddMember(ctx, h.ID, "friend-1"); err != nil {
		t.Fatalf("first add: %v", err)
	}

	err = svc.AddMember(ctx, h.ID, "friend-1")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "User friend-1 is already a member of home " + h.ID
	if got := apperr.Message(err); got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestAddMember_UnknownReferenceIsConflict(t *testing.T) {
	svc := NewService(newTestRepo("owner-1"), testLogger())
	ctx := context.Background()

	h, err := svc.Create(ctx, CreateInput{Name: "Casa Uno", OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.AddMember(ctx, h.ID, "ghost")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "User ghost or home " + h.ID + " does not exist"
	if got := apperr.Message(err); got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestRetrieveAll_FiltersByOwnershipOrMembership(t *testing.T) {
	svc := NewService(newTestRepo("owner-1", "owner-2", "friend-1"), testLogger())
	ctx := context.Background()

	owned, err := svc.Create(ctx, CreateInput{Name: "Propia", OwnerID: "friend-1"})
	if err != nil {
		t.Fatalf("create owned: %v", err)
	}
	shared, err := svc.Create(ctx, CreateInput{Name: "Compartida", OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("create shared: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "Ajena", OwnerID: "owner-2"}); err != nil {
		t.Fatalf("create other: %v", err)
	}
	if err := svc.AddMember(ctx, shared.ID, "friend-1"); err != nil {
		t.Fatalf("add member: %v", err)
	}

	out, err := svc.RetrieveAll(ctx, "friend-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 homes for friend-1, got %d", len(out))
	}
	seen := map[string]bool{}
	for _, h := range out {
		seen[h.ID] = true
	}
	if !seen[owned.ID] || !seen[shared.ID] {
		t.Fatalf("expected owned and shared homes, got %v", seen)
	}

	all, err := svc.RetrieveAll(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 homes without filter, got %d", len(all))
	}
}

func TestRetrieveMembers_MissingHomeIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), testLogger())

	_, err := svc.RetrieveMembers(context.Background(), "missing-home")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if got, want := apperr.Message(err), "Home with id missing-home does not exist"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}
