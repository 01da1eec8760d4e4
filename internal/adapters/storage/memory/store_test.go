package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"ruff-service/internal/domain/homes"
	"ruff-service/internal/domain/pets"
	"ruff-service/internal/domain/users"
	"ruff-service/internal/ports/storage"
)

func seedUser(t *testing.T, s *Store, id, email string) users.User {
	t.Helper()
	u := users.User{ID: id, Email: email, FirstName: "User", LastName: id, CreatedAt: time.Now()}
	if err := s.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return u
}

func seedHome(t *testing.T, s *Store, id, ownerID string, at time.Time) homes.Home {
	t.Helper()
	h := homes.Home{ID: id, Name: "Home " + id, OwnerID: ownerID, CreatedAt: at}
	owner := homes.Membership{UserID: ownerID, HomeID: id, CreatedAt: at}
	if err := s.Homes().Create(context.Background(), h, owner); err != nil {
		t.Fatalf("seed home %s: %v", id, err)
	}
	return h
}

func seedPet(t *testing.T, s *Store, id, homeID string, at time.Time) pets.Pet {
	t.Helper()
	p := pets.Pet{ID: id, Name: "Pet " + id, Type: pets.TypeDog, Gender: pets.GenderMale, Breed: "Labrador", HomeID: homeID, CreatedAt: at}
	if err := s.Pets().Create(context.Background(), p); err != nil {
		t.Fatalf("seed pet %s: %v", id, err)
	}
	return p
}

func TestUsersList_OrderedByFirstNameCaseInsensitive(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	// insertados fuera de orden y con mayúsculas mezcladas; el orden
	// del listado ignora la caja, como lower(first_name) en Postgres
	for _, u := range []users.User{
		{ID: "u-zoe", Email: "zoe@example.com", FirstName: "Zoe", LastName: "Rojas"},
		{ID: "u-bruno", Email: "bruno@example.com", FirstName: "bruno", LastName: "Salas"},
		{ID: "u-ana", Email: "ana@example.com", FirstName: "Ana", LastName: "Quispe"},
	} {
		if err := s.Users().Create(ctx, u); err != nil {
			t.Fatalf("create %s: %v", u.ID, err)
		}
	}

	out, err := s.Users().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"Ana", "bruno", "Zoe"}
	if len(out) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(out))
	}
	for i, name := range want {
		if out[i].FirstName != name {
			t.Fatalf("position %d: got %q, want %q", i, out[i].FirstName, name)
		}
	}
}

func TestHomeCreate_UnknownOwnerLeavesNothingBehind(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	h := homes.Home{ID: "home-1", Name: "Casa", OwnerID: "ghost"}
	owner := homes.Membership{UserID: "ghost", HomeID: "home-1"}

	err := s.Homes().Create(ctx, h, owner)
	if !errors.Is(err, storage.ErrForeignKeyViolation) {
		t.Fatalf("expected FK violation, got %v", err)
	}

	if got, _ := s.Homes().FindByID(ctx, "home-1"); got != nil {
		t.Fatal("home must not exist after failed create")
	}
	members, _ := s.Homes().ListMembers(ctx, "home-1")
	if len(members) != 0 {
		t.Fatalf("expected no memberships, got %d", len(members))
	}
}

func TestHomeCreate_WritesOwnerMembership(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedUser(t, s, "owner-1", "owner@example.com")
	h := seedHome(t, s, "home-1", "owner-1", time.Now())

	members, err := s.Homes().ListMembers(ctx, h.ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 1 || members[0].UserID != "owner-1" {
		t.Fatalf("expected owner membership, got %+v", members)
	}
}

func TestAddMember_ConstraintSignals(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedUser(t, s, "owner-1", "owner@example.com")
	seedUser(t, s, "friend-1", "friend@example.com")
	seedHome(t, s, "home-1", "owner-1", time.Now())

	m := homes.Membership{UserID: "friend-1", HomeID: "home-1", CreatedAt: time.Now()}
	if err := s.Homes().AddMember(ctx, m); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if err := s.Homes().AddMember(ctx, m); !errors.Is(err, storage.ErrUniqueViolation) {
		t.Fatalf("expected unique violation on duplicate, got %v", err)
	}

	ghost := homes.Membership{UserID: "ghost", HomeID: "home-1"}
	if err := s.Homes().AddMember(ctx, ghost); !errors.Is(err, storage.ErrForeignKeyViolation) {
		t.Fatalf("expected FK violation for unknown user, got %v", err)
	}
}

func TestList_MemberFilterIsOwnershipUnionMembership(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedUser(t, s, "friend-1", "friend@example.com")
	seedUser(t, s, "owner-1", "owner1@example.com")
	seedUser(t, s, "owner-2", "owner2@example.com")

	base := time.Now()
	owned := seedHome(t, s, "home-owned", "friend-1", base)
	shared := seedHome(t, s, "home-shared", "owner-1", base.Add(time.Second))
	seedHome(t, s, "home-other", "owner-2", base.Add(2*time.Second))

	if err := s.Homes().AddMember(ctx, homes.Membership{UserID: "friend-1", HomeID: shared.ID, CreatedAt: base}); err != nil {
		t.Fatalf("add member: %v", err)
	}

	seedPet(t, s, "pet-owned", owned.ID, base)
	seedPet(t, s, "pet-shared", shared.ID, base)
	seedPet(t, s, "pet-other", "home-other", base)

	hs, err := s.Homes().List(ctx, "friend-1")
	if err != nil {
		t.Fatalf("list homes: %v", err)
	}
	if len(hs) != 2 {
		t.Fatalf("expected 2 homes, got %d", len(hs))
	}
	// orden por creación
	if hs[0].ID != owned.ID || hs[1].ID != shared.ID {
		t.Fatalf("unexpected order: %s, %s", hs[0].ID, hs[1].ID)
	}
	if len(hs[0].Pets) != 1 || hs[0].Pets[0].ID != "pet-owned" {
		t.Fatalf("expected embedded pets, got %+v", hs[0].Pets)
	}

	ps, err := s.Pets().List(ctx, "friend-1")
	if err != nil {
		t.Fatalf("list pets: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("expected 2 pets for friend-1, got %d", len(ps))
	}
}

func TestListLogsByPet_NewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedUser(t, s, "owner-1", "owner@example.com")
	seedHome(t, s, "home-1", "owner-1", time.Now())
	p := seedPet(t, s, "pet-1", "home-1", time.Now())

	now := time.Now()
	// insertadas fuera de orden a propósito
	entries := []pets.PetLog{
		{ID: "log-mid", PetID: p.ID, Type: pets.LogTypeFood, Title: "Comida", OccurredAt: now.Add(-30 * time.Minute)},
		{ID: "log-new", PetID: p.ID, Type: pets.LogTypeWalk, Title: "Paseo", OccurredAt: now},
		{ID: "log-old", PetID: p.ID, Type: pets.LogTypeGrooming, Title: "Baño", OccurredAt: now.Add(-60 * time.Minute)},
	}
	for _, l := range entries {
		if err := s.Pets().CreateLog(ctx, l); err != nil {
			t.Fatalf("create log %s: %v", l.ID, err)
		}
	}

	out, err := s.Pets().ListLogsByPet(ctx, p.ID)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(out))
	}
	if out[0].ID != "log-new" || out[1].ID != "log-mid" || out[2].ID != "log-old" {
		t.Fatalf("unexpected order: %s, %s, %s", out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestUserDelete_CascadesOwnedHomes(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedUser(t, s, "owner-1", "owner@example.com")
	seedUser(t, s, "friend-1", "friend@example.com")
	h := seedHome(t, s, "home-1", "owner-1", time.Now())
	p := seedPet(t, s, "pet-1", h.ID, time.Now())
	if err := s.Homes().AddMember(ctx, homes.Membership{UserID: "friend-1", HomeID: h.ID}); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if err := s.Pets().CreateLog(ctx, pets.PetLog{ID: "log-1", PetID: p.ID, Type: pets.LogTypeWalk, Title: "Paseo", OccurredAt: time.Now()}); err != nil {
		t.Fatalf("create log: %v", err)
	}

	if err := s.Users().Delete(ctx, "owner-1"); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if got, _ := s.Homes().FindByID(ctx, h.ID); got != nil {
		t.Fatal("home should cascade with its owner")
	}
	if got, _ := s.Pets().FindByID(ctx, p.ID); got != nil {
		t.Fatal("pet should cascade with its home")
	}
	logs, _ := s.Pets().ListLogsByPet(ctx, p.ID)
	if len(logs) != 0 {
		t.Fatalf("expected no logs after cascade, got %d", len(logs))
	}
	members, _ := s.Homes().ListMembers(ctx, h.ID)
	if len(members) != 0 {
		t.Fatalf("expected no memberships after cascade, got %d", len(members))
	}

	// El miembro que no era owner sigue existiendo.
	if got, _ := s.Users().FindByID(ctx, "friend-1"); got == nil {
		t.Fatal("non-owner member must survive the cascade")
	}
}

func TestHomeDelete_CascadesPetsAndLogs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedUser(t, s, "owner-1", "owner@example.com")
	h := seedHome(t, s, "home-1", "owner-1", time.Now())
	p := seedPet(t, s, "pet-1", h.ID, time.Now())
	if err := s.Pets().CreateLog(ctx, pets.PetLog{ID: "log-1", PetID: p.ID, Type: pets.LogTypeWalk, Title: "Paseo", OccurredAt: time.Now()}); err != nil {
		t.Fatalf("create log: %v", err)
	}

	if err := s.Homes().Delete(ctx, h.ID); err != nil {
		t.Fatalf("delete home: %v", err)
	}

	if got, _ := s.Pets().FindByID(ctx, p.ID); got != nil {
		t.Fatal("pet should cascade with its home")
	}
	if logs, _ := s.Pets().ListLogsByPet(ctx, p.ID); len(logs) != 0 {
		t.Fatal("logs should cascade with the pet")
	}
	// El owner no se toca.
	if got, _ := s.Users().FindByID(ctx, "owner-1"); got == nil {
		t.Fatal("owner must survive home deletion")
	}
}
