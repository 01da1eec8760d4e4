package users

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
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return fmt.Errorf("%w: users_email_key", storage.ErrUniqueViolation)
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) FindByID(ctx context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *testRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	for id, existing := range r.byID {
		if id != u.ID && existing.Email == u.Email {
			return fmt.Errorf("%w: users_email_key", storage.ErrUniqueViolation)
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

// -------------------------
// Tests
// -------------------------

func TestCreate_TrimsAndAssignsID(t *testing.T) {
	svc := NewService(newTestRepo(), testLogger())

	u, err := svc.Create(context.Background(), CreateInput{
		Email:     "  ana@example.com ",
		FirstName: " Ana",
		LastName:  "Quispe ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected generated id")
	}
	if u.Email != "ana@example.com" || u.FirstName != "Ana" || u.LastName != "Quispe" {
		t.Fatalf("expected trimmed fields, got %+v", u)
	}
	if u.CreatedAt.IsZero() || !u.CreatedAt.Equal(u.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt, got %v / %v", u.CreatedAt, u.UpdatedAt)
	}
}

func TestCreate_DuplicateEmailIsConflict(t *testing.T) {
	svc := NewService(newTestRepo(), testLogger())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Email: "ana@example.com", FirstName: "Ana", LastName: "Quispe"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(ctx, CreateInput{Email: "ana@example.com", FirstName: "Otra", LastName: "Ana"})
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if got, want := apperr.Message(err), "Email ana@example.com is already in use"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestRetrieve_MissingIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), testLogger())

	_, err := svc.Retrieve(context.Background(), "missing-id")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if got, want := apperr.Message(err), "User with id missing-id does not exist"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestUpdate_OnlyTouchesProvidedFields(t *testing.T) {
	svc := NewService(newTestRepo(), testLogger())
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Email: "ana@example.com", FirstName: "Ana", LastName: "Quispe"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newLast := "Quispe Rojas"
	got, err := svc.Update(ctx, u.ID, UpdateInput{LastName: &newLast})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.LastName != "Quispe Rojas" {
		t.Fatalf("lastName = %q", got.LastName)
	}
	if got.Email != u.Email || got.FirstName != u.FirstName {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdate_DuplicateEmailIsConflict(t *testing.T) {
	svc := NewService(newTestRepo(), testLogger())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Email: "ana@example.com", FirstName: "Ana", LastName: "Quispe"}); err != nil {
		t.Fatalf("create ana: %v", err)
	}
	bruno, err := svc.Create(ctx, CreateInput{Email: "bruno@example.com", FirstName: "Bruno", LastName: "Torres"})
	if err != nil {
		t.Fatalf("create bruno: %v", err)
	}

	taken := "ana@example.com"
	_, err = svc.Update(ctx, bruno.ID, UpdateInput{Email: &taken})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDelete_ReturnsDeletedUser(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Email: "ana@example.com", FirstName: "Ana", LastName: "Quispe"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != u.ID {
		t.Fatalf("deleted id = %q, want %q", deleted.ID, u.ID)
	}
	if _, ok := repo.byID[u.ID]; ok {
		t.Fatal("user still present after delete")
	}

	if _, err := svc.Delete(ctx, u.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
