package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

func TestUserService_IsAdmin(t *testing.T) {
	repo := newMemUserRepo()
	repo.users["root@example.com"] = &domain.User{ID: "1", Email: "root@example.com", Role: domain.RoleAdmin}
	repo.users["alice@example.com"] = &domain.User{ID: "2", Email: "alice@example.com", Role: domain.RoleGuest}

	svc := NewUserService(repo, zerolog.Nop())

	cases := []struct {
		email string
		want  bool
	}{
		{"root@example.com", true},
		{"alice@example.com", false},
		{"nobody@example.com", false}, // unknown accounts report false, not an error
	}
	for _, tc := range cases {
		got, err := svc.IsAdmin(context.Background(), tc.email)
		if err != nil {
			t.Fatalf("IsAdmin(%s) returned error: %v", tc.email, err)
		}
		if got != tc.want {
			t.Fatalf("IsAdmin(%s) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestUserService_PromoteToAdmin(t *testing.T) {
	repo := newMemUserRepo()
	repo.users["alice@example.com"] = &domain.User{ID: "2", Email: "alice@example.com", Role: domain.RoleGuest}

	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.PromoteToAdmin(context.Background(), "2"); err != nil {
		t.Fatalf("PromoteToAdmin returned error: %v", err)
	}
	if role := repo.users["alice@example.com"].Role; role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", role)
	}
}

func TestUserService_PromoteToAdmin_UnknownUser(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), zerolog.Nop())

	// Promotion must never upsert a partial account.
	if err := svc.PromoteToAdmin(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
