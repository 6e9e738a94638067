package service

import (
	"context"
	"errors"
	"testing"

	"splitledger/internal/models"
)

func TestCreateGroupSeedsCreator(t *testing.T) {
	f := newFixture(t)
	svc := NewGroupService(f.store)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, f.user.ID, "Road Trip", "EUR")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if group.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", group.Currency)
	}
	if len(group.Members) != 1 {
		t.Fatalf("got %d members, want creator only", len(group.Members))
	}
	if m := group.Members[0]; m.UserID != f.user.ID || m.Name != "Alice" {
		t.Errorf("creator member = %+v", m)
	}
}

func TestAddMembers(t *testing.T) {
	f := newFixture(t)
	svc := NewGroupService(f.store)
	ctx := context.Background()

	bob := models.NewUser("bob@example.com", "Bob R.", "hash")
	if err := f.store.CreateUser(ctx, bob); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	added, err := svc.AddMembers(ctx, f.user.ID, f.group.ID, []MemberInput{
		{UserID: bob.ID},
		{PlaceholderName: "dana"},
	})
	if err != nil {
		t.Fatalf("AddMembers failed: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("got %d added members, want 2", len(added))
	}
	if added[0].Name != "Bob R." || added[0].IsPlaceholder {
		t.Errorf("registered member = %+v, want name from user record", added[0])
	}
	if added[1].Name != "dana" || !added[1].IsPlaceholder {
		t.Errorf("placeholder member = %+v", added[1])
	}

	group, err := svc.GetGroup(ctx, f.user.ID, f.group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if len(group.Members) != 5 {
		t.Errorf("roster size = %d, want 5", len(group.Members))
	}
}

func TestAddMembersValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewGroupService(f.store)
	ctx := context.Background()

	tests := []struct {
		name    string
		in      MemberInput
		wantErr error
	}{
		{
			name:    "neither user nor placeholder",
			in:      MemberInput{},
			wantErr: ErrMemberIdentity,
		},
		{
			name:    "both user and placeholder",
			in:      MemberInput{UserID: f.user.ID, PlaceholderName: "x"},
			wantErr: ErrMemberIdentity,
		},
		{
			name:    "user already a member",
			in:      MemberInput{UserID: f.user.ID},
			wantErr: ErrAlreadyMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddMembers(ctx, f.user.ID, f.group.ID, []MemberInput{tt.in})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddMembers error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetGroupMembership(t *testing.T) {
	f := newFixture(t)
	svc := NewGroupService(f.store)
	ctx := context.Background()

	if _, err := svc.GetGroup(ctx, "outsider", f.group.ID); !errors.Is(err, ErrNotGroupMember) {
		t.Errorf("GetGroup as outsider = %v, want %v", err, ErrNotGroupMember)
	}

	groups, err := svc.ListGroups(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != f.group.ID {
		t.Errorf("ListGroups = %d groups, want the seeded group", len(groups))
	}
}
