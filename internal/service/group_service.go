package service

import (
	"context"
	"fmt"
	"log/slog"

	"splitledger/internal/models"
	"splitledger/internal/storage"
)

// GroupService manages groups and their member rosters.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a GroupService.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// MemberInput describes a member to add: either a registered user
// reference or a placeholder name, never both.
type MemberInput struct {
	UserID          string
	PlaceholderName string
}

// CreateGroup creates a group with the creator as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, userID, name, currency string) (*models.Group, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	group := &models.Group{
		Name:      name,
		Currency:  currency,
		CreatedBy: userID,
		Members: []models.Member{
			{UserID: userID, Name: user.Name},
		},
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "user_id", userID, "error", err)
		return nil, err
	}
	return group, nil
}

// GetGroup retrieves a group the user belongs to.
func (s *GroupService) GetGroup(ctx context.Context, userID, groupID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.MemberByUserID(userID) == nil {
		return nil, ErrNotGroupMember
	}
	return group, nil
}

// ListGroups retrieves every group the user is a member of.
func (s *GroupService) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.store.ListGroupsByUser(ctx, userID)
}

// AddMembers appends members to a group's roster. Registered members get
// their display name from the user record; placeholders use the
// placeholder name.
func (s *GroupService) AddMembers(ctx context.Context, userID, groupID string, inputs []MemberInput) ([]models.Member, error) {
	group, err := s.GetGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	members := make([]models.Member, 0, len(inputs))
	for _, in := range inputs {
		switch {
		case in.UserID != "" && in.PlaceholderName == "":
			if group.MemberByUserID(in.UserID) != nil {
				return nil, fmt.Errorf("user %s: %w", in.UserID, ErrAlreadyMember)
			}
			user, err := s.store.GetUserByID(ctx, in.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to load user %s: %w", in.UserID, err)
			}
			members = append(members, models.Member{
				UserID: in.UserID,
				Name:   user.Name,
			})
		case in.UserID == "" && in.PlaceholderName != "":
			members = append(members, models.Member{
				PlaceholderName: in.PlaceholderName,
				IsPlaceholder:   true,
				Name:            in.PlaceholderName,
			})
		default:
			return nil, ErrMemberIdentity
		}
	}

	added, err := s.store.AddGroupMembers(ctx, groupID, members)
	if err != nil {
		slog.Error("AddMembers failed", "group_id", groupID, "error", err)
		return nil, err
	}
	return added, nil
}
