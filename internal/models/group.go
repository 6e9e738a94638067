package models

// Group represents a set of members who share expenses.
// All expenses within a group use the group's currency; the core performs
// no currency conversion.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g. "Roommates", "Ski Trip").
	Name string

	// Currency is the ISO 4217 code all group expenses are denominated in.
	Currency string

	// CreatedBy is the user ID that created the group.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// Members is the group roster. Order is stable (insertion order) and
	// determines tie-breaks in balance and settlement output.
	Members []Member
}

// Member is a group-scoped identity: either a registered user or a
// placeholder for someone without an account.
//
// Invariant: exactly one of UserID / PlaceholderName is set. All balance
// and split math keys off the member ID, so placeholders and registered
// users are treated uniformly downstream.
type Member struct {
	// ID is the unique identifier for the membership (UUID format).
	ID string

	// GroupID is the group this membership belongs to.
	GroupID string

	// UserID references a registered user. Empty for placeholders.
	UserID string

	// PlaceholderName identifies a member without an account.
	// Empty for registered users.
	PlaceholderName string

	// IsPlaceholder is true when the member is not a registered user.
	IsPlaceholder bool

	// Name is the display name shown in balances and settlement plans.
	Name string

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}

// MemberByID returns the member with the given ID, or nil.
func (g *Group) MemberByID(memberID string) *Member {
	for i := range g.Members {
		if g.Members[i].ID == memberID {
			return &g.Members[i]
		}
	}
	return nil
}

// MemberByUserID returns the member backed by the given user, or nil.
func (g *Group) MemberByUserID(userID string) *Member {
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			return &g.Members[i]
		}
	}
	return nil
}
