// Package entities contains core business entities.
package entities

import "time"

// DefaultMemberRole is assigned when a member is added without a role.
const DefaultMemberRole = "MEMBER"

// Member links a user to a project. At most one row exists per (ProjectID, UserID).
type Member struct {
	ID        int64
	ProjectID int64
	UserID    int64
	Role      string
	JoinedAt  time.Time
}

// MemberView is a member enriched with the referenced user's contact data.
type MemberView struct {
	ID       int64
	UserID   int64
	Username string
	Email    string
	Role     string
	JoinedAt time.Time
}
