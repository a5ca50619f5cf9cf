package domain

import "time"

// Role is an application role carried by a principal.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePresident Role = "president"
	RoleSecretary Role = "secretary"
	RoleTreasurer Role = "treasurer"
	RoleMember    Role = "member"
)

// IsOfficer reports whether the role may manage its own club's events.
func (r Role) IsOfficer() bool {
	switch r {
	case RolePresident, RoleSecretary, RoleTreasurer:
		return true
	}
	return false
}

// Principal is the explicit authorization context passed into every façade
// mutation: the authenticated user, their role, and their club.
type Principal struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	ClubID string `json:"club_id"`
}

// CanManage reports whether the principal may mutate the given event:
// platform admins always, officers only for their own club's events.
func (p Principal) CanManage(event *Event) bool {
	if event == nil {
		return false
	}
	if p.Role == RoleAdmin {
		return true
	}
	return p.Role.IsOfficer() && p.ClubID == event.ClubID
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated principal.
type TokenIssuer interface {
	Issue(principal Principal, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the embedded principal.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}
