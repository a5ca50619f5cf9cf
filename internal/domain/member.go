package domain

import "context"

// ClubMember is one entry in a club's member roster, used to resolve task
// assignee names to contact addresses. Email may be empty when the member
// has no stored address.
type ClubMember struct {
	ID     string `json:"id"`
	ClubID string `json:"club_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// ClubMemberRepository defines the club-membership lookup the engine needs.
type ClubMemberRepository interface {
	ListByClubID(ctx context.Context, clubID string) ([]*ClubMember, error)
}
