package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the workspace a session is routed to.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
	// RoleNone means the profile carries neither role flag; the user has to
	// pick a role before a workspace can be opened.
	RoleNone Role = "none"
)

// Session is the process-wide identity state the browser kept in local
// storage: token pair, logged user, profile id and display names. It is
// populated atomically after a successful login exchange and cleared in
// full on logout.
type Session struct {
	ID string `json:"id"`

	Access  string `json:"access"`
	Refresh string `json:"refresh"`

	LoggedUser            string `json:"logged_user"`
	ProfileID             int    `json:"profile_id"`
	ProfileName           string `json:"profile_name"`
	FreelancerProfileName string `json:"freelancer_profile_name,omitempty"`
	ClientProfileName     string `json:"client_profile_name,omitempty"`

	Role Role `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DisplayName is the name used for name-based matching against contracts,
// reviews and notifications. Falls back to the login username when the
// profile name is absent, as the dashboards did.
func (s *Session) DisplayName() string {
	if s.ProfileName != "" {
		return s.ProfileName
	}
	return s.LoggedUser
}

// MatchesName reports whether the given name belongs to this identity,
// using the trimmed case-insensitive comparison the dashboards used.
func (s *Session) MatchesName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(s.DisplayName()))
}

// Expired reports whether the session is past its deadline.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// AccessExpiry extracts the exp claim from an access token without
// verifying the signature; the marketplace is the token authority, this
// side only needs the deadline. Zero time when the claim is unusable.
func AccessExpiry(access string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(access, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
