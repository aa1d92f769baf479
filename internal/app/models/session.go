package models

import "time"

// Session is the explicit identity passed to every hospital API call.
type Session struct {
	SessionID       string    `json:"session_id"`
	Token           string    `json:"token"`
	Role            string    `json:"role"`
	Email           string    `json:"email"`
	UserID          string    `json:"user_id"`
	IsProfileFilled bool      `json:"is_profile_filled"`
	IssuedAt        time.Time `json:"issued_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	if s == nil {
		return true
	}
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s *Session) HasRole(roles ...string) bool {
	if s == nil {
		return false
	}
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}
