package responses

type Login struct {
	Token           string `json:"token"`
	Role            string `json:"role"`
	Email           string `json:"email"`
	IsProfileFilled bool   `json:"is_profile_filled"`
	ID              string `json:"id"`
}

type UserID struct {
	ID string `json:"ID"`
}

type UsersEnvelope struct {
	Users []map[string]interface{} `json:"users"`
}

// PortalLogin is returned to portal callers after a session is opened.
type PortalLogin struct {
	SessionID       string `json:"session_id"`
	Role            string `json:"role"`
	Email           string `json:"email"`
	IsProfileFilled bool   `json:"is_profile_filled"`
	Dashboard       string `json:"dashboard"`
	ExpiresAt       string `json:"expires_at"`
}
