package dto

// LoginRequest describes username/password payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResponse is the public view of an account. Avatar carries the
// stored image re-encoded as base64 and is omitted when absent.
type ProfileResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
}
