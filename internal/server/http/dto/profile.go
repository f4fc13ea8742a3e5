package dto

// ChangePasswordRequest carries the password rotation payload. Field
// names follow the dashboard client contract.
type ChangePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPass"`
	NewPassword string `json:"newPass"`
}

// RemoveAvatarRequest identifies the account whose avatar is cleared.
type RemoveAvatarRequest struct {
	Username string `json:"username"`
}

// AvatarResponse returns the newly stored avatar as base64 so the caller
// can display it without a second fetch.
type AvatarResponse struct {
	Avatar string `json:"avatar"`
}
