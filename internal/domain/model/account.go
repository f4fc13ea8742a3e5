package model

import "time"

// Account represents a staff member of the operations dashboard.
// Avatar holds raw image bytes; nil means the account has no avatar
// and the UI falls back to a generated placeholder.
type Account struct {
	Username     string
	DisplayName  string
	PasswordHash string
	Avatar       []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAvatar reports whether the account has a stored avatar.
func (a *Account) HasAvatar() bool {
	return len(a.Avatar) > 0
}
