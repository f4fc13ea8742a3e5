package auth

import "time"

// Strategy issues and verifies session tokens carrying the account username.
type Strategy interface {
	IssueToken(username string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
