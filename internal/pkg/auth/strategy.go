package auth

import "time"

// Claims is what a token asserts about its bearer.
type Claims struct {
	UserID int64
	Role   string
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	// Now overrides the clock used for expiry, mostly in tests.
	Now func() time.Time
}
