package domain

import "time"

// Claims is the identity claim set embedded in a signed token. It carries no
// role: privilege is always resolved against the user store at request time,
// so a role change takes effect without waiting for token expiry.
type Claims struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
