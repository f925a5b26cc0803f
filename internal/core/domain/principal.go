package domain

import "strings"

// Principal identifies the authenticated user making a request. It is an
// opaque value supplied by the identity gateway; the zero value means the
// request is unauthenticated.
type Principal string

// Authenticated reports whether p names a user.
func (p Principal) Authenticated() bool {
	return strings.TrimSpace(string(p)) != ""
}

// Owns reports whether p is authenticated and equal to owner.
func (p Principal) Owns(owner Principal) bool {
	return p.Authenticated() && p == owner
}
