package security

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// KeyChecker decides whether a presented key grants organizer access.
// Handlers only see this predicate, never the secret itself.
type KeyChecker interface {
	Allow(key string) bool
}

// NewKeyChecker builds a checker from the configured secret. A non-empty
// bcrypt hash takes precedence over the plain key.
func NewKeyChecker(key, keyHash string) KeyChecker {
	if keyHash != "" {
		return &hashKeyChecker{hash: []byte(keyHash)}
	}
	return &plainKeyChecker{secret: []byte(key)}
}

type plainKeyChecker struct {
	secret []byte
}

func (c *plainKeyChecker) Allow(key string) bool {
	// An empty secret must not turn into an open admin panel.
	if len(c.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(c.secret, []byte(key)) == 1
}

type hashKeyChecker struct {
	hash []byte
}

func (c *hashKeyChecker) Allow(key string) bool {
	if key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.hash, []byte(key)) == nil
}
