package service

import (
	"errors"
	"slices"
)

var ErrForbidden = errors.New("forbidden")

// HasAnyRole reports whether the claims carry at least one of roles.
func HasAnyRole(claims *Claims, roles ...string) bool {
	if claims == nil {
		return false
	}
	for _, r := range roles {
		if slices.Contains(claims.Roles, r) {
			return true
		}
	}
	return false
}

// Authorize returns ErrForbidden unless the caller holds one of roles.
func Authorize(claims *Claims, roles ...string) error {
	if !HasAnyRole(claims, roles...) {
		return ErrForbidden
	}
	return nil
}
