//go:build !cgo && (linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package userhome

import (
	"errors"
	"os/user"
)

// Without cgo there is no getpwnam_r to call, so named lookups go through
// the stdlib's pure-Go passwd reader instead.
func (r *Resolver) dir(name string) (string, error) {
	if name == "" {
		return currentUserHome()
	}

	u, err := user.Lookup(name)
	if err != nil {
		var unknown user.UnknownUserError
		if errors.As(err, &unknown) {
			return "", &NotFoundError{User: name}
		}
		return "", &OSError{Msg: err.Error()}
	}
	if u.HomeDir == "" {
		return "", &NotFoundError{User: name}
	}
	return u.HomeDir, nil
}
