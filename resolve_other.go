//go:build !windows && !plan9 && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package userhome

import "os"

// Platforms with no native user database. Only the current user can be
// resolved, and only from the environment.
func (r *Resolver) dir(name string) (string, error) {
	if name != "" {
		return "", &UnimplementedError{User: name}
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", &NotFoundError{}
}
