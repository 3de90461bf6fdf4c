//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package userhome

import (
	"github.com/mitchellh/go-homedir"
)

func init() {
	// Results are never cached across calls; resolution always reflects the
	// live environment.
	homedir.DisableCache = true
}

// currentUserHome returns the home directory of the process's own user. The
// primitive consults $HOME before falling back to the user database, which a
// plain getpwuid lookup would miss.
func currentUserHome() (string, error) {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return "", &NotFoundError{}
	}
	return home, nil
}
