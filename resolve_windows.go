package userhome

import (
	"github.com/k0sproject/userhome/log"
)

// DefaultProfileName is the reserved account name that resolves to the
// default user profile template directory instead of a real account.
const DefaultProfileName = "Default"

func (r *Resolver) dir(name string) (string, error) {
	s := newWinScratch(r.bufferSize())
	if name == DefaultProfileName {
		return defaultProfileDirectory(s)
	}
	return profileDirectory(name, s)
}

func profileDirectory(name string, s *winScratch) (string, error) {
	proc := currentProcess()
	tok, err := openProcessToken(proc, s)
	if err != nil {
		return "", err
	}
	defer tok.Close()

	if name != "" {
		owner, err := tokenAccountName(tok, s)
		if err != nil {
			return "", err
		}
		if owner != name {
			return loggedInUserProfileDirectory(name, tok, s)
		}
	}

	// Current user, either by empty name or by name match: the answer comes
	// straight from our own token.
	return userProfileDirectory(tok, s)
}

// loggedInUserProfileDirectory finds the profile directory of another user by
// locating a running process they own and reading the answer from its token.
// This requires elevation and that the user is logged in; the elevation check
// happens once, up front, because an unelevated enumeration would fail anyway
// and only obscure the real cause.
func loggedInUserProfileDirectory(name string, current *token, s *winScratch) (string, error) {
	elevated, err := tokenElevated(current, s)
	if err != nil {
		return "", err
	}
	if !elevated {
		return "", &PermissionDeniedError{User: name}
	}

	pids, err := enumProcesses(s)
	if err != nil {
		return "", err
	}
	log.Default().Debug("searching running processes for user", log.String("user", name), log.Int("processes", len(pids)))

	for _, pid := range pids {
		if pid == 0 {
			continue
		}
		if dir, ok := processProfileDirectory(pid, name, s); ok {
			return dir, nil
		}
	}
	return "", &NotFoundError{User: name}
}

// processProfileDirectory reports the profile directory of the process owner
// when the owner's account name matches name exactly. All failures are
// swallowed: the process may have exited or be inaccessible, and one bad
// process must not abort the search. Handles opened here are released before
// returning, on every path.
func processProfileDirectory(pid uint32, name string, s *winScratch) (string, bool) {
	proc, err := openProcess(pid, s)
	if err != nil {
		return "", false
	}
	defer proc.Close()

	tok, err := openProcessToken(proc, s)
	if err != nil {
		return "", false
	}
	defer tok.Close()

	owner, err := tokenAccountName(tok, s)
	if err != nil || owner != name {
		return "", false
	}

	dir, err := userProfileDirectory(tok, s)
	if err != nil {
		return "", false
	}
	return dir, true
}

// tokenAccountName returns the account name of the token's owner.
func tokenAccountName(t *token, s *winScratch) (string, error) {
	sid, err := tokenSID(t, s)
	if err != nil {
		return "", err
	}
	return accountName(sid, s)
}
