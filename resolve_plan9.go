package userhome

import (
	"os"
)

// usersFile is the system user registry: one account per line, colon
// separated, with the account name in the second field.
const usersFile = "/adm/users"

// Plan 9 has no passwd API; accounts live in a registry file and homes
// follow the /usr/<name> convention. A snapshot of the registry is read
// once per call.
func (r *Resolver) dir(name string) (string, error) {
	if name == "" {
		// The process's own home is $home, set by the OS at login.
		if home := os.Getenv("home"); home != "" {
			return home, nil
		}
		name = os.Getenv("user")
		if name == "" {
			return "", &NotFoundError{}
		}
	}

	f, err := os.Open(usersFile)
	if err != nil {
		return "", &OSError{Msg: err.Error()}
	}
	defer f.Close()

	found, err := registryHasUser(f, name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &NotFoundError{User: name}
	}
	return "/usr/" + name, nil
}
