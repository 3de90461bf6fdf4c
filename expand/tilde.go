package expand

import (
	"strings"

	"github.com/k0sproject/userhome"
)

// Tilde expands a leading ~ or ~user in input to the corresponding home
// directory, resolved through the userhome resolver. Input that does not
// start with a tilde, or whose home directory cannot be resolved, is
// returned unchanged.
func Tilde(input string) string {
	return TildeWith(input, userhome.Dir)
}

// TildeWith is Tilde with a caller-supplied home resolver.
func TildeWith(input string, home HomeFunc) string {
	if !strings.HasPrefix(input, "~") {
		return input
	}

	rest := input[1:]
	user := ""
	if rest != "" && !strings.HasPrefix(rest, "/") {
		// ~user or ~user/...
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			user, rest = rest[:idx], rest[idx:]
		} else {
			user, rest = rest, ""
		}
	}

	dir, err := home(user)
	if err != nil || dir == "" {
		// not resolvable, leave the input as it was
		return input
	}
	return dir + rest
}
