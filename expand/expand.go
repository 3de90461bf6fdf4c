// Package expand provides shell-style string expansion: leading tilde
// expansion for paths like ~/.ssh and ~user/.ssh, $VAR and ${VAR}
// environment variable substitution, and a combination of both. Home
// directories are resolved through the userhome resolver, so ~user works for
// any account the platform can answer for.
package expand

import (
	"os"
	"strings"
	"unicode"

	"github.com/k0sproject/userhome"
	"github.com/k0sproject/userhome/errstring"
)

// ErrNotSet is the cause of the LookupError returned by the default
// environment lookup when a referenced variable is not set.
var ErrNotSet = errstring.New("environment variable is not set")

// LookupFunc supplies variable values for Env expansion. A false ok with a
// nil error leaves the reference in the input verbatim; a non-nil error
// aborts the expansion.
type LookupFunc func(name string) (value string, ok bool, err error)

// HomeFunc supplies home directories for tilde expansion. An empty user
// means the current user.
type HomeFunc func(user string) (string, error)

// LookupError is returned when a variable lookup fails during expansion.
type LookupError struct {
	// Name is the variable whose lookup failed.
	Name string
	// Cause is the error returned by the lookup.
	Cause error
}

func (e *LookupError) Error() string {
	return "look up variable " + e.Name + ": " + e.Cause.Error()
}

func (e *LookupError) Unwrap() error { return e.Cause }

func envLookup(name string) (string, bool, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", false, ErrNotSet
	}
	return value, true, nil
}

// Env expands $VAR and ${VAR} references in input from the environment.
// Referencing an unset variable is an error; use EnvWith for other policies.
func Env(input string) (string, error) {
	return EnvWith(input, envLookup)
}

// EnvWith expands $VAR and ${VAR} references in input using the given
// lookup. A reference the lookup reports as unknown is left in place
// verbatim, as are stray or empty references like "$", "${}" and "$/". "$$"
// escapes to a single "$".
func EnvWith(input string, lookup LookupFunc) (string, error) {
	next := strings.IndexByte(input, '$')
	if next < 0 {
		return input, nil
	}

	var out strings.Builder
	out.Grow(len(input))
	for {
		out.WriteString(input[:next])
		input = input[next:]
		if input == "" {
			break
		}

		rest := input[1:]
		if strings.HasPrefix(rest, "{") {
			if end := strings.IndexByte(input, '}'); end >= 0 {
				name := input[2:end]
				value, ok, err := lookup(name)
				if err != nil {
					return "", &LookupError{Name: name, Cause: err}
				}
				if ok {
					out.WriteString(value)
				} else {
					out.WriteString(input[:end+1])
				}
				input = input[end+1:]
			} else {
				// unterminated ${ passes through
				out.WriteString(input[:2])
				input = input[2:]
			}
		} else if name := varName(rest); name != "" {
			value, ok, err := lookup(name)
			if err != nil {
				return "", &LookupError{Name: name, Cause: err}
			}
			end := 1 + len(name)
			if ok {
				out.WriteString(value)
			} else {
				out.WriteString(input[:end])
			}
			input = input[end:]
		} else {
			out.WriteByte('$')
			if strings.HasPrefix(rest, "$") {
				// $$ escapes the dollar
				input = input[2:]
			} else {
				input = input[1:]
			}
		}

		next = strings.IndexByte(input, '$')
		if next < 0 {
			out.WriteString(input)
			break
		}
	}
	return out.String(), nil
}

// Full expands environment variable references and then a leading tilde,
// using the environment and the userhome resolver.
func Full(input string) (string, error) {
	return FullWith(input, userhome.Dir, envLookup)
}

// FullWith is Full with a caller-supplied home resolver and variable lookup.
// A leading tilde that was introduced by variable substitution is not
// treated as a home directory reference.
func FullWith(input string, home HomeFunc, lookup LookupFunc) (string, error) {
	expanded, err := EnvWith(input, lookup)
	if err != nil {
		return "", err
	}
	if expanded != input && !strings.HasPrefix(input, "~") && strings.HasPrefix(expanded, "~") {
		return expanded, nil
	}
	return TildeWith(expanded, home), nil
}

// varName returns the leading run of variable name characters (letters,
// digits and underscores) in s.
func varName(s string) string {
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return s[:i]
		}
	}
	return s
}
