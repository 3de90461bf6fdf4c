// Package userhome resolves the home directory of a named user or the
// current user using the operating system's native user database. On
// windows this includes finding the profile directories of other logged in
// users by inspecting the security tokens of their running processes.
package userhome

import (
	"github.com/creasty/defaults"

	"github.com/k0sproject/userhome/log"
)

// DefaultBufferSize is the initial capacity of the scratch buffers handed to
// native lookup calls. The buffers grow to whatever size the OS reports as
// required, so this only affects how many retries a long answer takes.
const DefaultBufferSize = 1024

// Resolver resolves user home directories. The zero value is usable;
// NewResolver returns one with defaults applied.
type Resolver struct {
	// InitialBufferSize is the starting capacity for the scratch buffers
	// used during native lookups. Mainly useful for exercising the buffer
	// growth path in tests.
	InitialBufferSize int `yaml:"initialBufferSize" default:"1024"`
}

// NewResolver returns a Resolver with default settings.
func NewResolver() *Resolver {
	r := &Resolver{}
	if err := defaults.Set(r); err != nil {
		panic(err)
	}
	return r
}

// Dir returns the home directory of the user with the given name. An empty
// name means the current user. On windows the literal name "Default" returns
// the default user profile template directory, and resolving any other user
// than the current one requires an elevated process and that the user is
// logged in.
//
// Account name comparison on windows is exact (case-sensitive).
//
// The returned path is the native API's answer verbatim; no trailing
// separator policy is imposed. Errors unwrap to one of ErrNotFound, ErrOS,
// ErrPermissionDenied or ErrUnimplemented.
func (r *Resolver) Dir(name string) (string, error) {
	log.Default().Debug("resolving home directory", log.String("user", name))
	return r.dir(name)
}

func (r *Resolver) bufferSize() int {
	if r.InitialBufferSize > 0 {
		return r.InitialBufferSize
	}
	return DefaultBufferSize
}

var defaultResolver = NewResolver()

// Dir resolves the home directory of the named user using a resolver with
// default settings. An empty name means the current user.
func Dir(name string) (string, error) {
	return defaultResolver.Dir(name)
}

// CurrentDir resolves the home directory of the current user.
func CurrentDir() (string, error) {
	return defaultResolver.Dir("")
}
