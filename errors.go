package userhome

import (
	"github.com/k0sproject/userhome/errstring"
)

var (
	ErrNotFound         = errstring.New("home directory not found") // ErrNotFound is returned when no account or profile could be located
	ErrOS               = errstring.New("os error")                 // ErrOS is returned when a native call fails for a reason outside this package's control
	ErrPermissionDenied = errstring.New("permission denied")        // ErrPermissionDenied is returned on windows when inspecting another user's processes requires elevation
	ErrUnimplemented    = errstring.New("not implemented")          // ErrUnimplemented is returned when the platform has no way to perform the lookup
)

// NotFoundError is returned when no home directory could be located. It
// unwraps to ErrNotFound.
type NotFoundError struct {
	// User is the requested account name, empty for the current user.
	User string
}

func (e *NotFoundError) Error() string {
	if e.User == "" {
		return "home directory not found for current user"
	}
	return "home directory not found for user " + e.User
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// OSError is returned when a native call fails. It unwraps to ErrOS.
type OSError struct {
	// Msg is the OS's own description of the failure. Obtaining it is
	// best-effort and it may be empty.
	Msg string
}

func (e *OSError) Error() string {
	if e.Msg == "" {
		return "os error while looking up home directory"
	}
	return "os error while looking up home directory: " + e.Msg
}

func (e *OSError) Unwrap() error { return ErrOS }

// PermissionDeniedError is returned on windows when the caller is not
// elevated and requests the home directory of another user. It unwraps to
// ErrPermissionDenied.
type PermissionDeniedError struct {
	// User is the requested account name.
	User string
}

func (e *PermissionDeniedError) Error() string {
	return "looking up the home directory of user " + e.User + " requires an elevated process"
}

func (e *PermissionDeniedError) Unwrap() error { return ErrPermissionDenied }

// UnimplementedError is returned when the requested lookup has no
// implementation on this platform. It unwraps to ErrUnimplemented.
type UnimplementedError struct {
	// User is the requested account name, empty for the current user.
	User string
}

func (e *UnimplementedError) Error() string {
	if e.User == "" {
		return "looking up the current user's home directory is not implemented on this platform"
	}
	return "looking up the home directory of user " + e.User + " is not implemented on this platform"
}

func (e *UnimplementedError) Unwrap() error { return ErrUnimplemented }
