package userhome_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/k0sproject/userhome"
	"github.com/stretchr/testify/assert"
)

func TestErrorSentinels(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{
			name:     "NotFoundCurrentUser",
			err:      &userhome.NotFoundError{},
			sentinel: userhome.ErrNotFound,
			msg:      "home directory not found for current user",
		},
		{
			name:     "NotFoundNamedUser",
			err:      &userhome.NotFoundError{User: "nobody"},
			sentinel: userhome.ErrNotFound,
			msg:      "home directory not found for user nobody",
		},
		{
			name:     "OSErrorWithMessage",
			err:      &userhome.OSError{Msg: "something broke"},
			sentinel: userhome.ErrOS,
			msg:      "os error while looking up home directory: something broke",
		},
		{
			name:     "OSErrorWithoutMessage",
			err:      &userhome.OSError{},
			sentinel: userhome.ErrOS,
			msg:      "os error while looking up home directory",
		},
		{
			name:     "PermissionDenied",
			err:      &userhome.PermissionDeniedError{User: "admin"},
			sentinel: userhome.ErrPermissionDenied,
			msg:      "looking up the home directory of user admin requires an elevated process",
		},
		{
			name:     "Unimplemented",
			err:      &userhome.UnimplementedError{User: "nobody"},
			sentinel: userhome.ErrUnimplemented,
			msg:      "looking up the home directory of user nobody is not implemented on this platform",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.sentinel))
			assert.EqualError(t, tc.err, tc.msg)
		})
	}
}

func TestErrorFieldsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("expanding path: %w", &userhome.NotFoundError{User: "nobody"})

	var notFound *userhome.NotFoundError
	assert.True(t, errors.As(wrapped, &notFound))
	assert.Equal(t, "nobody", notFound.User)
	assert.True(t, errors.Is(wrapped, userhome.ErrNotFound))
}
