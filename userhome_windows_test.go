package userhome_test

import (
	"errors"
	"os/user"
	"strings"
	"testing"

	"github.com/k0sproject/userhome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolving the current user's own account name must take the same direct
// path as resolving the empty name.
func TestOwnNameMatchesCurrent(t *testing.T) {
	u, err := user.Current()
	require.NoError(t, err)

	name := u.Username
	if idx := strings.LastIndexByte(name, '\\'); idx >= 0 {
		name = name[idx+1:]
	}

	current, err := userhome.CurrentDir()
	require.NoError(t, err)

	byName, err := userhome.Dir(name)
	require.NoError(t, err)
	assert.Equal(t, current, byName)
}

func TestDefaultProfile(t *testing.T) {
	home, err := userhome.Dir(userhome.DefaultProfileName)
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}

// Another user's home is only resolvable from an elevated process while the
// user is logged in. Depending on elevation this is either a permission
// error (before any enumeration) or, when elevated, a not-found after an
// exhausted search. It must never surface as a plain OS error.
func TestOtherUser(t *testing.T) {
	_, err := userhome.Dir("thisUs3rDoe5notExist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, userhome.ErrPermissionDenied) || errors.Is(err, userhome.ErrNotFound))
	assert.False(t, errors.Is(err, userhome.ErrOS))

	if errors.Is(err, userhome.ErrPermissionDenied) {
		var denied *userhome.PermissionDeniedError
		require.True(t, errors.As(err, &denied))
		assert.Equal(t, "thisUs3rDoe5notExist", denied.User)
	}
}

func TestBufferGrowthWindows(t *testing.T) {
	small := &userhome.Resolver{InitialBufferSize: 1}
	big := userhome.NewResolver()

	smallHome, err := small.Dir("")
	require.NoError(t, err)
	bigHome, err := big.Dir("")
	require.NoError(t, err)
	assert.Equal(t, bigHome, smallHome)
}
