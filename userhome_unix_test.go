//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package userhome_test

import (
	"errors"
	"os/user"
	"runtime"
	"testing"

	"github.com/k0sproject/userhome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHome(t *testing.T) {
	if _, err := user.Lookup("root"); err != nil {
		t.Skip("no root account on this system")
	}

	home, err := userhome.Dir("root")
	require.NoError(t, err)

	if runtime.GOOS == "darwin" {
		assert.Equal(t, "/var/root", home)
	} else {
		assert.Equal(t, "/root", home)
	}
}

func TestNonexistentUser(t *testing.T) {
	_, err := userhome.Dir("thisUs3rDoe5notExist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, userhome.ErrNotFound))
	assert.False(t, errors.Is(err, userhome.ErrOS))

	var notFound *userhome.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "thisUs3rDoe5notExist", notFound.User)
}

// a tiny initial buffer forces the lookup through the grow-and-retry path;
// the result must come out identical to a comfortably sized one.
func TestBufferGrowth(t *testing.T) {
	if _, err := user.Lookup("root"); err != nil {
		t.Skip("no root account on this system")
	}

	small := &userhome.Resolver{InitialBufferSize: 1}
	big := &userhome.Resolver{InitialBufferSize: 64 * 1024}

	smallHome, err := small.Dir("root")
	require.NoError(t, err)
	bigHome, err := big.Dir("root")
	require.NoError(t, err)
	assert.Equal(t, bigHome, smallHome)
}

func TestCurrentUserHonorsHomeEnv(t *testing.T) {
	t.Setenv("HOME", "/home/test")

	home, err := userhome.NewResolver().Dir("")
	require.NoError(t, err)
	assert.Equal(t, "/home/test", home)
}
