//go:build !windows && !plan9 && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package userhome_test

import (
	"errors"
	"testing"

	"github.com/k0sproject/userhome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCurrentUser(t *testing.T) {
	t.Setenv("HOME", "/home/test")

	home, err := userhome.CurrentDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/test", home)
}

func TestFallbackNoHome(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := userhome.CurrentDir()
	require.Error(t, err)
	assert.True(t, errors.Is(err, userhome.ErrNotFound))
}

func TestFallbackNamedUser(t *testing.T) {
	_, err := userhome.Dir("root")
	require.Error(t, err)
	assert.True(t, errors.Is(err, userhome.ErrUnimplemented))
}
