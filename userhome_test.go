package userhome_test

import (
	"sync"
	"testing"

	"github.com/k0sproject/userhome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentDir(t *testing.T) {
	home, err := userhome.CurrentDir()
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}

func TestCurrentDirIdempotent(t *testing.T) {
	first, err := userhome.CurrentDir()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		home, err := userhome.CurrentDir()
		require.NoError(t, err)
		assert.Equal(t, first, home)
	}
}

func TestCurrentDirConcurrent(t *testing.T) {
	first, err := userhome.CurrentDir()
	require.NoError(t, err)

	const workers = 100
	results := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// each goroutine gets its own resolver so no scratch state is shared
			results[i], errs[i] = userhome.NewResolver().Dir("")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, first, results[i])
	}
}

func TestNewResolverDefaults(t *testing.T) {
	r := userhome.NewResolver()
	assert.Equal(t, userhome.DefaultBufferSize, r.InitialBufferSize)
}

func TestZeroValueResolver(t *testing.T) {
	var r userhome.Resolver
	home, err := r.Dir("")
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}
