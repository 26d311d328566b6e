package host_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swipectl/internal/host"
)

func TestRegistry_CurrentAfterInit(t *testing.T) {
	f := newFixture(allEnabled())
	c := f.newCoordinator()
	c.OnCreate()

	require.Same(t, c, host.Current())
	runtime.KeepAlive(c)
}

func TestRegistry_SwipeToChangeVideoQuery(t *testing.T) {
	settings := allEnabled()
	settings.ChangeVideo = true
	f := newFixture(settings)
	c := f.newCoordinator()

	assert.False(t, c.SwipeToChangeVideoEnabled(), "false before initialization")

	c.OnCreate()
	assert.True(t, host.SwipeToChangeVideoEnabled())
	runtime.KeepAlive(c)
}

func TestRegistry_DoesNotRetainCoordinator(t *testing.T) {
	// Build a whole coordinator graph in a scope and let it go. The
	// registry holds only a weak reference, so a few GC cycles must be
	// enough to make the lookup come back absent.
	func() {
		f := newFixture(allEnabled())
		c := f.newCoordinator()
		c.OnCreate()
		require.NotNil(t, host.Current())
	}()

	for range 10 {
		runtime.GC()
		if host.Current() == nil {
			return
		}
	}
	t.Fatal("registry kept the coordinator reachable after release")
}
