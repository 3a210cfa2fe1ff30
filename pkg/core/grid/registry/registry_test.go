package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
)

func newContainers() (*grid.Container, *grid.Container, *grid.Container) {
	cfg := grid.DefaultConfig()
	todo := grid.NewContainer("todo", 320, cfg)
	done := grid.NewContainer("done", 320, cfg)
	done.Origin = grid.Position{Left: 400}

	archiveCfg := cfg
	archiveCfg.DropWhitelist = grid.MatchIDsOrTags([]string{"finished"})
	archive := grid.NewContainer("archive", 320, archiveCfg)
	archive.Origin = grid.Position{Left: 800}
	return todo, done, archive
}

func TestEnterLeave(t *testing.T) {
	todo, done, _ := newContainers()
	r := New()
	r.Register(todo)
	r.Register(done)

	require.Nil(t, r.Current())
	require.True(t, r.Enter(todo))
	require.Same(t, todo, r.Current())

	// Pointer crosses into done before todo reports leave.
	require.True(t, r.Enter(done))
	r.Leave(todo)
	require.Same(t, done, r.Current(), "stale leave keeps the new focus")

	r.Leave(done)
	require.Nil(t, r.Current())

	stranger := grid.NewContainer("stranger", 100, grid.DefaultConfig())
	require.False(t, r.Enter(stranger), "unregistered containers never take focus")
}

func TestEnterRespectsDropWhitelist(t *testing.T) {
	todo, done, archive := newContainers()
	r := New()
	r.Register(todo)
	r.Register(done)
	r.Register(archive)

	task := &grid.Item{ID: "task"}
	todo.Adopt([]*grid.Item{task})
	r.Track(task)

	require.False(t, r.Enter(archive), "archive only accepts finished items")
	require.True(t, r.Enter(done))

	task.Tags = []string{"finished"}
	require.True(t, r.Enter(archive))

	r.Track(nil)
	task.Tags = nil
	require.True(t, r.Enter(archive), "no filtering outside a drag")

	require.Len(t, r.Eligible(task), 2)
}

func TestRegisterUnregister(t *testing.T) {
	todo, done, _ := newContainers()
	r := New()
	r.Register(todo)
	r.Register(done)
	r.Enter(done)

	replacement := grid.NewContainer("done", 500, grid.DefaultConfig())
	r.Register(replacement)
	require.Len(t, r.Containers(), 2)
	require.Same(t, replacement, r.Current(), "focus follows the replacement")

	got, ok := r.Lookup("done")
	require.True(t, ok)
	require.Same(t, replacement, got)

	require.True(t, r.Unregister("done"))
	require.False(t, r.Unregister("done"))
	require.Nil(t, r.Current())
	_, ok = r.Lookup("done")
	require.False(t, ok)
}

func TestHit(t *testing.T) {
	todo, done, _ := newContainers()
	todo.State.Height = 200
	done.State.Height = 100

	r := New()
	r.Register(todo)
	r.Register(done)

	c, ok := r.Hit(grid.Position{Left: 10, Top: 10})
	require.True(t, ok)
	require.Same(t, todo, c)

	c, ok = r.Hit(grid.Position{Left: 450, Top: 50})
	require.True(t, ok)
	require.Same(t, done, c)

	_, ok = r.Hit(grid.Position{Left: 450, Top: 150})
	require.False(t, ok, "below done's computed height")

	done.MinHeight = 300
	c, ok = r.Hit(grid.Position{Left: 450, Top: 150})
	require.True(t, ok, "min height extends the bounds")
	require.Same(t, done, c)
}
