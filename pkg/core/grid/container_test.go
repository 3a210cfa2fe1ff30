package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func items(ids ...string) []*Item {
	out := make([]*Item, len(ids))
	for i, id := range ids {
		out[i] = &Item{ID: id, Size: Size{Width: 100, Height: 50}}
	}
	return out
}

func TestContainerInsertRemove(t *testing.T) {
	c := NewContainer("todo", 320, DefaultConfig())
	c.Adopt(items("a", "b", "c"))

	for _, it := range c.Items {
		require.Same(t, c, it.Container)
	}

	b, ok := c.Item("b")
	require.True(t, ok)
	require.Equal(t, 1, c.IndexOf(b))

	require.True(t, c.Remove(b))
	require.False(t, c.Remove(b), "second remove is a no-op")
	require.Equal(t, []string{"a", "c"}, c.IDs())

	c.Insert(0, b)
	require.Equal(t, []string{"b", "a", "c"}, c.IDs())

	t.Run("insert clamps out of range indices", func(t *testing.T) {
		d := &Item{ID: "d"}
		c.Insert(99, d)
		require.Equal(t, []string{"b", "a", "c", "d"}, c.IDs())

		e := &Item{ID: "e"}
		c.Insert(-5, e)
		require.Equal(t, "e", c.Items[0].ID)
		require.Same(t, c, e.Container)
	})
}

func TestContainerPlacedSkipsHiddenAndDragging(t *testing.T) {
	c := NewContainer("todo", 320, DefaultConfig())
	c.Adopt(items("a", "b", "c", "d"))
	c.Items[1].Hidden = true
	c.Items[2].Dragging = true

	placed := c.Placed()
	require.Len(t, placed, 2)
	require.Equal(t, "a", placed[0].ID)
	require.Equal(t, "d", placed[1].ID)
	require.Equal(t, 4, c.Len(), "order list keeps hidden and dragging items")
}

func TestPositionDistance(t *testing.T) {
	a := Position{Left: 0, Top: 0}
	b := Position{Left: 3, Top: 4}
	require.InDelta(t, 5.0, a.Distance(b), 1e-9)
	require.Equal(t, Position{Left: -3, Top: -4}, a.Sub(b))
	require.Equal(t, b, a.Add(b))
}
