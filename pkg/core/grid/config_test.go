package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"NaN gutter", func(c *Config) { c.GutterX = math.NaN() }},
		{"infinite gutter", func(c *Config) { c.GutterY = math.Inf(1) }},
		{"negative padding", func(c *Config) { c.PaddingY = -1 }},
		{"negative columns", func(c *Config) { c.Columns = -2 }},
		{"negative item width", func(c *Config) { c.ItemWidth = -100 }},
		{"NaN item width", func(c *Config) { c.ItemWidth = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, errs.Is(err, errs.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestConfigAcceptsAndCanDrag(t *testing.T) {
	pinned := &Item{ID: "pinned", Tags: []string{"locked"}}
	free := &Item{ID: "free"}

	cfg := DefaultConfig()
	require.True(t, cfg.Accepts(free))
	require.True(t, cfg.CanDrag(pinned))

	cfg.DragBlacklist = MatchIDsOrTags([]string{"locked"})
	require.False(t, cfg.CanDrag(pinned))
	require.True(t, cfg.CanDrag(free))

	cfg.DropWhitelist = MatchIDsOrTags([]string{"free"})
	require.True(t, cfg.Accepts(free))
	require.False(t, cfg.Accepts(pinned))

	cfg.EnableDrop = false
	require.False(t, cfg.Accepts(free))

	cfg.EnableDrag = false
	require.False(t, cfg.CanDrag(free))
}

func TestMatchIDsOrTags(t *testing.T) {
	require.Nil(t, MatchIDsOrTags(nil))

	all := MatchIDsOrTags([]string{"x", "*"})
	require.True(t, all(&Item{ID: "anything"}))

	m := MatchIDsOrTags([]string{"a", "urgent"})
	require.True(t, m(&Item{ID: "a"}))
	require.True(t, m(&Item{ID: "b", Tags: []string{"urgent"}}))
	require.False(t, m(&Item{ID: "c", Tags: []string{"later"}}))
}
