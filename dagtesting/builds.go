package dagtesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-octdag/octdag"
	"github.com/forestrie/go-octdag/scene"
)

// MustBuildPreset builds a preset scene or fails the test.
func MustBuildPreset(t *testing.T, p scene.Preset, maxDepth uint32, opts ...octdag.BuilderOption) *octdag.Graph {
	t.Helper()
	b, err := octdag.NewBuilder(opts...)
	require.NoError(t, err)
	g, err := b.BuildPreset(p, maxDepth)
	require.NoError(t, err)
	return g
}

// RequireSameGraph fails unless a and b have identical wire encodings.
func RequireSameGraph(t *testing.T, a, b *octdag.Graph) {
	t.Helper()
	require.Equal(t, a.Len(), b.Len())
	require.Equal(t, a.Bytes(), b.Bytes())
}
