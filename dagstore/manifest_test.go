package dagstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-octdag/dagtesting"
	"github.com/forestrie/go-octdag/scene"
)

func TestManifestRoundTrip(t *testing.T) {
	g := dagtesting.MustBuildPreset(t, scene.Box, 3)
	data := g.Bytes()
	id := BuildID(g.Stats().Scene, 3, "hashed")

	m := NewManifest(id, g, data)
	assert.Equal(t, uint8(ManifestVersion), m.Version)
	assert.Equal(t, uint64(g.Len()), m.NodeCount)
	assert.Equal(t, uint64(len(data)), m.NodeBytes)
	assert.Equal(t, uint32(3), m.MaxDepth)
	assert.Equal(t, "perimeter:coloured-walls", m.Scene)
	require.NoError(t, m.Verify(data))

	codec, err := NewManifestCodec()
	require.NoError(t, err)
	enc, err := codec.Encode(m)
	require.NoError(t, err)

	// Deterministic encoding.
	enc2, err := codec.Encode(m)
	require.NoError(t, err)
	require.Equal(t, enc, enc2)

	got, err := codec.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	gotID, err := got.ID()
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestManifestVerifyRejects(t *testing.T) {
	g := dagtesting.MustBuildPreset(t, scene.Box, 2)
	data := g.Bytes()
	m := NewManifest(BuildID("box", 2, "hashed"), g, data)

	require.ErrorIs(t, m.Verify(data[:len(data)-1]), ErrManifestMismatch)

	tampered := append([]byte(nil), data...)
	tampered[5] ^= 1
	require.ErrorIs(t, m.Verify(tampered), ErrDigestMismatch)

	bad := m
	bad.NodeCount++
	require.ErrorIs(t, bad.Verify(data), ErrManifestMismatch)
}

func TestManifestDecodeVersion(t *testing.T) {
	codec, err := NewManifestCodec()
	require.NoError(t, err)

	enc, err := codec.Encode(Manifest{Version: 9})
	require.NoError(t, err)
	_, err = codec.Decode(enc)
	require.ErrorIs(t, err, ErrManifestVersion)

	_, err = codec.Decode([]byte{0xff, 0x00})
	require.Error(t, err)
}
